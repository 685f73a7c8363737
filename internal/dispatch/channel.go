// Package dispatch delivers a composed outreach message to a contractor over
// every channel the contractor is reachable on.
package dispatch

import (
	"context"

	"outreach_backend/internal/contractor"
)

// Channel names, in attempt order.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelVoice = "voice"
)

// Message carries the composed outreach content. Channels derive their own
// wire format from it (subject lines, body truncation, TwiML).
type Message struct {
	Body           string
	BidLink        string
	ProjectDetails string
}

// Channel is a single delivery mechanism. Send errors are absorbed by the
// dispatcher and count as that channel's failure only.
type Channel interface {
	// Name returns the channel identifier recorded in tracking.
	Name() string
	// Available reports whether the contractor has a usable contact point
	// for this channel.
	Available(lead contractor.Lead) bool
	// Send delivers the message. An error means this channel failed for this
	// contractor; it carries no meaning for other channels.
	Send(ctx context.Context, lead contractor.Lead, msg Message) error
}

// gated is implemented by channels that must only be attempted after another
// channel succeeded in the same dispatch.
type gated interface {
	Requires() string
}
