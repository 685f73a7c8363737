package dispatch

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/phone"
)

// VoiceChannel schedules an automated call that reads a short bid invitation.
// It is only attempted after an SMS reached the same contractor, so the call
// never arrives without a written message to refer back to.
type VoiceChannel struct {
	client *TwilioClient
}

func NewVoiceChannel(client *TwilioClient) *VoiceChannel {
	return &VoiceChannel{client: client}
}

func (c *VoiceChannel) Name() string {
	return ChannelVoice
}

func (c *VoiceChannel) Available(lead contractor.Lead) bool {
	return lead.Phone != ""
}

func (c *VoiceChannel) Requires() string {
	return ChannelSMS
}

// Send places the call with inline TwiML.
func (c *VoiceChannel) Send(ctx context.Context, lead contractor.Lead, msg Message) error {
	return c.client.StartCall(ctx, phone.ForDialing(lead.Phone), buildCallScript(lead.Name, msg.ProjectDetails))
}

func buildCallScript(contractorName, projectDetails string) string {
	text := fmt.Sprintf(
		"Hello %s. We are collecting bids for a project: %s. We just sent you a text message with a link to submit your bid. Thank you.",
		contractorName, truncateRunes(projectDetails, 200),
	)

	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))

	return fmt.Sprintf("<Response><Say voice=\"alice\">%s</Say></Response>", escaped.String())
}
