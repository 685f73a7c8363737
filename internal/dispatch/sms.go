package dispatch

import (
	"context"
	"fmt"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/phone"
)

const smsBodyLimit = 140

// SMSChannel delivers a shortened message over Twilio SMS.
type SMSChannel struct {
	client *TwilioClient
}

func NewSMSChannel(client *TwilioClient) *SMSChannel {
	return &SMSChannel{client: client}
}

func (c *SMSChannel) Name() string {
	return ChannelSMS
}

func (c *SMSChannel) Available(lead contractor.Lead) bool {
	return lead.Phone != ""
}

// Send texts the truncated message body with the bid link appended.
func (c *SMSChannel) Send(ctx context.Context, lead contractor.Lead, msg Message) error {
	return c.client.SendSMS(ctx, phone.ForDialing(lead.Phone), buildSMSBody(msg))
}

func buildSMSBody(msg Message) string {
	return fmt.Sprintf("%s... Bid details: %s", truncateRunes(msg.Body, smsBodyLimit), msg.BidLink)
}
