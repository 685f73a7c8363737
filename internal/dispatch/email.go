package dispatch

import (
	"context"
	"fmt"
	"time"

	"outreach_backend/internal/contractor"

	gomail "github.com/wneessen/go-mail"
)

const subjectDetailsLimit = 50

// EmailChannel delivers the outreach message over SMTP via go-mail.
type EmailChannel struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

func NewEmailChannel(host string, port int, username, password, fromEmail, fromName string) *EmailChannel {
	return &EmailChannel{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (c *EmailChannel) Name() string {
	return ChannelEmail
}

func (c *EmailChannel) Available(lead contractor.Lead) bool {
	return lead.Email != ""
}

// Send mails the full message body with the bid link appended.
func (c *EmailChannel) Send(ctx context.Context, lead contractor.Lead, msg Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat(c.fromName, c.fromEmail); err != nil {
		return fmt.Errorf("email from: %w", err)
	}
	if err := m.To(lead.Email); err != nil {
		return fmt.Errorf("email to: %w", err)
	}
	m.Subject(buildSubject(msg.ProjectDetails))
	m.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("%s\n\nSubmit your bid here: %s", msg.Body, msg.BidLink))

	client, err := gomail.NewClient(c.host,
		gomail.WithPort(c.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.username),
		gomail.WithPassword(c.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func buildSubject(projectDetails string) string {
	return "Bid Request: " + truncateRunes(projectDetails, subjectDetailsLimit) + "..."
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
