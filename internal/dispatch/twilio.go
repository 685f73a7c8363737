package dispatch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"outreach_backend/platform/logger"

	"golang.org/x/time/rate"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioClient talks to the Twilio REST API for SMS and outbound calls.
// A shared rate limiter paces all outbound traffic; waiting on it counts
// against the request context, so a saturated limiter surfaces as a send
// failure rather than an unbounded stall.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	http       *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
}

func NewTwilioClient(accountSID, authToken, fromNumber string, perSecond float64, log *logger.Logger) *TwilioClient {
	if perSecond <= 0 {
		perSecond = 1
	}

	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    twilioAPIBase,
		http:       &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(perSecond), 1),
		log:        log,
	}
}

// SendSMS sends a text message to the given E.164 number.
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	if err := c.post(ctx, "Messages.json", form); err != nil {
		return err
	}

	c.log.Info("sms sent via twilio", "to", to)
	return nil
}

// StartCall places an outbound call that reads the given TwiML to the callee.
func (c *TwilioClient) StartCall(ctx context.Context, to, twiml string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Twiml", twiml)

	if err := c.post(ctx, "Calls.json", form); err != nil {
		return err
	}

	c.log.Info("voice call scheduled via twilio", "to", to)
	return nil
}

func (c *TwilioClient) post(ctx context.Context, resource string, form url.Values) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/%s", c.baseURL, c.accountSID, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return nil
}
