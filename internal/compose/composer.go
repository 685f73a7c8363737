// Package compose produces personalized outreach messages for
// contractor/project pairs.
package compose

import (
	"context"
	"fmt"

	"outreach_backend/platform/logger"
)

// Generator is a generative text provider. Failures are treated as a fallback
// trigger by the composer and never propagated.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Composer builds the outreach message for one contractor. When a generator
// is configured and the service is not in development mode it returns the
// provider output verbatim; in every other case it falls back to a
// deterministic template. Compose never fails.
type Composer struct {
	generator   Generator
	development bool
	log         *logger.Logger
}

func NewComposer(generator Generator, development bool, log *logger.Logger) *Composer {
	return &Composer{
		generator:   generator,
		development: development,
		log:         log,
	}
}

// Compose returns the outreach message body for the contractor.
func (c *Composer) Compose(ctx context.Context, contractorName, projectType, projectDetails string) string {
	if c.generator == nil || c.development {
		return fallbackMessage(contractorName, projectType, projectDetails)
	}

	message, err := c.generator.Generate(ctx, buildPrompt(contractorName, projectType, projectDetails))
	if err != nil {
		c.log.ProviderError("generator", "compose message", err)
		return fallbackMessage(contractorName, projectType, projectDetails)
	}
	if message == "" {
		return fallbackMessage(contractorName, projectType, projectDetails)
	}

	return message
}

func buildPrompt(contractorName, projectType, projectDetails string) string {
	return fmt.Sprintf(`Generate a professional and friendly outreach message to a contractor named %s.
We're looking for bids on a %s project with these details: %s.
The message should be brief (2-3 paragraphs), professional, and encourage them to submit a bid.
Don't include any placeholders or variables - this is the final message that will be sent.`,
		contractorName, projectType, projectDetails)
}

func fallbackMessage(contractorName, projectType, projectDetails string) string {
	return fmt.Sprintf(`Hello %s,

We're currently accepting bids for a %s project and would like to invite you to submit a proposal. Here are the project details: %s

If you're interested, please click the link in this message to submit your bid. We look forward to potentially working with you.

Thank you,
The Project Team`, contractorName, projectType, projectDetails)
}
