package discovery

import (
	"context"

	"outreach_backend/internal/contractor"
)

// Provider is a single contractor discovery source. An empty slice is the
// normal no-results signal; errors are treated as soft failures by the
// aggregating service and never abort a search.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// Find returns candidate contractors for the given project type near the
	// given zip code.
	Find(ctx context.Context, projectType, zipCode string) ([]contractor.Lead, error)
}
