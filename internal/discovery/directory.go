package discovery

import (
	"context"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/logger"
)

// DirectoryScrapeProvider is a placeholder for scraping contractor
// directories (HomeAdvisor, Yelp and the like). It currently returns no
// results; the aggregation pipeline treats that the same as any other empty
// provider response.
type DirectoryScrapeProvider struct {
	log *logger.Logger
}

func NewDirectoryScrapeProvider(log *logger.Logger) *DirectoryScrapeProvider {
	return &DirectoryScrapeProvider{log: log}
}

func (p *DirectoryScrapeProvider) Name() string {
	return "directory_scrape"
}

func (p *DirectoryScrapeProvider) Find(ctx context.Context, projectType, zipCode string) ([]contractor.Lead, error) {
	p.log.Debug("directory scraping not implemented, returning no leads",
		"project_type", projectType, "zip_code", zipCode)
	return nil, nil
}
