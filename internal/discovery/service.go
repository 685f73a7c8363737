// Package discovery locates candidate contractors for a project by querying
// an ordered list of providers and merging their results.
package discovery

import (
	"context"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/logger"
)

// Service aggregates leads from every registered provider. Providers are
// queried in registration order and fail soft: an error or empty result from
// one source never aborts the search.
type Service struct {
	providers []Provider
	log       *logger.Logger
}

func NewService(log *logger.Logger, providers ...Provider) *Service {
	return &Service{
		providers: providers,
		log:       log,
	}
}

// FindContractors returns up to maxResults deduplicated leads for the given
// project type and zip code. Concatenation order follows provider
// registration order, so the output is deterministic for a fixed provider
// list regardless of individual provider latency.
func (s *Service) FindContractors(ctx context.Context, projectType, zipCode string, maxResults int) []contractor.Lead {
	s.log.Info("finding contractors",
		"project_type", projectType, "zip_code", zipCode, "max_results", maxResults)

	var all []contractor.Lead
	for _, provider := range s.providers {
		leads, err := provider.Find(ctx, projectType, zipCode)
		if err != nil {
			s.log.ProviderError(provider.Name(), "find contractors", err)
			continue
		}

		s.log.Debug("provider returned leads", "provider", provider.Name(), "count", len(leads))
		all = append(all, leads...)
	}

	unique := Deduplicate(all)
	if len(unique) > maxResults {
		unique = unique[:maxResults]
	}
	return unique
}

// Deduplicate drops leads whose normalized name, phone or email matches any
// earlier lead in the slice. The first occurrence wins and input order is
// preserved, which makes the operation idempotent.
func Deduplicate(leads []contractor.Lead) []contractor.Lead {
	unique := make([]contractor.Lead, 0, len(leads))
	seenNames := make(map[string]struct{})
	seenPhones := make(map[string]struct{})
	seenEmails := make(map[string]struct{})

	for _, lead := range leads {
		id := lead.Identity()

		if seen(seenNames, id.Name) || seen(seenPhones, id.Phone) || seen(seenEmails, id.Email) {
			continue
		}

		unique = append(unique, lead)
		mark(seenNames, id.Name)
		mark(seenPhones, id.Phone)
		mark(seenEmails, id.Email)
	}

	return unique
}

func seen(set map[string]struct{}, key string) bool {
	if key == "" {
		return false
	}
	_, ok := set[key]
	return ok
}

func mark(set map[string]struct{}, key string) {
	if key != "" {
		set[key] = struct{}{}
	}
}
