// Package contractor defines the contractor lead model shared by the
// discovery, dispatch and tracking modules.
package contractor

import "strings"

// Source identifies which discovery provider produced a lead.
type Source string

const (
	SourceGooglePlaces    Source = "google_places"
	SourceDirectoryScrape Source = "directory_scrape"
)

// Lead is a candidate contractor discovered for a project. Name is the only
// required field; phone and email arrive in whatever format the provider
// returned them.
type Lead struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone,omitempty"`
	Email   string  `json:"email,omitempty"`
	Address string  `json:"address,omitempty"`
	Website string  `json:"website,omitempty"`
	Rating  float64 `json:"rating,omitempty"`
	Source  Source  `json:"source,omitempty"`
	ZipCode string  `json:"zip_code,omitempty"`
}

// Identity holds the normalized keys used for duplicate detection. A match on
// any single non-empty key against a previously seen lead marks a duplicate.
type Identity struct {
	Name  string
	Phone string
	Email string
}

// Identity returns the lead's normalized identity keys: lower-cased name,
// digits-only phone and lower-cased email.
func (l Lead) Identity() Identity {
	return Identity{
		Name:  strings.ToLower(strings.TrimSpace(l.Name)),
		Phone: digitsOnly(l.Phone),
		Email: strings.ToLower(strings.TrimSpace(l.Email)),
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
