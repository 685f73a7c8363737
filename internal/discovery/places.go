package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/logger"
)

const (
	geocodeURL      = "https://maps.googleapis.com/maps/api/geocode/json"
	nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	placeDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

	searchRadiusMeters = 25000
)

// GooglePlacesProvider discovers contractors through the Google Places API:
// the zip code is geocoded, businesses matching the project type are searched
// nearby, and each hit is expanded with a details lookup for phone and website.
type GooglePlacesProvider struct {
	apiKey string
	client *http.Client
	log    *logger.Logger
}

// NewGooglePlacesProvider returns nil when no API key is configured so the
// provider can be skipped at registration time.
func NewGooglePlacesProvider(apiKey string, timeout time.Duration, log *logger.Logger) *GooglePlacesProvider {
	if apiKey == "" {
		log.Warn("google places api key not configured, provider disabled")
		return nil
	}

	return &GooglePlacesProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (p *GooglePlacesProvider) Name() string {
	return "google_places"
}

// Find searches for "<projectType> contractors" within the radius around the
// zip code's geocoded location.
func (p *GooglePlacesProvider) Find(ctx context.Context, projectType, zipCode string) ([]contractor.Lead, error) {
	lat, lng, err := p.geocode(ctx, zipCode)
	if err != nil {
		return nil, fmt.Errorf("geocode %s: %w", zipCode, err)
	}

	places, err := p.nearbySearch(ctx, lat, lng, projectType+" contractors")
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}

	leads := make([]contractor.Lead, 0, len(places))
	for _, place := range places {
		lead := contractor.Lead{
			Name:    place.Name,
			Rating:  place.Rating,
			Source:  contractor.SourceGooglePlaces,
			ZipCode: zipCode,
		}

		// Details failures degrade the lead, they do not drop it.
		details, err := p.placeDetails(ctx, place.PlaceID)
		if err != nil {
			p.log.ProviderError(p.Name(), "place details", err)
		} else {
			lead.Address = details.FormattedAddress
			lead.Phone = details.FormattedPhoneNumber
			lead.Website = details.Website
		}

		leads = append(leads, lead)
	}

	return leads, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type placeResult struct {
	PlaceID string  `json:"place_id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
}

type nearbySearchResponse struct {
	Status  string        `json:"status"`
	Results []placeResult `json:"results"`
}

type placeDetails struct {
	FormattedAddress     string `json:"formatted_address"`
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	Website              string `json:"website"`
}

type placeDetailsResponse struct {
	Status string       `json:"status"`
	Result placeDetails `json:"result"`
}

func (p *GooglePlacesProvider) geocode(ctx context.Context, zipCode string) (float64, float64, error) {
	params := url.Values{}
	params.Add("address", zipCode)
	params.Add("key", p.apiKey)

	var payload geocodeResponse
	if err := p.getJSON(ctx, geocodeURL, params, &payload); err != nil {
		return 0, 0, err
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return 0, 0, fmt.Errorf("geocoding status %s", payload.Status)
	}

	loc := payload.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

func (p *GooglePlacesProvider) nearbySearch(ctx context.Context, lat, lng float64, keyword string) ([]placeResult, error) {
	params := url.Values{}
	params.Add("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Add("radius", fmt.Sprintf("%d", searchRadiusMeters))
	params.Add("keyword", keyword)
	params.Add("key", p.apiKey)

	var payload nearbySearchResponse
	if err := p.getJSON(ctx, nearbySearchURL, params, &payload); err != nil {
		return nil, err
	}
	if payload.Status == "ZERO_RESULTS" {
		return nil, nil
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("places status %s", payload.Status)
	}

	return payload.Results, nil
}

func (p *GooglePlacesProvider) placeDetails(ctx context.Context, placeID string) (placeDetails, error) {
	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "name,formatted_address,formatted_phone_number,website")
	params.Add("key", p.apiKey)

	var payload placeDetailsResponse
	if err := p.getJSON(ctx, placeDetailsURL, params, &payload); err != nil {
		return placeDetails{}, err
	}
	if payload.Status != "OK" {
		return placeDetails{}, fmt.Errorf("details status %s", payload.Status)
	}

	return payload.Result, nil
}

func (p *GooglePlacesProvider) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
