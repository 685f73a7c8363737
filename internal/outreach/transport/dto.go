// Package transport defines the outreach module's request and response shapes.
package transport

import (
	"outreach_backend/internal/contractor"
	"outreach_backend/internal/outreach/service"
)

// BidRequest is the inbound event that kicks off contractor discovery and
// the outreach batch.
type BidRequest struct {
	ProjectID      string `json:"project_id" binding:"required"`
	ZipCode        string `json:"zip_code" binding:"required,zipcode"`
	ProjectType    string `json:"project_type" binding:"required"`
	ProjectDetails string `json:"project_details" binding:"required"`
	BidLink        string `json:"bid_link" binding:"required,url"`
}

// BidRequestResponse reports the batch outcome.
type BidRequestResponse struct {
	Status           string              `json:"status"`
	Message          string              `json:"message"`
	ProjectID        string              `json:"project_id"`
	ContractorsCount int                 `json:"contractors_count,omitempty"`
	OutreachResults  *service.BatchResult `json:"outreach_results,omitempty"`
}

// ContractorSearchRequest queries the discovery pipeline directly.
type ContractorSearchRequest struct {
	ProjectType string `form:"project_type" binding:"required"`
	ZipCode     string `form:"zip_code" binding:"required,zipcode"`
}

// ContractorResult is one discovered lead plus contact validity flags.
type ContractorResult struct {
	contractor.Lead
	EmailValid bool `json:"email_valid"`
	PhoneValid bool `json:"phone_valid"`
}

// ContractorSearchResponse lists discovered contractors.
type ContractorSearchResponse struct {
	Status      string             `json:"status"`
	Contractors []ContractorResult `json:"contractors"`
}
