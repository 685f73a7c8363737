// Package domain holds the tracking data model: outreach records, response
// events and the per-project aggregate.
package domain

import (
	"time"

	"outreach_backend/internal/contractor"
)

// Status is the lifecycle state of an outreach record.
type Status string

const (
	StatusPending      Status = "pending"
	StatusSent         Status = "sent"
	StatusReplied      Status = "replied"
	StatusBidSubmitted Status = "bid_submitted"
	StatusDeclined     Status = "declined"
)

// ResponseType classifies an external signal about an outreach record.
type ResponseType string

const (
	ResponseOpened    ResponseType = "opened"
	ResponseClicked   ResponseType = "clicked"
	ResponseReplied   ResponseType = "replied"
	ResponseSubmitted ResponseType = "submitted"
	ResponseDeclined  ResponseType = "declined"
	ResponseOther     ResponseType = "other"
)

// Response is one external signal appended to a record. Responses are never
// mutated or removed once appended.
type Response struct {
	Timestamp time.Time              `json:"timestamp"`
	Channel   string                 `json:"channel"`
	Type      ResponseType           `json:"type"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// OutreachRecord is the durable record of one outreach attempt to one
// contractor for one project. OutreachID is immutable for the record's life.
type OutreachRecord struct {
	OutreachID  string           `json:"outreach_id"`
	ProjectID   string           `json:"project_id"`
	CreatedAt   time.Time        `json:"created_at"`
	Contractor  contractor.Lead  `json:"contractor"`
	Message     string           `json:"message"`
	BidLink     string           `json:"bid_link"`
	Channels    []string         `json:"channels"`
	Status      Status           `json:"status"`
	Responses   []Response       `json:"responses"`
	LastUpdated time.Time        `json:"last_updated"`
}

// ProjectTracking is the per-project rollup. OutreachIDs keeps insertion
// order with uniqueness; Contractors maps contractor identity keys to the
// first-seen lead snapshot.
type ProjectTracking struct {
	ProjectID   string                     `json:"project_id"`
	CreatedAt   time.Time                  `json:"created_at"`
	LastUpdated time.Time                  `json:"last_updated"`
	OutreachIDs []string                   `json:"outreach_ids"`
	Contractors map[string]contractor.Lead `json:"contractors"`
}

// Attach adds the outreach id and the contractor snapshot to the aggregate.
// Already-present ids and contractors are left untouched (first seen wins).
func (p *ProjectTracking) Attach(outreachID string, lead contractor.Lead, now time.Time) {
	for _, id := range p.OutreachIDs {
		if id == outreachID {
			p.LastUpdated = now
			return
		}
	}
	p.OutreachIDs = append(p.OutreachIDs, outreachID)

	if p.Contractors == nil {
		p.Contractors = make(map[string]contractor.Lead)
	}
	key := contractorKey(lead, outreachID)
	if _, exists := p.Contractors[key]; !exists {
		p.Contractors[key] = lead
	}

	p.LastUpdated = now
}

func contractorKey(lead contractor.Lead, fallback string) string {
	if lead.Name != "" {
		return lead.Name
	}
	return fallback
}

// ProjectTrackingView is the aggregate with every outreach record expanded.
type ProjectTrackingView struct {
	ProjectTracking
	OutreachDetails []OutreachRecord `json:"outreach_details"`
}
