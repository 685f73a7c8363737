// Package transport defines the tracking module's request and response shapes.
package transport

import "outreach_backend/internal/tracking/domain"

// OutreachResponseRequest is the inbound payload reporting a contractor's
// reaction to an outreach message.
type OutreachResponseRequest struct {
	OutreachID string                 `json:"outreach_id" binding:"required"`
	Channel    string                 `json:"channel" binding:"required"`
	Type       string                 `json:"type" binding:"required,oneof=opened clicked replied submitted declined other"`
	Details    map[string]interface{} `json:"details"`
}

// OutreachResponseResult acknowledges a recorded response.
type OutreachResponseResult struct {
	Status     string `json:"status"`
	OutreachID string `json:"outreach_id"`
}

// ProjectStatusResponse wraps the expanded aggregate for a project.
type ProjectStatusResponse struct {
	Status       string                      `json:"status"`
	ProjectID    string                      `json:"project_id"`
	TrackingData *domain.ProjectTrackingView `json:"tracking_data"`
}
