// Package handler exposes the tracking store over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach_backend/internal/tracking/domain"
	"outreach_backend/internal/tracking/service"
	"outreach_backend/internal/tracking/transport"
	"outreach_backend/platform/httpkit"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RecordResponse handles POST /webhook/outreach-response.
func (h *Handler) RecordResponse(c *gin.Context) {
	var req transport.OutreachResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid response payload", err.Error())
		return
	}

	err := h.svc.RecordResponse(c.Request.Context(), req.OutreachID, req.Channel,
		domain.ResponseType(req.Type), req.Details)
	if err != nil {
		httpkit.DomainError(c, err)
		return
	}

	httpkit.OK(c, transport.OutreachResponseResult{
		Status:     "success",
		OutreachID: req.OutreachID,
	})
}

// ProjectStatus handles GET /outreach/status/:project_id.
func (h *Handler) ProjectStatus(c *gin.Context) {
	projectID := c.Param("project_id")

	view, err := h.svc.GetProjectTracking(c.Request.Context(), projectID)
	if err != nil {
		httpkit.DomainError(c, err)
		return
	}

	httpkit.OK(c, transport.ProjectStatusResponse{
		Status:       "success",
		ProjectID:    projectID,
		TrackingData: view,
	})
}
