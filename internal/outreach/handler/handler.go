// Package handler exposes the outreach orchestrator over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach_backend/internal/outreach/service"
	"outreach_backend/internal/outreach/transport"
	"outreach_backend/platform/contact"
	"outreach_backend/platform/httpkit"
	"outreach_backend/platform/logger"
)

type Handler struct {
	svc *service.Service
	log *logger.Logger
}

func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// BidRequest handles POST /webhook/bid-request: discovery followed by the
// outreach batch.
func (h *Handler) BidRequest(c *gin.Context) {
	var req transport.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing or invalid bid request fields", err.Error())
		return
	}

	zip, ok := contact.CleanZip(req.ZipCode)
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, "invalid zip code", nil)
		return
	}

	ctx := c.Request.Context()
	log := h.log.WithProjectID(req.ProjectID)

	log.Info("processing bid request", "project_type", req.ProjectType, "zip_code", zip)
	contractors := h.svc.FindContractors(ctx, req.ProjectType, zip)
	if len(contractors) == 0 {
		httpkit.OK(c, transport.BidRequestResponse{
			Status:    "warning",
			Message:   "No contractors found matching the criteria",
			ProjectID: req.ProjectID,
		})
		return
	}

	log.Info("sending outreach batch", "contractors", len(contractors))
	results := h.svc.ProcessBatch(ctx, req.ProjectID, contractors, req.ProjectDetails, req.BidLink)

	httpkit.OK(c, transport.BidRequestResponse{
		Status:           "success",
		Message:          "Outreach initiated",
		ProjectID:        req.ProjectID,
		ContractorsCount: len(contractors),
		OutreachResults:  &results,
	})
}

// SearchContractors handles GET /api/v1/contractors.
func (h *Handler) SearchContractors(c *gin.Context) {
	var req transport.ContractorSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "project_type and zip_code are required", err.Error())
		return
	}

	zip, ok := contact.CleanZip(req.ZipCode)
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, "invalid zip code", nil)
		return
	}

	leads := h.svc.FindContractors(c.Request.Context(), req.ProjectType, zip)

	results := make([]transport.ContractorResult, 0, len(leads))
	for _, lead := range leads {
		results = append(results, transport.ContractorResult{
			Lead:       lead,
			EmailValid: contact.ValidateEmail(lead.Email),
			PhoneValid: contact.ValidatePhone(lead.Phone),
		})
	}

	httpkit.OK(c, transport.ContractorSearchResponse{
		Status:      "success",
		Contractors: results,
	})
}
