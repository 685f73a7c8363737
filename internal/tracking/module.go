// Package tracking wires the tracking store module: the durable outreach
// record store, its HTTP surface, and the events it publishes.
package tracking

import (
	apphttp "outreach_backend/internal/http"
	"outreach_backend/internal/tracking/handler"
	"outreach_backend/internal/tracking/repository"
	"outreach_backend/internal/tracking/service"
	"outreach_backend/platform/events"
	"outreach_backend/platform/logger"
)

// Module bundles the tracking service and its HTTP routes.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

func NewModule(dataDir string, bus events.Bus, log *logger.Logger) (*Module, error) {
	store, err := repository.NewFileStore(dataDir)
	if err != nil {
		return nil, err
	}

	svc := service.New(store, bus, log)
	return &Module{
		service: svc,
		handler: handler.New(svc),
	}, nil
}

func (m *Module) Name() string {
	return "tracking"
}

// Service exposes the tracking operations to other modules (the orchestrator
// holds outreach ids only and goes through this service for every update).
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Webhooks.POST("/outreach-response", m.handler.RecordResponse)
	ctx.Root.GET("/outreach/status/:project_id", m.handler.ProjectStatus)
}

var _ apphttp.Module = (*Module)(nil)
