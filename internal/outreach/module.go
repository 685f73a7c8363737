// Package outreach wires the orchestrator module: discovery, composition and
// dispatch behind the bid-request webhook and the contractor search endpoint.
package outreach

import (
	apphttp "outreach_backend/internal/http"
	"outreach_backend/internal/outreach/handler"
	"outreach_backend/internal/outreach/service"
	"outreach_backend/platform/logger"
)

// Module bundles the orchestrator service and its HTTP routes.
type Module struct {
	handler *handler.Handler
}

func NewModule(finder service.Finder, composer service.Composer, dispatcher service.Dispatcher, tracker service.Tracker, maxContractors int, log *logger.Logger) *Module {
	svc := service.New(finder, composer, dispatcher, tracker, maxContractors, log)
	return &Module{handler: handler.New(svc, log)}
}

func (m *Module) Name() string {
	return "outreach"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Webhooks.POST("/bid-request", m.handler.BidRequest)
	ctx.API.GET("/contractors", m.handler.SearchContractors)
}

var _ apphttp.Module = (*Module)(nil)
