// Package http provides HTTP server infrastructure including module registration.
package http

import "github.com/gin-gonic/gin"

// RouterContext carries the route groups modules register themselves on.
type RouterContext struct {
	// Root is the engine itself, for top-level routes.
	Root *gin.Engine
	// API is the /api/v1 group.
	API *gin.RouterGroup
	// Webhooks is the /webhook group for inbound events.
	Webhooks *gin.RouterGroup
}

// Module is an HTTP-facing domain module. Modules are constructed by the
// composition root and register their own routes.
type Module interface {
	Name() string
	RegisterRoutes(ctx *RouterContext)
}
