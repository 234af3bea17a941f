// Package router registers every HTTP route on the gin engine.
package router

import (
	"vidcall_server/internal/handler"
	"vidcall_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router holds the handlers and the session resolver used by the gate.
type Router struct {
	handlers *handler.Handlers
	resolver middleware.SessionResolver
}

// NewRouter
func NewRouter(handlers *handler.Handlers, resolver middleware.SessionResolver) *Router {
	return &Router{handlers: handlers, resolver: resolver}
}

// RegisterRoutes public routes first, then everything behind the session gate.
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterAuthRoutes(r.Group("/auth"))
	rt.RegisterSessionRoutes(r.Group("/session"))

	protected := r.Group("")
	protected.Use(middleware.SessionGate(rt.resolver))
	{
		protected.POST("/session/logout", rt.handlers.Session.Logout)
		rt.RegisterWebSocketRoutes(protected)
		rt.RegisterDashboardRoutes(protected)
		rt.RegisterContactRoutes(protected)
		rt.RegisterRoomRoutes(protected)
		rt.RegisterHistoryRoutes(protected)
	}
}
