package router

import "github.com/gin-gonic/gin"

// RegisterSessionRoutes routes that work with or without a session
func (rt *Router) RegisterSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("", rt.handlers.Session.Current)   // current session, null when signed out
	rg.GET("/gate", rt.handlers.Session.Gate) // redirect decision for a view
}

// RegisterDashboardRoutes
func (rt *Router) RegisterDashboardRoutes(rg *gin.RouterGroup) {
	dashboardGroup := rg.Group("/dashboard")
	{
		dashboardGroup.GET("", rt.handlers.Dashboard.Load)
		dashboardGroup.POST("/logout", rt.handlers.Dashboard.Logout)
	}
}
