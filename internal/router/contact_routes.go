package router

import "github.com/gin-gonic/gin"

// RegisterContactRoutes
func (rt *Router) RegisterContactRoutes(rg *gin.RouterGroup) {
	contactGroup := rg.Group("/contact")
	{
		contactGroup.GET("/list", rt.handlers.Contact.List)
		contactGroup.GET("/search", rt.handlers.Contact.Search)
		contactGroup.POST("/add", rt.handlers.Contact.Add)
		contactGroup.POST("/call", rt.handlers.Contact.Call) // not available yet
	}
}

// RegisterHistoryRoutes
func (rt *Router) RegisterHistoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/history/list", rt.handlers.History.List)
}
