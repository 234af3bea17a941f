package router

import "github.com/gin-gonic/gin"

// RegisterWebSocketRoutes browsers pass the access token as ?token= here
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/session", rt.handlers.Ws.SessionEvents)
}
