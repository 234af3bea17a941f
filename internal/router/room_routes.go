package router

import "github.com/gin-gonic/gin"

// RegisterRoomRoutes
func (rt *Router) RegisterRoomRoutes(rg *gin.RouterGroup) {
	roomGroup := rg.Group("/room")
	{
		roomGroup.GET("/list", rt.handlers.Room.List)
		roomGroup.POST("/create", rt.handlers.Room.Create)
		roomGroup.POST("/join", rt.handlers.Room.Join)
		roomGroup.GET("/inviteCode", rt.handlers.Room.InviteCode)
		roomGroup.POST("/call", rt.handlers.Room.Call) // not available yet
	}
}
