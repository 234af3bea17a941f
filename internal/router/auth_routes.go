package router

import "github.com/gin-gonic/gin"

// RegisterAuthRoutes sign-up, sign-in, token refresh
func (rt *Router) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", rt.handlers.Auth.Register)
	rg.POST("/login", rt.handlers.Auth.Login)
	rg.POST("/refresh", rt.handlers.Auth.Refresh)
}
