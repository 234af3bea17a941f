package handler

import (
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler sign-up, sign-in and token refresh
type AuthHandler struct {
	sessionSvc service.SessionService
}

// NewAuthHandler
func NewAuthHandler(sessionSvc service.SessionService) *AuthHandler {
	return &AuthHandler{sessionSvc: sessionSvc}
}

// Register
// POST /auth/register
// body: request.RegisterRequest
// data: respond.RegisterRespond
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.sessionSvc.Register(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login
// POST /auth/login
// body: request.LoginRequest
// data: respond.LoginRespond
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.sessionSvc.Login(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Refresh exchanges a refresh token for a new access token. A sign-in on
// another device invalidates the old refresh token.
// POST /auth/refresh
// body: request.RefreshRequest
// data: respond.RefreshRespond
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.sessionSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
