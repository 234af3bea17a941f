package handler

import (
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/service"
	"vidcall_server/pkg/constants"

	"github.com/gin-gonic/gin"
)

// SessionHandler current session, gate decisions and sign-out
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Current reports the signed-in profile; data.session is null when signed out.
// GET /session
func (h *SessionHandler) Current(c *gin.Context) {
	data, err := h.sessionSvc.Current(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Gate
// GET /session/gate?view=landing|dashboard
// data: respond.GateRespond
func (h *SessionHandler) Gate(c *gin.Context) {
	var req request.GateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.sessionSvc.Gate(c.Request.Context(), middleware.BearerToken(c), req.View))
}

// Logout (requires a session)
// POST /session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessionSvc.SignOut(c.Request.Context(), middleware.UserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "Logged out successfully", respond.RedirectRespond{Redirect: constants.AUTH_PATH})
}
