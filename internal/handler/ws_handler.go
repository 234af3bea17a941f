package handler

import (
	"vidcall_server/internal/gateway/websocket"
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WsHandler session-change subscriptions
type WsHandler struct {
	sessionSvc service.SessionService
}

// NewWsHandler
func NewWsHandler(sessionSvc service.SessionService) *WsHandler {
	return &WsHandler{sessionSvc: sessionSvc}
}

// SessionEvents upgrades to a WebSocket that receives every session event of
// the signed-in user until it closes.
// GET /ws/session?token=<access token>
func (h *WsHandler) SessionEvents(c *gin.Context) {
	userID := middleware.UserID(c)
	events, cancel := h.sessionSvc.Subscribe(userID)
	if err := websocket.ServeSessionEvents(c.Writer, c.Request, userID, events, cancel); err != nil {
		// the upgrader already wrote the HTTP error
		zap.L().Warn("session stream upgrade failed", zap.String("user_id", userID), zap.Error(err))
	}
}
