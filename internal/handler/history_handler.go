package handler

import (
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler
type HistoryHandler struct {
	historySvc service.CallHistoryService
}

// NewHistoryHandler
func NewHistoryHandler(historySvc service.CallHistoryService) *HistoryHandler {
	return &HistoryHandler{historySvc: historySvc}
}

// List always succeeds; load failures come back as an empty list.
// GET /history/list
// data: []respond.CallRecordRespond
func (h *HistoryHandler) List(c *gin.Context) {
	HandleSuccess(c, h.historySvc.List(c.Request.Context(), middleware.UserID(c)))
}
