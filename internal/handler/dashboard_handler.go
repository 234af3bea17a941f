package handler

import (
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Load
// GET /dashboard?tab=contacts|groups|history
// data: respond.DashboardRespond
func (h *DashboardHandler) Load(c *gin.Context) {
	var req request.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.dashboardSvc.Load(c.Request.Context(), middleware.UserID(c), req.Tab)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout
// POST /dashboard/logout
// data: respond.RedirectRespond
func (h *DashboardHandler) Logout(c *gin.Context) {
	data, err := h.dashboardSvc.Logout(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "Logged out successfully", data)
}
