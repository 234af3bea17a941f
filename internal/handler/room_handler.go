package handler

import (
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler group rooms
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// List
// GET /room/list
// data: []respond.RoomRespond
func (h *RoomHandler) List(c *gin.Context) {
	data, err := h.roomSvc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Create
// POST /room/create
// body: request.CreateRoomRequest
// data: respond.RoomRespond
func (h *RoomHandler) Create(c *gin.Context) {
	var req request.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.roomSvc.Create(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "Room created successfully!", data)
}

// Join
// POST /room/join
// body: request.JoinRoomRequest
// data: respond.RoomRespond
func (h *RoomHandler) Join(c *gin.Context) {
	var req request.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.roomSvc.Join(c.Request.Context(), middleware.UserID(c), req.InviteCode)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "Joined room successfully!", data)
}

// InviteCode
// GET /room/inviteCode?room_id=
// data: respond.InviteCodeRespond
func (h *RoomHandler) InviteCode(c *gin.Context) {
	var req request.InviteCodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.roomSvc.InviteCode(c.Request.Context(), middleware.UserID(c), req.RoomID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "Invite code copied!", data)
}

// Call
// POST /room/call
// body: request.StartGroupCallRequest
func (h *RoomHandler) Call(c *gin.Context) {
	var req request.StartGroupCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.roomSvc.StartCall(c.Request.Context(), middleware.UserID(c), req.RoomID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
