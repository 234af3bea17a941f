package handler

import (
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// List
// GET /contact/list
// data: []respond.ContactRespond
func (h *ContactHandler) List(c *gin.Context) {
	data, err := h.contactSvc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Search
// GET /contact/search?q=
// data: []respond.SearchUserRespond
func (h *ContactHandler) Search(c *gin.Context) {
	var req request.SearchUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.contactSvc.Search(c.Request.Context(), middleware.UserID(c), req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Add
// POST /contact/add
// body: request.AddContactRequest
func (h *ContactHandler) Add(c *gin.Context) {
	var req request.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactSvc.Add(c.Request.Context(), middleware.UserID(c), req.ContactID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "Contact added!", nil)
}

// Call
// POST /contact/call
// body: request.InitiateCallRequest
func (h *ContactHandler) Call(c *gin.Context) {
	var req request.InitiateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactSvc.InitiateCall(c.Request.Context(), middleware.UserID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
