package request

// GateRequest asks whether the client may stay on a view
// Used by:
//   - internal/handler/session_handler.go: Gate
type GateRequest struct {
	View string `form:"view" binding:"required,oneof=landing dashboard"`
}

// DashboardRequest tab is optional, contacts by default
type DashboardRequest struct {
	Tab string `form:"tab"`
}
