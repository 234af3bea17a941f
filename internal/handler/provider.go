// Package handler adapts HTTP requests to the service layer. Every handler
// replies with HTTP 200 and a {code, msg, data} envelope.
package handler

import (
	"vidcall_server/internal/service"
)

// Handlers aggregates every handler; the router reaches them through it.
type Handlers struct {
	Auth      *AuthHandler
	Session   *SessionHandler
	Ws        *WsHandler
	Dashboard *DashboardHandler
	Contact   *ContactHandler
	Room      *RoomHandler
	History   *HistoryHandler
}

// NewHandlers injects the services into their handlers.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.Session),
		Session:   NewSessionHandler(svc.Session),
		Ws:        NewWsHandler(svc.Session),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Contact:   NewContactHandler(svc.Contact),
		Room:      NewRoomHandler(svc.Room),
		History:   NewHistoryHandler(svc.CallHistory),
	}
}
