package service

import (
	"time"

	"vidcall_server/internal/dao/mysql/repository"
	myredis "vidcall_server/internal/dao/redis"
	"vidcall_server/internal/service/callhistory"
	"vidcall_server/internal/service/calling"
	"vidcall_server/internal/service/contact"
	"vidcall_server/internal/service/dashboard"
	"vidcall_server/internal/service/room"
	"vidcall_server/internal/service/session"
)

// Services aggregates every service; handlers receive it by injection.
type Services struct {
	Session     SessionService
	Contact     ContactService
	Room        RoomService
	CallHistory CallHistoryService
	Dashboard   DashboardService
}

// Deps collaborators built in main.
type Deps struct {
	Repos             *repository.Repositories
	Cache             myredis.AsyncCacheService
	Hub               *session.Hub
	Publisher         session.EventPublisher // nil keeps session events in-process
	Caller            calling.Initiator
	InviteCodes       func() (string, error)
	InviteCodeRetries int
	Location          *time.Location
}

// NewServices wires the services together.
func NewServices(d Deps) *Services {
	sessionSvc := session.NewSessionService(d.Repos, d.Cache, d.Hub, d.Publisher)
	contactSvc := contact.NewContactService(d.Repos, d.Cache, d.Caller)
	roomSvc := room.NewRoomService(d.Repos, d.Caller, d.InviteCodes, d.InviteCodeRetries)
	historySvc := callhistory.NewCallHistoryService(d.Repos, d.Location)

	return &Services{
		Session:     sessionSvc,
		Contact:     contactSvc,
		Room:        roomSvc,
		CallHistory: historySvc,
		Dashboard:   dashboard.NewDashboardService(d.Repos, contactSvc, roomSvc, historySvc, sessionSvc),
	}
}
