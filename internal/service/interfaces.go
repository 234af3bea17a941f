// Package service declares the business interfaces the handler layer
// depends on. Implementations live in the sub-packages.
package service

import (
	"context"

	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/model"
)

// SessionService sign-up, sign-in, the session gate and session events
type SessionService interface {
	// Register creates a profile
	Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login issues a token pair and starts the session
	Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error)
	// Refresh issues a new access token for the live session
	Refresh(ctx context.Context, refreshToken string) (*respond.RefreshRespond, error)
	// Current returns the signed-in profile; Session is nil when absent
	Current(ctx context.Context, accessToken string) (*respond.CurrentSessionRespond, error)
	// Gate decides whether view may render for the token's session
	Gate(ctx context.Context, accessToken, view string) *respond.GateRespond
	// ResolveUserID reports the user of a live session
	ResolveUserID(ctx context.Context, accessToken string) (string, bool)
	// SignOut ends the session and notifies subscribers
	SignOut(ctx context.Context, userID string) error
	// Subscribe streams the user's session events until cancel is called
	Subscribe(userID string) (<-chan model.SessionEvent, func())
}

// ContactService the contact list and user search
type ContactService interface {
	// List contacts in insertion order
	List(ctx context.Context, userID string) ([]respond.ContactRespond, error)
	// Search other users by name; a blank query returns nothing
	Search(ctx context.Context, userID, query string) ([]respond.SearchUserRespond, error)
	// Add a profile to the user's contacts
	Add(ctx context.Context, userID, contactID string) error
	// InitiateCall starts a one-to-one call
	InitiateCall(ctx context.Context, userID string, req request.InitiateCallRequest) error
}

// RoomService group rooms
type RoomService interface {
	// List rooms the user belongs to, with member counts
	List(ctx context.Context, userID string) ([]respond.RoomRespond, error)
	// Create a room; the creator becomes its first member
	Create(ctx context.Context, userID, name string) (*respond.RoomRespond, error)
	// Join the room holding the invite code
	Join(ctx context.Context, userID, code string) (*respond.RoomRespond, error)
	// InviteCode of a room the user belongs to
	InviteCode(ctx context.Context, userID, roomID string) (*respond.InviteCodeRespond, error)
	// StartCall starts a group call in the room
	StartCall(ctx context.Context, userID, roomID string) error
}

// CallHistoryService recent calls
type CallHistoryService interface {
	// List newest first; never fails, errors yield an empty list
	List(ctx context.Context, userID string) []respond.CallRecordRespond
	// Ingest stores a finished call
	Ingest(ctx context.Context, msg request.CallRecordMessage) error
}

// DashboardService the signed-in shell
type DashboardService interface {
	// Load the profile, tabs and the active tab's data
	Load(ctx context.Context, userID, tab string) (*respond.DashboardRespond, error)
	// Logout ends the session and returns where to go
	Logout(ctx context.Context, userID string) (*respond.RedirectRespond, error)
}
