// Package dashboard composes the contacts, rooms and history views into
// the signed-in landing screen.
package dashboard

import (
	"context"

	"vidcall_server/internal/dao/mysql/repository"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/service/session"
	"vidcall_server/pkg/constants"
	"vidcall_server/pkg/errorx"

	"go.uber.org/zap"
)

// Tabs in display order.
const (
	TabContacts = "contacts"
	TabGroups   = "groups"
	TabHistory  = "history"
)

var tabs = []string{TabContacts, TabGroups, TabHistory}

// ContactLister is the slice of the contact service the dashboard needs.
type ContactLister interface {
	List(ctx context.Context, userID string) ([]respond.ContactRespond, error)
}

// RoomLister
type RoomLister interface {
	List(ctx context.Context, userID string) ([]respond.RoomRespond, error)
}

// HistoryLister
type HistoryLister interface {
	List(ctx context.Context, userID string) []respond.CallRecordRespond
}

// SignOuter ends a session.
type SignOuter interface {
	SignOut(ctx context.Context, userID string) error
}

type dashboardService struct {
	repos    *repository.Repositories
	contacts ContactLister
	rooms    RoomLister
	history  HistoryLister
	sessions SignOuter
}

// NewDashboardService constructor
func NewDashboardService(repos *repository.Repositories, contacts ContactLister, rooms RoomLister, history HistoryLister, sessions SignOuter) *dashboardService {
	return &dashboardService{
		repos:    repos,
		contacts: contacts,
		rooms:    rooms,
		history:  history,
		sessions: sessions,
	}
}

// Load returns the profile, the tab strip and the data of the selected tab.
func (s *dashboardService) Load(ctx context.Context, userID, tab string) (*respond.DashboardRespond, error) {
	if tab == "" {
		tab = TabContacts
	}

	var (
		data any
		err  error
	)
	switch tab {
	case TabContacts:
		data, err = s.contacts.List(ctx, userID)
	case TabGroups:
		data, err = s.rooms.List(ctx, userID)
	case TabHistory:
		data = s.history.List(ctx, userID)
	default:
		return nil, errorx.Newf(errorx.CodeInvalidParam, "unknown tab %q", tab)
	}
	if err != nil {
		return nil, err
	}

	profile, err := s.repos.Profile.FindByID(ctx, userID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.ErrUnauthorized
		}
		zap.L().Error("load dashboard profile failed", zap.String("user_id", userID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.DashboardRespond{
		Profile:   *session.ProfileView(profile),
		Tabs:      tabs,
		ActiveTab: tab,
		TabData:   data,
	}, nil
}

// Logout signs the user out and points the client at the auth page.
func (s *dashboardService) Logout(ctx context.Context, userID string) (*respond.RedirectRespond, error) {
	if err := s.sessions.SignOut(ctx, userID); err != nil {
		return nil, err
	}
	return &respond.RedirectRespond{Redirect: constants.AUTH_PATH}, nil
}
