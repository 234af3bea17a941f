// Package session owns sign-in state: tokens, the redis session record,
// the gate decision and session-change fan-out.
package session

import (
	"context"
	"strings"
	"time"

	"vidcall_server/internal/dao/mysql/repository"
	myredis "vidcall_server/internal/dao/redis"
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/model"
	"vidcall_server/pkg/constants"
	"vidcall_server/pkg/errorx"
	"vidcall_server/pkg/util/jwt"

	"go.uber.org/zap"
)

// EventPublisher forwards session events beyond this process (kafka).
type EventPublisher interface {
	PublishSessionEvent(ctx context.Context, event model.SessionEvent) error
}

// sessionService session business logic
type sessionService struct {
	repos     *repository.Repositories
	cache     myredis.CacheService
	hub       *Hub
	publisher EventPublisher // nil when events stay in-process
	now       func() time.Time
}

// NewSessionService publisher may be nil.
func NewSessionService(repos *repository.Repositories, cache myredis.CacheService, hub *Hub, publisher EventPublisher) *sessionService {
	return &sessionService{
		repos:     repos,
		cache:     cache,
		hub:       hub,
		publisher: publisher,
		now:       time.Now,
	}
}

func sessionKey(userID string) string {
	return constants.SESSION_TOKEN_PREFIX + userID
}

// Register creates a profile. Usernames are unique.
func (s *sessionService) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	profile := &model.Profile{
		Username:    strings.TrimSpace(req.Username),
		RawPassword: req.Password,
	}
	if profile.Username == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "Please enter a username")
	}
	if err := s.repos.Profile.Create(ctx, profile); err != nil {
		if errorx.IsDuplicate(err) {
			return nil, errorx.New(errorx.CodeUserExist, "Username already taken")
		}
		zap.L().Error("create profile failed", zap.String("username", profile.Username), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RegisterRespond{UserID: profile.ID, Username: profile.Username}, nil
}

// Login checks the password, issues a token pair and records the session.
// A new sign-in replaces any earlier session of the same user; streams
// opened under that session receive SIGNED_OUT and are closed.
func (s *sessionService) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	profile, err := s.repos.Profile.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "User does not exist")
		}
		zap.L().Error("find profile failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !profile.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "Incorrect password")
	}

	previous, err := s.cache.Get(ctx, sessionKey(profile.ID))
	if err != nil {
		zap.L().Warn("load previous session failed", zap.String("user_id", profile.ID), zap.Error(err))
	}
	if previous != "" {
		s.emit(ctx, model.SessionEvent{
			Type:     model.SessionSignedOut,
			UserID:   profile.ID,
			Redirect: constants.AUTH_PATH,
		})
		s.hub.Drop(profile.ID)
	}

	pair, err := jwt.GeneratePair(profile.ID)
	if err != nil {
		zap.L().Error("generate token pair failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if err := s.cache.Set(ctx, sessionKey(profile.ID), pair.TokenID, jwt.RefreshExpiry()); err != nil {
		zap.L().Error("store session failed", zap.String("user_id", profile.ID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if err := s.repos.Profile.UpdateStatus(ctx, profile.ID, model.StatusOnline); err != nil {
		zap.L().Warn("mark online failed", zap.String("user_id", profile.ID), zap.Error(err))
	}

	s.emit(ctx, model.SessionEvent{
		Type:     model.SessionSignedIn,
		UserID:   profile.ID,
		Redirect: constants.DASHBOARD_PATH,
	})

	return &respond.LoginRespond{
		UserID:       profile.ID,
		Username:     profile.Username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Refresh swaps a refresh token for a new access token of the same session.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (*respond.RefreshRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil || claims.Subject != jwt.SubjectRefresh {
		return nil, errorx.ErrUnauthorized
	}
	stored, err := s.cache.Get(ctx, sessionKey(claims.UserID))
	if err != nil {
		zap.L().Error("load session failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if stored == "" || stored != claims.TokenID {
		return nil, errorx.ErrUnauthorized
	}
	access, err := jwt.GenerateAccessToken(claims.UserID, claims.TokenID)
	if err != nil {
		zap.L().Error("generate access token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RefreshRespond{AccessToken: access}, nil
}

// ResolveUserID maps an access token to its user while the session is live.
// Cache failures count as no session.
func (s *sessionService) ResolveUserID(ctx context.Context, accessToken string) (string, bool) {
	if accessToken == "" {
		return "", false
	}
	claims, err := jwt.ParseToken(accessToken)
	if err != nil || claims.Subject != jwt.SubjectAccess {
		return "", false
	}
	stored, err := s.cache.Get(ctx, sessionKey(claims.UserID))
	if err != nil {
		zap.L().Error("load session failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return "", false
	}
	if stored == "" || stored != claims.TokenID {
		return "", false
	}
	return claims.UserID, true
}

// Current returns the signed-in profile, or a null session.
func (s *sessionService) Current(ctx context.Context, accessToken string) (*respond.CurrentSessionRespond, error) {
	userID, ok := s.ResolveUserID(ctx, accessToken)
	if !ok {
		return &respond.CurrentSessionRespond{}, nil
	}
	profile, err := s.repos.Profile.FindByID(ctx, userID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return &respond.CurrentSessionRespond{}, nil
		}
		zap.L().Error("load session profile failed", zap.String("user_id", userID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.CurrentSessionRespond{Session: ProfileView(profile)}, nil
}

// Gate resolves the session and decides whether view may render.
func (s *sessionService) Gate(ctx context.Context, accessToken, view string) *respond.GateRespond {
	_, ok := s.ResolveUserID(ctx, accessToken)
	return &respond.GateRespond{
		View:          view,
		Authenticated: ok,
		Redirect:      Decide(view, ok),
	}
}

// SignOut ends the user's session and tells every open subscription.
func (s *sessionService) SignOut(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, sessionKey(userID)); err != nil {
		zap.L().Error("delete session failed", zap.String("user_id", userID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.repos.Profile.UpdateStatus(ctx, userID, model.StatusOffline); err != nil {
		zap.L().Warn("mark offline failed", zap.String("user_id", userID), zap.Error(err))
	}

	s.emit(ctx, model.SessionEvent{
		Type:     model.SessionSignedOut,
		UserID:   userID,
		Redirect: constants.AUTH_PATH,
	})
	s.hub.Drop(userID)
	return nil
}

// Subscribe streams session events for userID until cancel is called.
func (s *sessionService) Subscribe(userID string) (<-chan model.SessionEvent, func()) {
	return s.hub.Subscribe(userID)
}

// emit publishes locally, then to kafka when configured. Kafka failures are logged only.
func (s *sessionService) emit(ctx context.Context, event model.SessionEvent) {
	event.OccurredAt = s.now()
	s.hub.Publish(event)
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
		zap.L().Error("publish session event failed",
			zap.String("user_id", event.UserID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

// ProfileView public fields of a profile.
func ProfileView(p *model.Profile) *respond.ProfileRespond {
	return &respond.ProfileRespond{
		ID:        p.ID,
		Username:  p.Username,
		Status:    p.Status,
		AvatarURL: p.AvatarURL,
	}
}
