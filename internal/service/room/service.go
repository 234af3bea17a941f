// Package room manages group rooms: listing with member counts, creation
// with a unique invite code, and joining by code.
package room

import (
	"context"
	"strings"

	"vidcall_server/internal/dao/mysql/repository"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/model"
	"vidcall_server/internal/service/calling"
	"vidcall_server/pkg/errorx"

	"go.uber.org/zap"
)

// roomService group room business logic
type roomService struct {
	repos   *repository.Repositories
	caller  calling.Initiator
	codeGen func() (string, error)
	retries int // regenerations allowed after an invite-code collision
}

// NewRoomService codeGen produces invite codes; retries bounds regeneration on collision.
func NewRoomService(repos *repository.Repositories, caller calling.Initiator, codeGen func() (string, error), retries int) *roomService {
	if retries < 0 {
		retries = 0
	}
	return &roomService{repos: repos, caller: caller, codeGen: codeGen, retries: retries}
}

func toRespond(r *model.GroupRoom, count int64) respond.RoomRespond {
	return respond.RoomRespond{
		ID:               r.ID,
		Name:             r.Name,
		InviteCode:       r.InviteCode,
		CreatorID:        r.CreatorID,
		CreatedAt:        r.CreatedAt,
		ParticipantCount: count,
	}
}

// List returns the rooms the user belongs to, counted in one query.
func (s *roomService) List(ctx context.Context, userID string) ([]respond.RoomRespond, error) {
	failed := errorx.New(errorx.CodeServerBusy, "Failed to load rooms")

	rooms, err := s.repos.Room.FindByParticipant(ctx, userID)
	if err != nil {
		zap.L().Error("list rooms failed", zap.String("user_id", userID), zap.Error(err))
		return nil, failed
	}
	if len(rooms) == 0 {
		return []respond.RoomRespond{}, nil
	}

	ids := make([]string, len(rooms))
	for i := range rooms {
		ids[i] = rooms[i].ID
	}
	counts, err := s.repos.Participant.CountByRooms(ctx, ids)
	if err != nil {
		zap.L().Error("count participants failed", zap.String("user_id", userID), zap.Error(err))
		return nil, failed
	}

	rsp := make([]respond.RoomRespond, 0, len(rooms))
	for i := range rooms {
		rsp = append(rsp, toRespond(&rooms[i], counts[rooms[i].ID]))
	}
	return rsp, nil
}

// Create inserts the room and its creator's membership atomically. A taken
// invite code is regenerated up to retries times.
func (s *roomService) Create(ctx context.Context, userID, name string) (*respond.RoomRespond, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "Please enter a room name")
	}
	failed := errorx.New(errorx.CodeServerBusy, "Failed to create room")

	for attempt := 0; attempt <= s.retries; attempt++ {
		code, err := s.codeGen()
		if err != nil {
			zap.L().Error("generate invite code failed", zap.Error(err))
			return nil, failed
		}

		room := &model.GroupRoom{Name: name, InviteCode: code, CreatorID: userID}
		err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
			if err := tx.Room.Create(ctx, room); err != nil {
				return err
			}
			return tx.Participant.Create(ctx, &model.RoomParticipant{RoomID: room.ID, UserID: userID})
		})
		if err == nil {
			rsp := toRespond(room, 1)
			return &rsp, nil
		}
		if !errorx.IsDuplicate(err) {
			zap.L().Error("create room failed", zap.String("user_id", userID), zap.Error(err))
			return nil, failed
		}
		zap.L().Warn("invite code collision, regenerating", zap.String("code", code), zap.Int("attempt", attempt))
	}

	zap.L().Error("invite code retries exhausted", zap.String("user_id", userID), zap.Int("retries", s.retries))
	return nil, failed
}

// Join adds the user to the room holding code.
func (s *roomService) Join(ctx context.Context, userID, code string) (*respond.RoomRespond, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "Please enter an invite code")
	}
	failed := errorx.New(errorx.CodeServerBusy, "Failed to join room")

	room, err := s.repos.Room.FindByInviteCode(ctx, code)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeInvalidInviteCode, "Invalid invite code")
		}
		zap.L().Error("find room by code failed", zap.Error(err))
		return nil, failed
	}

	if err := s.repos.Participant.Create(ctx, &model.RoomParticipant{RoomID: room.ID, UserID: userID}); err != nil {
		if errorx.IsDuplicate(err) {
			return nil, errorx.New(errorx.CodeAlreadyInRoom, "You're already in this room")
		}
		zap.L().Error("join room failed", zap.String("room_id", room.ID), zap.String("user_id", userID), zap.Error(err))
		return nil, failed
	}

	counts, err := s.repos.Participant.CountByRooms(ctx, []string{room.ID})
	if err != nil {
		zap.L().Warn("count participants failed", zap.String("room_id", room.ID), zap.Error(err))
	}
	rsp := toRespond(room, counts[room.ID])
	return &rsp, nil
}

// InviteCode returns the code of a room the user belongs to.
func (s *roomService) InviteCode(ctx context.Context, userID, roomID string) (*respond.InviteCodeRespond, error) {
	room, err := s.memberRoom(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}
	return &respond.InviteCodeRespond{RoomID: room.ID, InviteCode: room.InviteCode}, nil
}

// StartCall hands a group call to the calling boundary.
func (s *roomService) StartCall(ctx context.Context, userID, roomID string) error {
	if _, err := s.memberRoom(ctx, userID, roomID); err != nil {
		return err
	}
	return s.caller.StartCall(ctx, calling.Request{CallerID: userID, RoomID: roomID, Type: model.CallVideo})
}

func (s *roomService) memberRoom(ctx context.Context, userID, roomID string) (*model.GroupRoom, error) {
	notFound := errorx.New(errorx.CodeNotFound, "Room not found")
	ok, err := s.repos.Participant.Exists(ctx, roomID, userID)
	if err != nil {
		zap.L().Error("check membership failed", zap.String("room_id", roomID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !ok {
		return nil, notFound
	}
	room, err := s.repos.Room.FindByID(ctx, roomID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, notFound
		}
		zap.L().Error("find room failed", zap.String("room_id", roomID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return room, nil
}
