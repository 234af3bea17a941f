package repository

import (
	"context"

	"vidcall_server/internal/model"

	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates the room repository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.GroupRoom) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return wrapDBErrorf(err, "create room name=%s", room.Name)
	}
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*model.GroupRoom, error) {
	var room model.GroupRoom
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, wrapDBErrorf(err, "find room id=%s", id)
	}
	return &room, nil
}

func (r *roomRepository) FindByInviteCode(ctx context.Context, code string) (*model.GroupRoom, error) {
	var room model.GroupRoom
	if err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&room).Error; err != nil {
		return nil, wrapDBErrorf(err, "find room invite_code=%s", code)
	}
	// MySQL's default collation ignores case; codes must match byte for byte.
	if room.InviteCode != code {
		return nil, wrapDBErrorf(gorm.ErrRecordNotFound, "find room invite_code=%s", code)
	}
	return &room, nil
}

// FindByParticipant joins room_participants to group_rooms in one query.
func (r *roomRepository) FindByParticipant(ctx context.Context, userID string) ([]model.GroupRoom, error) {
	var rooms []model.GroupRoom
	err := r.db.WithContext(ctx).
		Joins("JOIN room_participants ON room_participants.room_id = group_rooms.id").
		Where("room_participants.user_id = ?", userID).
		Order("room_participants.id").
		Find(&rooms).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list rooms user_id=%s", userID)
	}
	return rooms, nil
}
