package repository

import (
	"context"

	"vidcall_server/internal/model"

	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates the room membership repository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *model.RoomParticipant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return wrapDBErrorf(err, "add participant room_id=%s user_id=%s", participant.RoomID, participant.UserID)
	}
	return nil
}

func (r *participantRepository) Exists(ctx context.Context, roomID, userID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomParticipant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&n).Error
	if err != nil {
		return false, wrapDBErrorf(err, "check participant room_id=%s user_id=%s", roomID, userID)
	}
	return n > 0, nil
}

// CountByRooms SELECT room_id, COUNT(*) ... WHERE room_id IN (...) GROUP BY room_id
func (r *participantRepository) CountByRooms(ctx context.Context, roomIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(roomIDs))
	if len(roomIDs) == 0 {
		return counts, nil
	}
	var rows []model.RoomCount
	err := r.db.WithContext(ctx).
		Model(&model.RoomParticipant{}).
		Select("room_id, COUNT(*) AS count").
		Where("room_id IN ?", roomIDs).
		Group("room_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "count participants")
	}
	for _, row := range rows {
		counts[row.RoomID] = row.Count
	}
	return counts, nil
}
