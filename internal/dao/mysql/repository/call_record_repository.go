package repository

import (
	"context"

	"vidcall_server/internal/model"

	"gorm.io/gorm"
)

type callRecordRepository struct {
	db *gorm.DB
}

// NewCallRecordRepository creates the call history repository
func NewCallRecordRepository(db *gorm.DB) CallRecordRepository {
	return &callRecordRepository{db: db}
}

func (r *callRecordRepository) Create(ctx context.Context, record *model.CallRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return wrapDBErrorf(err, "create call record caller_id=%s receiver_id=%s", record.CallerID, record.ReceiverID)
	}
	return nil
}

func (r *callRecordRepository) ListForUser(ctx context.Context, userID string, limit int) ([]model.CallRecord, error) {
	var records []model.CallRecord
	err := r.db.WithContext(ctx).
		Preload("Caller").
		Preload("Receiver").
		Where("caller_id = ? OR receiver_id = ?", userID, userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list call history user_id=%s", userID)
	}
	return records, nil
}
