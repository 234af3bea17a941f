package repository

import (
	"context"

	"vidcall_server/internal/model"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates the profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return wrapDBErrorf(err, "create profile %s", profile.Username)
	}
	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, wrapDBErrorf(err, "find profile id=%s", id)
	}
	return &profile, nil
}

func (r *profileRepository) FindByUsername(ctx context.Context, username string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, wrapDBErrorf(err, "find profile username=%s", username)
	}
	return &profile, nil
}

// SearchByUsername lowers both sides so the match is case-insensitive on any collation.
func (r *profileRepository) SearchByUsername(ctx context.Context, query, excludeID string, limit int) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Where("LOWER(username) LIKE LOWER(?)", "%"+query+"%").
		Where("id <> ?", excludeID).
		Order("username").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "search profiles query=%q", query)
	}
	return profiles, nil
}

func (r *profileRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "update status id=%s", id)
	}
	if res.RowsAffected == 0 {
		return wrapDBErrorf(gorm.ErrRecordNotFound, "update status id=%s", id)
	}
	return nil
}
