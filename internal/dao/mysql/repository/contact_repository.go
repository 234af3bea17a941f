package repository

import (
	"context"

	"vidcall_server/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates the contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return wrapDBErrorf(err, "create contact user_id=%s contact_id=%s", contact.UserID, contact.ContactID)
	}
	return nil
}

func (r *contactRepository) ListWithProfiles(ctx context.Context, userID string) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("user_id = ?", userID).
		Order("id").
		Find(&contacts).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list contacts user_id=%s", userID)
	}
	return contacts, nil
}

func (r *contactRepository) ListContactIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("contact_id", &ids).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list contact ids user_id=%s", userID)
	}
	return ids, nil
}
