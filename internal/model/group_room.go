package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRoom a named room joinable by invite code. InviteCode is unique.
type GroupRoom struct {
	ID         string    `gorm:"column:id;primaryKey;type:char(36)"`
	Name       string    `gorm:"column:name;type:varchar(64);not null"`
	InviteCode string    `gorm:"column:invite_code;type:varchar(16);not null;uniqueIndex;comment:join token"`
	CreatorID  string    `gorm:"column:creator_id;type:char(36);not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Creator *Profile `gorm:"foreignKey:CreatorID;references:ID"`
}

func (GroupRoom) TableName() string {
	return "group_rooms"
}

func (r *GroupRoom) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
