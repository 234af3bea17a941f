// Package model defines the persisted entities.
// This file holds the user profile, the identity every other table points at.
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// presence values for Profile.Status
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Profile maps to the profiles table.
type Profile struct {
	// ID uuid string
	ID string `gorm:"column:id;primaryKey;type:char(36)" json:"id"`

	// Username display name, unique, searched case-insensitively
	Username string `gorm:"column:username;uniqueIndex;type:varchar(32);not null;comment:display name" json:"username"`

	// Password bcrypt hash, never serialised
	Password string `gorm:"column:password;type:varchar(100);not null" json:"-"`

	// Status presence, online or offline
	Status string `gorm:"column:status;type:varchar(16);not null;default:offline" json:"status"`

	// AvatarURL optional
	AvatarURL *string `gorm:"column:avatar_url;type:varchar(255)" json:"avatar_url"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`

	// RawPassword plaintext handed in at sign-up; hashed in BeforeSave
	RawPassword string `gorm:"-" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns an id when the caller did not.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusOffline
	}
	return nil
}

// BeforeSave hashes RawPassword into Password and clears the plaintext.
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	if p.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		p.Password = string(hash)
		p.RawPassword = ""
	}
	return nil
}

// CheckPassword compares plaintext against the stored hash.
func (p *Profile) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(plaintext)) == nil
}
