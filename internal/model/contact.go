package model

import "time"

// Contact is a directed link: UserID has added ContactID to their address book.
// The (user_id, contact_id) pair is unique.
type Contact struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:idx_contact_pair,priority:1;comment:owner"`
	ContactID string    `gorm:"column:contact_id;type:char(36);not null;uniqueIndex:idx_contact_pair,priority:2;index;comment:added profile"`
	CreatedAt time.Time `gorm:"column:created_at"`

	Owner   *Profile `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Profile *Profile `gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Contact) TableName() string {
	return "contacts"
}
