package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallType video or audio
type CallType string

const (
	CallVideo CallType = "video"
	CallAudio CallType = "audio"
)

// call outcomes known to the history view; anything else renders generically
const (
	CallCompleted = "completed"
	CallMissed    = "missed"
	CallDeclined  = "declined"
)

// CallRecord an immutable log entry of a past call between two profiles.
// Rows are written only by the call ingestion consumer.
type CallRecord struct {
	ID         string    `gorm:"column:id;primaryKey;type:char(36)"`
	CallType   CallType  `gorm:"column:call_type;type:varchar(8);not null"`
	Status     string    `gorm:"column:status;type:varchar(16);not null"`
	Duration   int       `gorm:"column:duration;not null;default:0;comment:seconds"`
	StartedAt  time.Time `gorm:"column:started_at;not null;index"`
	CallerID   string    `gorm:"column:caller_id;type:char(36);not null;index"`
	ReceiverID string    `gorm:"column:receiver_id;type:char(36);not null;index"`

	Caller   *Profile `gorm:"foreignKey:CallerID;references:ID"`
	Receiver *Profile `gorm:"foreignKey:ReceiverID;references:ID"`
}

func (CallRecord) TableName() string {
	return "call_history"
}

func (c *CallRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
