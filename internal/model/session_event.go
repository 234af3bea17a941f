package model

import "time"

// SessionEventType the kinds of session change pushed to subscribers
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "SIGNED_IN"
	SessionSignedOut SessionEventType = "SIGNED_OUT"
)

// SessionEvent is delivered to session subscribers and published to Kafka.
// Redirect carries the gate's decision for a protected view after the change.
type SessionEvent struct {
	Type       SessionEventType `json:"type"`
	UserID     string           `json:"user_id"`
	Redirect   string           `json:"redirect,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
