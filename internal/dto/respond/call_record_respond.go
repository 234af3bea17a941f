package respond

import "time"

// CallRecordRespond a call from the viewer's perspective
// Used by:
//   - internal/service/callhistory/service.go: List
type CallRecordRespond struct {
	ID            string    `json:"id"`
	CallType      string    `json:"call_type"`
	Status        string    `json:"status"`
	Duration      int       `json:"duration"`
	StartedAt     time.Time `json:"started_at"`
	IsCaller      bool      `json:"is_caller"`
	Direction     string    `json:"direction"`   // Outgoing or Incoming
	Counterpart   string    `json:"counterpart"` // the other party's username
	StatusIcon    string    `json:"status_icon"`
	StartedLabel  string    `json:"started_label"`
	DurationLabel string    `json:"duration_label,omitempty"` // m:ss, absent for zero-length calls
}
