package request

import "time"

// CallRecordMessage is a finished call published by the call-execution
// subsystem on the call topic. Validated with validator/v10 before insert.
// Used by:
//   - internal/infrastructure/mq/call_record_consumer.go
//   - internal/service/callhistory/service.go: Ingest
type CallRecordMessage struct {
	CallType   string    `json:"call_type" validate:"required,oneof=video audio"`
	Status     string    `json:"status" validate:"required,max=16"`
	Duration   int       `json:"duration" validate:"gte=0"`
	StartedAt  time.Time `json:"started_at" validate:"required"`
	CallerID   string    `json:"caller_id" validate:"required"`
	ReceiverID string    `json:"receiver_id" validate:"required,nefield=CallerID"`
}
