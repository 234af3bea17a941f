// Package callhistory renders a user's recent calls and ingests finished
// calls reported by the call-execution subsystem.
package callhistory

import (
	"context"
	"fmt"
	"time"

	"vidcall_server/internal/dao/mysql/repository"
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/model"
	"vidcall_server/pkg/constants"
	"vidcall_server/pkg/errorx"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	DirectionOutgoing = "Outgoing"
	DirectionIncoming = "Incoming"

	startedLayout = "Jan 2, 3:04 PM"
	unknownName   = "Unknown"
)

// callHistoryService call history business logic
type callHistoryService struct {
	repos    *repository.Repositories
	loc      *time.Location
	validate *validator.Validate
}

// NewCallHistoryService loc is the zone used for started_label.
func NewCallHistoryService(repos *repository.Repositories, loc *time.Location) *callHistoryService {
	if loc == nil {
		loc = time.Local
	}
	return &callHistoryService{repos: repos, loc: loc, validate: validator.New()}
}

// List returns the user's latest calls, newest first. Load failures are
// logged and yield an empty list.
func (s *callHistoryService) List(ctx context.Context, userID string) []respond.CallRecordRespond {
	records, err := s.repos.CallRecord.ListForUser(ctx, userID, constants.HISTORY_LIMIT)
	if err != nil {
		zap.L().Error("load call history failed", zap.String("user_id", userID), zap.Error(err))
		return []respond.CallRecordRespond{}
	}

	rsp := make([]respond.CallRecordRespond, 0, len(records))
	for i := range records {
		rsp = append(rsp, s.view(&records[i], userID))
	}
	return rsp
}

func (s *callHistoryService) view(r *model.CallRecord, userID string) respond.CallRecordRespond {
	isCaller := r.CallerID == userID
	direction, other := DirectionIncoming, r.Caller
	if isCaller {
		direction, other = DirectionOutgoing, r.Receiver
	}
	counterpart := unknownName
	if other != nil && other.Username != "" {
		counterpart = other.Username
	}

	return respond.CallRecordRespond{
		ID:            r.ID,
		CallType:      string(r.CallType),
		Status:        r.Status,
		Duration:      r.Duration,
		StartedAt:     r.StartedAt,
		IsCaller:      isCaller,
		Direction:     direction,
		Counterpart:   counterpart,
		StatusIcon:    StatusIcon(r.Status),
		StartedLabel:  r.StartedAt.In(s.loc).Format(startedLayout),
		DurationLabel: FormatDuration(r.Duration),
	}
}

// StatusIcon names the icon shown next to a call.
func StatusIcon(status string) string {
	switch status {
	case model.CallCompleted:
		return "video"
	case model.CallMissed:
		return "phone-missed"
	case model.CallDeclined:
		return "phone-off"
	default:
		return "phone"
	}
}

// FormatDuration renders seconds as m:ss; zero renders as "".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Ingest validates and stores one finished call.
func (s *callHistoryService) Ingest(ctx context.Context, msg request.CallRecordMessage) error {
	if err := s.validate.Struct(msg); err != nil {
		return errorx.Wrap(err, errorx.CodeInvalidParam, "invalid call record")
	}
	for _, id := range []string{msg.CallerID, msg.ReceiverID} {
		if _, err := s.repos.Profile.FindByID(ctx, id); err != nil {
			if errorx.IsNotFound(err) {
				return errorx.Newf(errorx.CodeUserNotExist, "call record references unknown profile %s", id)
			}
			return err
		}
	}

	record := &model.CallRecord{
		CallType:   model.CallType(msg.CallType),
		Status:     msg.Status,
		Duration:   msg.Duration,
		StartedAt:  msg.StartedAt,
		CallerID:   msg.CallerID,
		ReceiverID: msg.ReceiverID,
	}
	return s.repos.CallRecord.Create(ctx, record)
}
