// Package calling is the boundary between the dashboard and call execution.
// Signaling and media live elsewhere; this package only decides whether a
// call may start.
package calling

import (
	"context"

	"vidcall_server/internal/model"
	"vidcall_server/pkg/errorx"
)

// Request describes a call to place. RoomID set means a group call.
type Request struct {
	CallerID string
	CalleeID string
	RoomID   string
	Type     model.CallType
}

// Initiator starts calls. A real implementation hands the request to the
// signaling subsystem and returns once the call is ringing.
type Initiator interface {
	StartCall(ctx context.Context, req Request) error
}

type comingSoon struct{}

// ComingSoon returns an Initiator that refuses every call with CodeNotImplemented.
func ComingSoon() Initiator {
	return comingSoon{}
}

func (comingSoon) StartCall(_ context.Context, req Request) error {
	if req.RoomID != "" {
		return errorx.New(errorx.CodeNotImplemented, "Group call feature coming soon!")
	}
	switch req.Type {
	case model.CallVideo:
		return errorx.New(errorx.CodeNotImplemented, "Video call feature coming soon!")
	case model.CallAudio:
		return errorx.New(errorx.CodeNotImplemented, "Audio call feature coming soon!")
	default:
		return errorx.Newf(errorx.CodeInvalidParam, "unsupported call type %q", req.Type)
	}
}
