package calling

import (
	"context"
	"testing"

	"vidcall_server/internal/model"
	"vidcall_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
)

func TestComingSoon(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		code int
		msg  string
	}{
		{"video", Request{CallerID: "a", CalleeID: "b", Type: model.CallVideo}, errorx.CodeNotImplemented, "Video call feature coming soon!"},
		{"audio", Request{CallerID: "a", CalleeID: "b", Type: model.CallAudio}, errorx.CodeNotImplemented, "Audio call feature coming soon!"},
		{"group", Request{CallerID: "a", RoomID: "r1"}, errorx.CodeNotImplemented, "Group call feature coming soon!"},
		{"unknown", Request{CallerID: "a", CalleeID: "b", Type: "fax"}, errorx.CodeInvalidParam, `unsupported call type "fax"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ComingSoon().StartCall(context.Background(), tc.req)
			var codeErr *errorx.CodeError
			if assert.ErrorAs(t, err, &codeErr) {
				assert.Equal(t, tc.code, codeErr.Code)
				assert.Equal(t, tc.msg, codeErr.Msg)
			}
		})
	}
}
