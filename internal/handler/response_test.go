package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidcall_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h gin.HandlerFunc) ResponseData {
	return serveBody(t, h, "{}")
}

func serveBody(t *testing.T, h gin.HandlerFunc, payload string) ResponseData {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", h)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body ResponseData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleErrorKeepsBusinessCode(t *testing.T) {
	body := serve(t, func(c *gin.Context) {
		HandleError(c, errorx.Wrap(errors.New("duplicate key"), errorx.CodeAlreadyInRoom, "You're already in this room"))
	})
	assert.Equal(t, errorx.CodeAlreadyInRoom, body.Code)
	assert.Equal(t, "You're already in this room", body.Msg)
}

func TestHandleErrorHidesSystemErrors(t *testing.T) {
	body := serve(t, func(c *gin.Context) {
		HandleError(c, errors.New("dial tcp: connection refused"))
	})
	assert.Equal(t, errorx.CodeServerBusy, body.Code)
	assert.Equal(t, errorx.ErrServerBusy.Msg, body.Msg)
}

func TestHandleSuccessMsg(t *testing.T) {
	body := serve(t, func(c *gin.Context) {
		HandleSuccessMsg(c, "Contact added!", nil)
	})
	assert.Equal(t, errorx.CodeSuccess, body.Code)
	assert.Equal(t, "Contact added!", body.Msg)
}

func TestHandleParamErrorTranslatesFields(t *testing.T) {
	require.NoError(t, InitTrans("en"))
	type payload struct {
		RoomID string `json:"room_id" binding:"required"`
	}
	body := serve(t, func(c *gin.Context) {
		var p payload
		HandleParamError(c, c.ShouldBindJSON(&p))
	})
	assert.Equal(t, errorx.CodeInvalidParam, body.Code)
	fields, ok := body.Msg.(map[string]any)
	require.True(t, ok, "msg should be a field map, got %T", body.Msg)
	assert.Contains(t, fields, "room_id")
}

func TestRemoveTopStruct(t *testing.T) {
	got := RemoveTopStruct(map[string]string{"JoinRoomRequest.invite_code": "too long"})
	assert.Equal(t, map[string]string{"invite_code": "too long"}, got)
}

func TestHandleParamErrorMalformedJSON(t *testing.T) {
	body := serveBody(t, func(c *gin.Context) {
		var p struct {
			Name string `json:"name"`
		}
		HandleParamError(c, c.ShouldBindJSON(&p))
	}, "{not json")
	assert.Equal(t, errorx.CodeInvalidParam, body.Code)
	assert.Equal(t, errorx.ErrInvalidParam.Msg, body.Msg)
}

func TestEnvelopeAlwaysCarriesData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { HandleError(c, errorx.ErrUnauthorized) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Len(t, raw, 3)
	assert.Equal(t, "null", string(raw["data"]))
}
