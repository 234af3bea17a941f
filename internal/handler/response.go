package handler

import (
	"errors"
	"net/http"

	"vidcall_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData the envelope every endpoint returns
type ResponseData struct {
	Code int `json:"code"`           // business code
	Msg  any `json:"msg"`            // message shown to the user
	Data any `json:"data"`           // payload, null on failure
}

func reply(c *gin.Context, code int, msg any, data any) {
	c.JSON(http.StatusOK, ResponseData{Code: code, Msg: msg, Data: data})
}

// HandleSuccess replies with CodeSuccess and the default message.
func HandleSuccess(c *gin.Context, data any) {
	HandleSuccessMsg(c, "success", data)
}

// HandleSuccessMsg replies with CodeSuccess and a user-facing message.
func HandleSuccessMsg(c *gin.Context, msg string, data any) {
	reply(c, errorx.CodeSuccess, msg, data)
}

// HandleError maps a *errorx.CodeError to its code and message; anything
// else is logged and reported as CodeServerBusy.
//
//	if err := svc.DoSomething(); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		reply(c, codeErr.Code, codeErr.Msg, nil)
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	reply(c, errorx.ErrServerBusy.Code, errorx.ErrServerBusy.Msg, nil)
}

// HandleParamError reports binding failures, translating validator errors
// into per-field messages keyed by json name.
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		reply(c, errorx.ErrInvalidParam.Code, RemoveTopStruct(validationErrs.Translate(Trans)), nil)
		return
	}

	zap.L().Warn("param bind error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	reply(c, errorx.ErrInvalidParam.Code, errorx.ErrInvalidParam.Msg, nil)
}
