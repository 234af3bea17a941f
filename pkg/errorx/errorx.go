// Package errorx carries business error codes through the service layers.
package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error tagged with a business code.
// It wraps an optional cause, so errors.Is/errors.As can walk past it.
type CodeError struct {
	Code  int    // business code
	Msg   string // user-facing message
	cause error  // wrapped error
}

// Error returns "msg: cause" when a cause is present, otherwise just the message.
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the wrapped cause.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a code and message to err.
// Usage: errorx.Wrap(err, CodeNotFound, "room not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
// Usage: errorx.Wrapf(err, CodeNotFound, "profile %s not found", id)
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code, falling back to CodeServerBusy.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business codes
const (
	CodeSuccess           = 1000 // ok
	CodeInvalidParam      = 1001 // bad request parameters
	CodeUserExist         = 1002 // username taken
	CodeUserNotExist      = 1003 // unknown user
	CodeInvalidPassword   = 1004 // wrong password
	CodeServerBusy        = 1005 // generic failure
	CodeUnauthorized      = 1006 // no session
	CodeNotFound          = 1008 // missing resource
	CodeDBError           = 1010 // database failure
	CodeCacheError        = 1011 // cache failure
	CodeDuplicate         = 1012 // unique constraint hit
	CodeInvalidInviteCode = 1013 // no room for the invite code
	CodeAlreadyInRoom     = 1014 // participant already present
	CodeNotImplemented    = 1015 // capability not available yet
)

// Shared instances, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "Invalid request parameters")
	ErrServerBusy   = New(CodeServerBusy, "Server busy, please try again")
	ErrUnauthorized = New(CodeUnauthorized, "Please sign in first")
)

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}

// IsDuplicate reports whether err carries CodeDuplicate.
func IsDuplicate(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeDuplicate
}
