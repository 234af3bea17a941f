package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrapf(cause, CodeDBError, "insert room %s", "r1")

	assert.Equal(t, "insert room r1: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeDBError, GetCode(fmt.Errorf("outer: %w", err)))
}

func TestGetCodeFallsBackToServerBusy(t *testing.T) {
	assert.Equal(t, CodeServerBusy, GetCode(errors.New("plain")))
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsNotFound(New(CodeNotFound, "missing")))
	assert.False(t, IsNotFound(New(CodeDBError, "db")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("record not found")), "only coded errors classify")
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", New(CodeNotFound, "missing"))))

	assert.True(t, IsDuplicate(Wrap(errors.New("dup"), CodeDuplicate, "room")))
	assert.False(t, IsDuplicate(ErrServerBusy))
}
