package random

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inviteCodePattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

func TestInviteCodeShape(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := InviteCode(8)
		require.NoError(t, err)
		assert.Regexp(t, inviteCodePattern, code)
	}
}

func TestInviteCodeReproducibleFromSource(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01, 0x7f, 0x33, 0xa0}, 64)

	a, err := inviteCodeFrom(bytes.NewReader(seed), 8)
	require.NoError(t, err)
	b, err := inviteCodeFrom(bytes.NewReader(seed), 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := bytes.Repeat([]byte{0x42, 0x09, 0xee, 0x15}, 64)
	c, err := inviteCodeFrom(bytes.NewReader(other), 8)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestInviteCodeSourceExhausted(t *testing.T) {
	_, err := inviteCodeFrom(bytes.NewReader(nil), 8)
	assert.Error(t, err)
}

func TestInviteCodeGenerator(t *testing.T) {
	gen := InviteCodeGenerator(12)
	code, err := gen()
	require.NoError(t, err)
	assert.Len(t, code, 12)
}
