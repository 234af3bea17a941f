package random

import (
	"crypto/rand"
	"io"
	"math/big"
)

// base-36 alphabet used for invite codes
const inviteCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// InviteCode returns a random lowercase alphanumeric string of the given length.
func InviteCode(length int) (string, error) {
	return inviteCodeFrom(rand.Reader, length)
}

// InviteCodeGenerator returns a generator bound to a fixed length, suitable
// for injection into services.
func InviteCodeGenerator(length int) func() (string, error) {
	return func() (string, error) {
		return InviteCode(length)
	}
}

func inviteCodeFrom(src io.Reader, length int) (string, error) {
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(inviteCharset)))
	for i := range result {
		n, err := rand.Int(src, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = inviteCharset[n.Int64()]
	}
	return string(result), nil
}
