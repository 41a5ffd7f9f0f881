package domain

import (
	"crypto/rand"
	"math/big"
)

const (
	SessionIDLength = 6
	DJKeyLength     = 32

	sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	djKeyAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewSessionID returns a short shareable session code. Uniqueness is not
// guaranteed by construction; collisions are not re-rolled.
func NewSessionID() string {
	return randomString(sessionIDAlphabet, SessionIDLength)
}

// NewDJKey returns the bearer secret for the DJ tier. Drawn from a
// cryptographic source since the key alone grants access.
func NewDJKey() string {
	return randomString(djKeyAlphabet, DJKeyLength)
}

func randomString(alphabet string, length int) string {
	max := big.NewInt(int64(len(alphabet)))

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = alphabet[n.Int64()]
	}

	return string(buf)
}
