package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewSessionID_Has_Expected_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewSessionID()

		require.Len(t, id, SessionIDLength)
		for _, r := range id {
			require.Contains(t, sessionIDAlphabet, string(r))
		}
	}
}

func Test_NewDJKey_Has_Expected_Shape(t *testing.T) {
	key := NewDJKey()

	require.Len(t, key, DJKeyLength)
	for _, r := range key {
		require.Contains(t, djKeyAlphabet, string(r))
	}
}

func Test_NewDJKey_Does_Not_Repeat(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		key := NewDJKey()

		require.False(t, seen[key])
		seen[key] = true
	}
}
