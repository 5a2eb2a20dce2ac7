package bcryptcore

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustHex decodes a hex string, failing the test on error.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestGenHashDeterministic(t *testing.T) {
	salt := mustHex(t, "144b3d691a7b4ecf39cf735c7fa7a79c")

	h1 := GenHash([]byte("abc"), salt, 6)
	h2 := GenHash([]byte("abc"), salt, 6)

	require.Equal(t, h1, h2, "GenHash must be a pure function of its inputs")
}

func TestGenHashTruncatesPassword(t *testing.T) {
	salt := mustHex(t, "1010101010101010101010101010abcd")

	base := make([]byte, 72)
	for i := range base {
		base[i] = 'a'
	}
	extended := append(append([]byte{}, base...), 'x')

	require.Equal(t, GenHash(base, salt, 4), GenHash(extended, salt, 4))
}

func TestGenHashSaltSensitive(t *testing.T) {
	saltA := mustHex(t, "144b3d691a7b4ecf39cf735c7fa7a79c")
	saltB := mustHex(t, "7d8bdd081c8cb02a9f2bcb3cf6f3f6f6")

	require.NotEqual(
		t,
		GenHash([]byte("a"), saltA, 6),
		GenHash([]byte("a"), saltB, 6),
	)
}
