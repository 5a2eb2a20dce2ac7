package bcryptb64

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodedLen(t *testing.T) {
	// to_size(n) for n = 0..9, per spec.
	want := []int{0, 2, 3, 4, 6, 7, 8, 10, 11, 12}
	for n, w := range want {
		assert.Equal(t, w, EncodedLen(n), "n=%d", n)
	}
}

func TestDecodedLen(t *testing.T) {
	// from_size(m) for m = 0..9, per spec.
	want := []int{0, 0, 1, 2, 3, 3, 4, 5, 6, 6}
	for m, w := range want {
		assert.Equal(t, w, DecodedLen(m), "m=%d", m)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 1; n <= 256; n++ {
		src := make([]byte, n)
		_, err := rng.Read(src)
		require.NoError(t, err)

		enc := Encode(src)
		assert.Equal(t, EncodedLen(n), len(enc))

		dec := Decode(enc)
		assert.Equal(t, src, dec, "n=%d", n)
	}
}

func TestEncodeKnownSalt(t *testing.T) {
	// 16-byte salt from S1 in spec.md, encodes to 22 chars.
	salt := []byte{
		0x14, 0x4b, 0x3d, 0x69, 0x1a, 0x7b, 0x4e, 0xcf,
		0x39, 0xcf, 0x73, 0x5c, 0x7f, 0xa7, 0xa7, 0x9c,
	}
	enc := Encode(salt)
	assert.Equal(t, 22, len(enc))
	assert.Equal(t, "DCq7YPn5Rq63x1Lad4cll.", string(enc))
}

func TestDecodeTolerant(t *testing.T) {
	// bytes outside the alphabet decode as zero bits, not an error.
	out := Decode([]byte{'!', '!', '!', '!'})
	assert.Len(t, out, 3)
	assert.Equal(t, []byte{0, 0, 0}, out)
}
