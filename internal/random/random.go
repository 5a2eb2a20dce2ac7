// Package random provides the default cryptographically random byte
// source PasswordHasher seeds itself with when the caller does not
// supply one.
package random

import (
	"bufio"
	"crypto/rand"
	"fmt"
)

// bufSize amortizes the cost of reading from crypto/rand.Reader across
// many NextByte calls, since bcrypt.ByteSource pulls one byte at a time.
const bufSize = 64

// CryptoSource is a bcrypt.ByteSource backed by crypto/rand.Reader.
type CryptoSource struct {
	r *bufio.Reader
}

// NewCryptoSource returns a byte source backed by the operating system's
// cryptographic random generator.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{r: bufio.NewReaderSize(rand.Reader, bufSize)}
}

// NextByte returns the next cryptographically random byte.
func (s *CryptoSource) NextByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("bcrypt: error reading random byte: %w", err)
	}

	return b, nil
}
