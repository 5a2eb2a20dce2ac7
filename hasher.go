// Package bcrypt implements the bcrypt password hashing algorithm,
// version "2b": given a password and a cost, Generate derives a 60-byte
// textual hash; given a password and a prior hash, Verify reports
// whether they match.
//
// The algorithm itself (Blowfish, the "expensive" key schedule, the
// bcrypt-specific base64 framing) lives in internal packages; this
// package is the public façade over them.
package bcrypt

import (
	"cmp"
	"crypto/subtle"
	"fmt"

	"go.inout.gg/foundations/debug"

	"go.inout.gg/bcrypt/internal/bcryptcore"
	"go.inout.gg/bcrypt/internal/random"
)

const (
	// MinCost is the lowest cost Generate accepts.
	MinCost = 4

	// MaxCost is the highest cost Generate accepts. At this cost a
	// single Generate call is computationally infeasible; bcrypt does
	// not cap cost below it on the caller's behalf.
	MaxCost = 31

	// DefaultCost is used by NewHasher when no WithCost option is
	// given.
	DefaultCost = 10
)

// d is bcrypt's debug logger, in the teacher's Debuglog convention. It
// never logs password, salt, or derived key bytes.
var d = debug.Debuglog("bcrypt")

// Config configures a PasswordHasher.
type Config struct {
	// Cost is the default cost GenerateDefault uses.
	Cost int

	// Source supplies salt material. If unset, defaults to a
	// crypto/rand-backed source.
	Source ByteSource
}

func (c *Config) defaults() {
	c.Cost = cmp.Or(c.Cost, DefaultCost)

	if c.Source == nil {
		c.Source = random.NewCryptoSource()
	}
}

func (c *Config) assert() {
	debug.Assert(c.Source != nil, "Source must be set")
	debug.Assert(c.Cost >= MinCost && c.Cost <= MaxCost, "Cost must be in range")
}

// WithCost sets the default cost GenerateDefault uses.
func WithCost(cost int) func(*Config) {
	return func(c *Config) { c.Cost = cost }
}

// WithSource sets the byte source a hasher draws salt material from.
func WithSource(src ByteSource) func(*Config) {
	return func(c *Config) { c.Source = src }
}

// PasswordHasher is the public façade over the bcrypt core: it owns a
// salt byte source and drives GenHash/Encode/Decode on its caller's
// behalf.
type PasswordHasher struct {
	config *Config
}

// NewHasher creates a PasswordHasher. Without WithSource, it seeds a
// crypto/rand-backed source.
func NewHasher(opts ...func(*Config)) *PasswordHasher {
	//nolint:exhaustruct
	config := Config{}
	for _, opt := range opts {
		opt(&config)
	}

	config.defaults()
	config.assert()

	return &PasswordHasher{config: &config}
}

// NewHasherWithSource creates a PasswordHasher backed by an explicit
// byte source, returning ErrNilSource if src is nil.
//
// Use this in tests that need to pin the salt: a src that replays a
// fixed byte sequence turns Generate into a pure, reproducible function,
// which plain NewHasher cannot give you.
func NewHasherWithSource(
	src ByteSource,
	opts ...func(*Config),
) (*PasswordHasher, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	opts = append([]func(*Config){WithSource(src)}, opts...)
	return NewHasher(opts...), nil
}

// genSalt pulls 16 bytes from the hasher's source.
func (h *PasswordHasher) genSalt() (Salt, error) {
	var salt Salt
	for i := range salt {
		b, err := h.config.Source.NextByte()
		if err != nil {
			return salt, fmt.Errorf("bcrypt: failed to read salt byte: %w", err)
		}
		salt[i] = b
	}
	return salt, nil
}

// Generate hashes password at the given cost and returns the 60-byte
// encoded hash. It fails with ErrEmptyPassword if password is empty, or
// ErrInvalidCost if cost falls outside [MinCost, MaxCost].
func (h *PasswordHasher) Generate(password []byte, cost int) (EncodedHash, error) {
	var out EncodedHash

	if len(password) == 0 {
		return out, ErrEmptyPassword
	}

	if cost < MinCost || cost > MaxCost {
		return out, ErrInvalidCost
	}

	salt, err := h.genSalt()
	if err != nil {
		return out, err
	}

	d("hashing password at cost=%d", cost)

	hash := bcryptcore.GenHash(password, salt[:], cost)

	return Encode(hash, salt, cost), nil
}

// GenerateDefault hashes password at the hasher's configured default
// cost (DefaultCost unless overridden by WithCost).
func (h *PasswordHasher) GenerateDefault(password []byte) (EncodedHash, error) {
	return h.Generate(password, h.config.Cost)
}

// Verify reports whether password produces hash. It is total: an empty
// password, or a hash whose framing doesn't parse, returns false rather
// than an error — callers should not need to distinguish a wrong
// password from a malformed hash.
func (h *PasswordHasher) Verify(password []byte, hash EncodedHash) bool {
	if len(password) == 0 {
		return false
	}

	params, ok := Decode(hash)
	if !ok {
		return false
	}

	candidate := bcryptcore.GenHash(password, params.Salt[:], params.Cost)

	// The hash string is non-secret (Non-goals explicitly waive
	// constant-time compare against network adversaries here), but
	// subtle.ConstantTimeCompare costs nothing extra over == and avoids
	// a timing channel on the derived key byte-for-byte.
	return subtle.ConstantTimeCompare(candidate[:], params.Hash[:]) == 1
}
