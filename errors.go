package bcrypt

import "errors"

var (
	// ErrEmptyPassword is returned by Generate when password has zero
	// length. The algorithm never hashes an empty password: it is
	// rejected at this boundary instead of silently producing a hash
	// of the empty string.
	ErrEmptyPassword = errors.New("bcrypt: password cannot be empty")

	// ErrInvalidCost is returned by Generate when cost falls outside
	// [MinCost, MaxCost].
	ErrInvalidCost = errors.New("bcrypt: cost must be in the range [4, 31]")

	// ErrNilSource is returned by NewHasherWithSource when src is nil.
	ErrNilSource = errors.New("bcrypt: byte source cannot be nil")
)
