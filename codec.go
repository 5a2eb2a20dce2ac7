package bcrypt

import (
	"go.inout.gg/bcrypt/internal/bcryptb64"
)

// Salt is the 16 bytes of opaque binary mixed into the key schedule.
type Salt [16]byte

// PwdHash is the first 23 bytes of the derived Blowfish-encrypted block.
type PwdHash [23]byte

// EncodedHash is the 60-byte textual framing: "$2b$" + two cost digits +
// "$" + 22 base64 salt characters + 31 base64 hash characters.
type EncodedHash [60]byte

// Params is the triple Decode recovers from an EncodedHash.
type Params struct {
	Hash PwdHash
	Salt Salt
	Cost int
}

const (
	saltEncodedLen = 22
	hashEncodedLen = 31
)

// Encode lays out hash, salt and cost into the 60-byte bcrypt framing.
// cost must already be in [MinCost, MaxCost]; Encode does not validate
// it, since by the time a PwdHash exists cost has already produced it.
//
//	$--$--$-----------------------------------------------------
//	0123456789...                                             59
//	       |                     |
//	       salt begins at 7      hash begins at 29
func Encode(hash PwdHash, salt Salt, cost int) EncodedHash {
	var out EncodedHash

	out[0] = '$'
	out[1] = '2'
	out[2] = 'b'
	out[3] = '$'
	out[4] = byte('0' + (cost/10)%10)
	out[5] = byte('0' + cost%10)
	out[6] = '$'

	copy(out[7:7+saltEncodedLen], bcryptb64.Encode(salt[:]))
	copy(out[7+saltEncodedLen:7+saltEncodedLen+hashEncodedLen], bcryptb64.Encode(hash[:]))

	return out
}

// Decode parses an EncodedHash back into its triple. It returns false if
// the fixed framing bytes, the cost digits, or the cost range don't
// match — but it is structural only: a Params it returns successfully
// may still describe the wrong password, which only comparing GenHash's
// output against Params.Hash (as Verify does) can catch. Out-of-alphabet
// bytes inside the salt/hash slots are not a decode error either; they
// decode to whatever bcryptb64's zero-bit sentinel yields, and the same
// comparison catches the mismatch downstream.
func Decode(enc EncodedHash) (Params, bool) {
	var p Params

	if enc[0] != '$' || enc[1] != '2' || enc[2] != 'b' ||
		enc[3] != '$' || enc[6] != '$' {
		return p, false
	}

	if enc[4] < '0' || enc[4] > '9' || enc[5] < '0' || enc[5] > '9' {
		return p, false
	}

	cost := int(enc[4]-'0')*10 + int(enc[5]-'0')
	if cost < MinCost || cost > MaxCost {
		return p, false
	}

	p.Cost = cost
	copy(p.Salt[:], bcryptb64.Decode(enc[7:7+saltEncodedLen]))
	copy(p.Hash[:], bcryptb64.Decode(enc[7+saltEncodedLen:7+saltEncodedLen+hashEncodedLen]))

	return p, true
}
