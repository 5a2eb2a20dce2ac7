package bcryptcore

// MaxPasswordLen is the number of leading password bytes the schedule
// consumes; any bytes past this are silently ignored.
const MaxPasswordLen = 72

// magicPlaintext is "OrpheanBeholderScryDoubt", the fixed plaintext
// bcrypt encrypts 64 times to derive the password hash.
const magicPlaintext = "OrpheanBeholderScryDoubt"

// Rounds is the number of ECB passes over the magic ciphertext.
const Rounds = 64

// GenHash runs the full bcrypt key schedule and derivation: it truncates
// password to MaxPasswordLen bytes, appends the 2b NUL terminator,
// expands the Blowfish state with salt and key, iterates the expensive
// schedule 2^cost times, encrypts the magic plaintext 64 times, and
// returns the first 23 bytes of the resulting 24-byte block.
//
// cost must already be validated by the caller; GenHash trusts it and
// will simply take a very long time for cost values near 31.
func GenHash(password, salt []byte, cost int) [23]byte {
	if len(password) > MaxPasswordLen {
		password = password[:MaxPasswordLen]
	}

	key := make([]byte, len(password)+1)
	copy(key, password)
	key[len(key)-1] = 0x00

	var st state
	st.initState()
	st.expandState(salt, key)

	iterations := uint64(1) << uint(cost)
	for i := uint64(0); i < iterations; i++ {
		st.expand0State(key)
		st.expand0State(salt)
	}

	cdata := streamToWords([]byte(magicPlaintext), 6)

	for i := 0; i < Rounds; i++ {
		st.encryptECB(cdata, 3)
	}

	var ciphertext [24]byte
	for i, w := range cdata {
		ciphertext[4*i+0] = byte(w >> 24)
		ciphertext[4*i+1] = byte(w >> 16)
		ciphertext[4*i+2] = byte(w >> 8)
		ciphertext[4*i+3] = byte(w)
	}

	var hash [23]byte
	copy(hash[:], ciphertext[:23])

	st.zero()
	zeroBytes(key)
	zeroBytes(ciphertext[:])
	zeroWords(cdata)

	return hash
}

// streamToWords pulls n big-endian words out of buf via the cyclic key
// stream, the same helper the schedule uses to seed cdata from the magic
// plaintext.
func streamToWords(buf []byte, n int) []uint32 {
	words := make([]uint32, n)
	off := 0
	for i := range words {
		words[i] = streamToWord(buf, &off)
	}
	return words
}

// zeroBytes overwrites b in place; see state.zero for why this is a loop
// rather than a slice-clear idiom the compiler might fold away.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zeroWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}
