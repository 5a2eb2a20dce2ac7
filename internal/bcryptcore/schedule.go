package bcryptcore

// streamToWord reads a big-endian 32-bit word starting at *off out of buf,
// wrapping the read position modulo len(buf), and advances *off by 4
// (also wrapping). This is the cyclic key stream used to interleave salt
// and password bytes into the schedule: callers pull as many words as
// they need regardless of how short buf is.
func streamToWord(buf []byte, off *int) uint32 {
	var word uint32
	n := len(buf)

	for i := 0; i < 4; i++ {
		word = (word << 8) | uint32(buf[*off])
		*off++
		if *off >= n {
			*off = 0
		}
	}

	return word
}

// expand0State runs the key-only half of the schedule: it XORs key into
// P and re-enciphers the running (L, R) pair through every P and S-box
// slot, two words at a time.
func (st *state) expand0State(key []byte) {
	st.mixKey(key)
}

// expandState runs the salt+key half of the schedule: identical to
// expand0State except that before each pair-encipher step the running
// (L, R) is XORed with the next two cyclic words pulled from salt. key
// and salt maintain independent wrap offsets.
func (st *state) expandState(salt, key []byte) {
	keyOff := 0
	saltOff := 0

	for i := 0; i < 18; i++ {
		st.P[i] ^= streamToWord(key, &keyOff)
	}

	var l, r uint32

	for i := 0; i < 18; i += 2 {
		l ^= streamToWord(salt, &saltOff)
		r ^= streamToWord(salt, &saltOff)
		st.encipher(&l, &r)
		st.P[i], st.P[i+1] = l, r
	}

	for b := 0; b < 4; b++ {
		for i := 0; i < 256; i += 2 {
			l ^= streamToWord(salt, &saltOff)
			r ^= streamToWord(salt, &saltOff)
			st.encipher(&l, &r)
			st.S[b][i], st.S[b][i+1] = l, r
		}
	}
}

// mixKey is expand0State's body, factored out so expandState's salt-XOR
// variant above can stay a straight-line read of the spec's pair-chaining
// order without key/salt branches interleaved in a single loop.
func (st *state) mixKey(key []byte) {
	keyOff := 0

	for i := 0; i < 18; i++ {
		st.P[i] ^= streamToWord(key, &keyOff)
	}

	var l, r uint32

	for i := 0; i < 18; i += 2 {
		st.encipher(&l, &r)
		st.P[i], st.P[i+1] = l, r
	}

	for b := 0; b < 4; b++ {
		for i := 0; i < 256; i += 2 {
			st.encipher(&l, &r)
			st.S[b][i], st.S[b][i+1] = l, r
		}
	}
}
