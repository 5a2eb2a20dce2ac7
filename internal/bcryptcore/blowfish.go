// Package bcryptcore implements the parts of bcrypt that are inseparable
// from the Blowfish state they share: the cipher itself, the "expensive"
// key schedule David Mazieres specified, and the driver that runs them
// together to derive a 23-byte password hash.
//
// None of this is general-purpose Blowfish: the S-boxes and P-array are
// mutated in place by the key schedule and are never reset back to the
// standard constants mid-computation, which is precisely what makes the
// schedule expensive to invert.
package bcryptcore

// numSubkeys is the number of Feistel round subkeys; P also holds two
// extra words used to whiten the block after the round loop.
const numSubkeys = 16

// state holds one Blowfish key schedule. Its lifetime is scoped to a
// single gen_hash call; callers must call zero() on every exit path.
type state struct {
	P [18]uint32
	S [4][256]uint32
}

// initState resets st to the standard pi-derived constants.
func (st *state) initState() {
	st.P = initP
	st.S = initS
}

// zero overwrites st so the derived key schedule does not linger in
// memory after use. The loop form (rather than a single struct literal
// assignment) keeps the compiler from recognizing the store as dead and
// eliding it, since st is not read again afterwards.
func (st *state) zero() {
	for i := range st.P {
		st.P[i] = 0
	}
	for b := range st.S {
		for i := range st.S[b] {
			st.S[b][i] = 0
		}
	}
}

// f is the Blowfish round function: four S-box lookups on the bytes of x,
// MSB first, combined by add-xor-add mod 2^32.
func (st *state) f(x uint32) uint32 {
	a := (x >> 24) & 0xff
	b := (x >> 16) & 0xff
	c := (x >> 8) & 0xff
	d := x & 0xff

	return ((st.S[0][a] + st.S[1][b]) ^ st.S[2][c]) + st.S[3][d]
}

// encipher runs the classic 16-round Feistel network over one 64-bit
// block (l, r), followed by the final subkey whitening and swap.
func (st *state) encipher(l, r *uint32) {
	xl, xr := *l, *r

	for i := 0; i < numSubkeys; i += 2 {
		xl ^= st.P[i]
		xr ^= st.f(xl)

		xr ^= st.P[i+1]
		xl ^= st.f(xr)
	}

	xl ^= st.P[numSubkeys]
	xr ^= st.P[numSubkeys+1]

	*l, *r = xr, xl
}

// encryptECB encrypts data in place as nblocks adjacent 64-bit blocks,
// each a pair of big-endian-ordered 32-bit words.
func (st *state) encryptECB(data []uint32, nblocks int) {
	for i := 0; i < nblocks; i++ {
		st.encipher(&data[2*i], &data[2*i+1])
	}
}
