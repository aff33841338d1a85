package sha2

import "encoding/binary"

// word constrains the engine to the two state widths of the family.
type word interface {
	~uint32 | ~uint64
}

// params holds everything that distinguishes one family member: initial
// state, round constants, word width, and the rotation and shift amounts of
// the message schedule and round functions.
type params[W word] struct {
	init [8]W
	k    []W
	bits uint

	// message schedule: sigma0 and sigma1 rotations and shift
	s0r1, s0r2, s0s uint
	s1r1, s1r2, s1s uint
	// round function: Sigma0 and Sigma1 rotations
	b0r1, b0r2, b0r3 uint
	b1r1, b1r2, b1r3 uint
}

func (p *params[W]) rotr(x W, n uint) W {
	return x>>n | x<<(p.bits-n)
}

func (p *params[W]) wordBytes() int { return int(p.bits) / 8 }

// blockSize is sixteen words regardless of width.
func (p *params[W]) blockSize() int { return 16 * p.wordBytes() }

// compress runs the full round schedule over one block and folds the result
// into state.
func (p *params[W]) compress(state *[8]W, block []byte) {
	wb := p.wordBytes()

	var w [80]W
	for i := 0; i < 16; i++ {
		var v W
		for _, b := range block[i*wb : (i+1)*wb] {
			v = v<<8 | W(b)
		}
		w[i] = v
	}
	for i := 16; i < len(p.k); i++ {
		s0 := p.rotr(w[i-15], p.s0r1) ^ p.rotr(w[i-15], p.s0r2) ^ w[i-15]>>p.s0s
		s1 := p.rotr(w[i-2], p.s1r1) ^ p.rotr(w[i-2], p.s1r2) ^ w[i-2]>>p.s1s
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]
	for i := 0; i < len(p.k); i++ {
		sum1 := p.rotr(e, p.b1r1) ^ p.rotr(e, p.b1r2) ^ p.rotr(e, p.b1r3)
		ch := (e & f) ^ (^e & g)
		t1 := h + sum1 + ch + p.k[i] + w[i]
		sum0 := p.rotr(a, p.b0r1) ^ p.rotr(a, p.b0r2) ^ p.rotr(a, p.b0r3)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := sum0 + maj
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// sum hashes data in one shot: full blocks straight from the input, then the
// padded tail from a scratch buffer, one or two blocks depending on how much
// room the trailing length field leaves.
func (p *params[W]) sum(data, digest []byte) {
	wb := p.wordBytes()
	blockSize := p.blockSize()
	lenField := 2 * wb

	state := p.init

	full := len(data) - len(data)%blockSize
	for off := 0; off < full; off += blockSize {
		p.compress(&state, data[off:off+blockSize])
	}

	// Pad with 0x80, zeros, then the message bit length big-endian in the
	// trailing lenField bytes.
	var tail [2 * BlockSize512]byte
	rest := copy(tail[:], data[full:])
	tail[rest] = 0x80
	padded := blockSize
	if rest+1+lenField > blockSize {
		padded = 2 * blockSize
	}
	bitsLo := uint64(len(data)) << 3
	bitsHi := uint64(len(data)) >> 61
	if lenField == 16 {
		binary.BigEndian.PutUint64(tail[padded-16:], bitsHi)
	}
	binary.BigEndian.PutUint64(tail[padded-8:], bitsLo)
	for off := 0; off < padded; off += blockSize {
		p.compress(&state, tail[off:off+blockSize])
	}

	for i, s := range state {
		for j := wb - 1; j >= 0; j-- {
			digest[i*wb+j] = byte(s)
			s >>= 8
		}
	}
}
