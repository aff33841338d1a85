// Package sha2 implements the SHA-256 and SHA-512 hash functions from
// FIPS 180-4 as one-shot functions over byte slices.
package sha2

var sha256Params = params[uint32]{
	init: iv256,
	k:    k256[:],
	bits: 32,
	s0r1: 7, s0r2: 18, s0s: 3,
	s1r1: 17, s1r2: 19, s1s: 10,
	b0r1: 2, b0r2: 13, b0r3: 22,
	b1r1: 6, b1r2: 11, b1r3: 25,
}

var sha512Params = params[uint64]{
	init: iv512,
	k:    k512[:],
	bits: 64,
	s0r1: 1, s0r2: 8, s0s: 7,
	s1r1: 19, s1r2: 61, s1s: 6,
	b0r1: 28, b0r2: 34, b0r3: 39,
	b1r1: 14, b1r2: 18, b1r3: 41,
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	sha256Params.sum(data, out[:])
	return out
}

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	sha512Params.sum(data, out[:])
	return out
}

// Algorithm describes one member of the family to code that is generic over
// the underlying hash, such as the HMAC and PBKDF2 constructions.
type Algorithm struct {
	name      string
	size      int
	blockSize int
	sum       func(data []byte) []byte
}

// Name returns the conventional name of the algorithm.
func (a *Algorithm) Name() string { return a.name }

// Size returns the digest length in bytes.
func (a *Algorithm) Size() int { return a.size }

// BlockSize returns the compression block length in bytes.
func (a *Algorithm) BlockSize() int { return a.blockSize }

// Sum returns the digest of data as a byte slice.
func (a *Algorithm) Sum(data []byte) []byte { return a.sum(data) }

// SHA256 and SHA512 are the two members of the family.
var (
	SHA256 = &Algorithm{
		name:      "SHA-256",
		size:      Size256,
		blockSize: BlockSize256,
		sum: func(data []byte) []byte {
			d := Sum256(data)
			return d[:]
		},
	}
	SHA512 = &Algorithm{
		name:      "SHA-512",
		size:      Size512,
		blockSize: BlockSize512,
		sum: func(data []byte) []byte {
			d := Sum512(data)
			return d[:]
		},
	}
)
