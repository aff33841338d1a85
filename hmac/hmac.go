// Package hmac implements the HMAC construction from RFC 2104 over any hash
// that exposes its digest and block sizes, with helpers bound to SHA-256 and
// SHA-512.
package hmac

import (
	"crypto/subtle"

	"github.com/TACITVS/SHA2-Golang/sha2"
)

const (
	ipadByte = 0x36
	opadByte = 0x5C
)

// Hash is the capability the construction requires from the underlying hash.
// *sha2.Algorithm satisfies it.
type Hash interface {
	Size() int
	BlockSize() int
	Sum(data []byte) []byte
}

// Sum computes H(opad | H(ipad | message)) with the key normalized to the
// block size of h: keys longer than one block are hashed first, then the
// result is zero-padded up to the block size.
func Sum(h Hash, key, message []byte) []byte {
	blockSize := h.BlockSize()
	if len(key) > blockSize {
		key = h.Sum(key)
	}

	ipad := make([]byte, blockSize, blockSize+len(message))
	opad := make([]byte, blockSize, blockSize+h.Size())
	copy(ipad, key)
	copy(opad, key)
	for i := range ipad {
		ipad[i] ^= ipadByte
		opad[i] ^= opadByte
	}

	inner := h.Sum(append(ipad, message...))
	return h.Sum(append(opad, inner...))
}

// Sum256 returns the HMAC-SHA-256 tag of message under key.
func Sum256(key, message []byte) [sha2.Size256]byte {
	var tag [sha2.Size256]byte
	copy(tag[:], Sum(sha2.SHA256, key, message))
	return tag
}

// Sum512 returns the HMAC-SHA-512 tag of message under key.
func Sum512(key, message []byte) [sha2.Size512]byte {
	var tag [sha2.Size512]byte
	copy(tag[:], Sum(sha2.SHA512, key, message))
	return tag
}

// Equal compares two tags for equality without leaking timing information.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Algorithm binds the construction to one underlying hash so it can serve as
// a keyed pseudorandom function.
type Algorithm struct {
	hash Hash
}

// New returns the construction bound to h.
func New(h Hash) Algorithm {
	return Algorithm{hash: h}
}

// Size returns the tag length in bytes.
func (a Algorithm) Size() int { return a.hash.Size() }

// Sum returns the tag of message under key.
func (a Algorithm) Sum(key, message []byte) []byte { return Sum(a.hash, key, message) }
