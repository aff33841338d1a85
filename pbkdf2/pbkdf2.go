// Package pbkdf2 implements the PBKDF2 key derivation function from RFC 8018
// over any keyed pseudorandom function, with helpers bound to HMAC-SHA-256
// and HMAC-SHA-512.
package pbkdf2

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/TACITVS/SHA2-Golang/hmac"
	"github.com/TACITVS/SHA2-Golang/sha2"
)

var (
	// ErrDerivedKeyTooLong is returned when keyLen asks for more blocks
	// than the 32-bit block counter can index.
	ErrDerivedKeyTooLong = errors.New("pbkdf2: derived key too long")

	// ErrInvalidIterations is returned when the iteration count is less
	// than one.
	ErrInvalidIterations = errors.New("pbkdf2: iteration count must be at least 1")

	// ErrInvalidKeyLength is returned when keyLen is negative.
	ErrInvalidKeyLength = errors.New("pbkdf2: negative key length")
)

// PRF is the keyed pseudorandom function the derivation runs on.
// hmac.Algorithm satisfies it.
type PRF interface {
	Size() int
	Sum(key, message []byte) []byte
}

// Key derives a key of keyLen bytes from password and salt by iterating prf.
// Each output block is the XOR fold of an iterated PRF chain seeded with the
// salt and a big-endian block counter; the final block is truncated to
// whatever keyLen still needs.
func Key(prf PRF, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}
	if keyLen < 0 {
		return nil, ErrInvalidKeyLength
	}
	hLen := prf.Size()
	if uint64(keyLen) > math.MaxUint32*uint64(hLen) {
		return nil, ErrDerivedKeyTooLong
	}

	blocks := int((uint64(keyLen) + uint64(hLen) - 1) / uint64(hLen))
	dk := make([]byte, 0, blocks*hLen)
	seed := make([]byte, len(salt)+4)
	copy(seed, salt)
	for block := 1; block <= blocks; block++ {
		binary.BigEndian.PutUint32(seed[len(salt):], uint32(block))
		u := prf.Sum(password, seed)
		chain := make([]byte, hLen)
		copy(chain, u)
		for i := 2; i <= iterations; i++ {
			u = prf.Sum(password, u)
			for j := range chain {
				chain[j] ^= u[j]
			}
		}
		dk = append(dk, chain...)
	}
	return dk[:keyLen], nil
}

// Key256 derives a key with HMAC-SHA-256 as the pseudorandom function.
func Key256(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	return Key(hmac.New(sha2.SHA256), password, salt, iterations, keyLen)
}

// Key512 derives a key with HMAC-SHA-512 as the pseudorandom function.
func Key512(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	return Key(hmac.New(sha2.SHA512), password, salt, iterations, keyLen)
}
