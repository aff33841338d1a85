// Package hexdigest exposes the hash, MAC and key derivation primitives as
// string-in, hex-out helpers shaped like the boundary a host application
// consumes.
package hexdigest

import (
	"encoding/hex"

	"github.com/TACITVS/SHA2-Golang/hmac"
	"github.com/TACITVS/SHA2-Golang/pbkdf2"
	"github.com/TACITVS/SHA2-Golang/sha2"
)

// SHA256 returns the SHA-256 digest of input as 64 lowercase hex characters.
func SHA256(input string) string {
	digest := sha2.Sum256([]byte(input))
	return hex.EncodeToString(digest[:])
}

// SHA512 returns the SHA-512 digest of input as 128 lowercase hex characters.
func SHA512(input string) string {
	digest := sha2.Sum512([]byte(input))
	return hex.EncodeToString(digest[:])
}

// HMACSHA256 returns the HMAC-SHA-256 tag of input under key as 64 lowercase
// hex characters.
func HMACSHA256(key, input string) string {
	tag := hmac.Sum256([]byte(key), []byte(input))
	return hex.EncodeToString(tag[:])
}

// HMACSHA512 returns the HMAC-SHA-512 tag of input under key as 128 lowercase
// hex characters.
func HMACSHA512(key, input string) string {
	tag := hmac.Sum512([]byte(key), []byte(input))
	return hex.EncodeToString(tag[:])
}

// PBKDF2SHA256 derives keyLen bytes with HMAC-SHA-256 and returns them as
// 2*keyLen lowercase hex characters.
func PBKDF2SHA256(password, salt string, iterations, keyLen int) (string, error) {
	key, err := pbkdf2.Key256([]byte(password), []byte(salt), iterations, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// PBKDF2SHA512 derives keyLen bytes with HMAC-SHA-512 and returns them as
// 2*keyLen lowercase hex characters.
func PBKDF2SHA512(password, salt string, iterations, keyLen int) (string, error) {
	key, err := pbkdf2.Key512([]byte(password), []byte(salt), iterations, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
