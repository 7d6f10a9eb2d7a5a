// Package password implements salted password storage: random salt
// generation, argon2id key derivation, and constant-time verification.
package password

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of a freshly generated salt in bytes.
const SaltSize = 32

// HashSize is the length of a derived password hash in bytes.
const HashSize = 32

// GenerateSalt returns SaltSize cryptographically random bytes.
func GenerateSalt() ([]byte, error) {
	b := make([]byte, SaltSize)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Hash derives a fixed-length one-way hash from the password and salt.
// Same inputs always produce the same output.
func Hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, HashSize)
}

// Verify reports whether password matches the stored salt and expected hash.
// The comparison is constant-time.
func Verify(password string, salt, expected []byte) bool {
	return subtle.ConstantTimeCompare(Hash(password, salt), expected) == 1
}
