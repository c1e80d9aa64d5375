package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 10_000
	kdfKeyLen     = 64 // 512-bit output
	saltLen       = 16
)

func newSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// hashPassword derives a PBKDF2-SHA512 hash from the password and hex salt.
func hashPassword(password, saltHex string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, kdfIterations, kdfKeyLen, sha512.New)
	return hex.EncodeToString(key), nil
}
