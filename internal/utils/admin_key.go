package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const adminKeyBytes = 32

// GenerateAdminKey returns a new random 64-character hex admin key.
func GenerateAdminKey() (string, error) {
	b := make([]byte, adminKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashAdminKey produces the bcrypt hash expected in ADMIN_API_KEY_HASH.
func HashAdminKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("admin key must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAdminKey compares a presented key with the configured bcrypt hash.
func CheckAdminKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
