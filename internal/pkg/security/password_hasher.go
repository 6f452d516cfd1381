package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keyLength  = 64
	iterations = 10000
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword PBKDF2-SHA512，结果为 salt:hash 的十六进制
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// CheckPasswordHash 常量时间比较
func CheckPasswordHash(password, stored string) error {
	saltHex, hashHex, ok := strings.Cut(stored, ":")
	if !ok {
		return ErrInvalidCredentials
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return ErrInvalidCredentials
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil || len(expected) == 0 {
		return ErrInvalidCredentials
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha512.New)
	if subtle.ConstantTimeCompare(key, expected) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
