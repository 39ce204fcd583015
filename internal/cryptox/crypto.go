// Package cryptox derives and checks the password verifiers stored in user
// records.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/dmitrijs2005/countdown/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	scheme   = "argon2id"
	saltSize = 16
	keySize  = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

func deriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// HashPassword returns "argon2id$<salt>$<key>" with a fresh random salt,
// both parts base64 (raw, standard alphabet).
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := deriveKey(password, salt)
	enc := base64.RawStdEncoding
	return scheme + "$" + enc.EncodeToString(salt) + "$" + enc.EncodeToString(key)
}

// VerifyPassword reports whether password matches the encoded verifier.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != scheme {
		return false, ErrMalformedHash
	}
	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := enc.DecodeString(parts[2])
	if err != nil || len(want) != keySize {
		return false, ErrMalformedHash
	}

	got := deriveKey(password, salt)
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}
