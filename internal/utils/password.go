package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Iterations is the PBKDF2 round count. Large enough to make offline
// brute force expensive; changing it invalidates every stored hash.
const pbkdf2Iterations = 100_000

// saltLengthBytes is the number of random bytes used for a fresh salt
// before hex encoding.
const saltLengthBytes = 16

// HashCredential derives a hex-encoded PBKDF2-HMAC-SHA256 hash from the given
// plaintext and salt. If salt is empty, a fresh cryptographically random salt
// is generated. Returns the hash and the salt that was used.
func HashCredential(plaintext, salt string) (string, string, error) {
	if plaintext == "" {
		return "", "", fmt.Errorf("%w: password must be provided", apperrors.ErrValidation)
	}

	if salt == "" {
		var err error
		salt, err = GenerateSecureRandomString(saltLengthBytes)
		if err != nil {
			return "", "", fmt.Errorf("failed to generate salt: %w", err)
		}
	}

	derived := pbkdf2.Key([]byte(plaintext), []byte(salt), pbkdf2Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(derived), salt, nil
}

// VerifyCredential re-derives the hash for plaintext with the given salt and
// compares it to expectedHash in constant time. Any missing input yields
// false rather than an error so callers cannot distinguish failure modes.
func VerifyCredential(plaintext, expectedHash, salt string) bool {
	if plaintext == "" || expectedHash == "" || salt == "" {
		return false
	}

	computed, _, err := HashCredential(plaintext, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1
}
