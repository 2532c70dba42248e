package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Digests written before bcrypt was adopted are unsalted SHA-256 in hex.
var legacyDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

// HashPassword returns a bcrypt digest.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares password with a stored digest. needsRehash is true
// when the digest matched but uses the legacy SHA-256 form.
func CheckPassword(stored, password string) (ok, needsRehash bool) {
	if IsLegacyDigest(stored) {
		if subtle.ConstantTimeCompare([]byte(LegacyDigest(password)), []byte(stored)) == 1 {
			return true, true
		}
		return false, false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
}

// IsLegacyDigest reports whether stored is an unsalted SHA-256 hex digest.
func IsLegacyDigest(stored string) bool {
	return legacyDigest.MatchString(stored)
}

// LegacyDigest computes the old SHA-256 hex digest, for imports of existing accounts.
func LegacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
