// Package identity derives stable user identifiers and password digests.
package identity

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// UserID derives a stable 12-character identifier from an email address.
// The same email always yields the same id, across processes and restarts,
// which keeps repeated signups from the same address idempotent in identity.
func UserID(email string) string {
	sum := md5.Sum([]byte(email))
	return hex.EncodeToString(sum[:])[:12]
}

// HashPassword returns the hex sha256 digest of the plaintext. The digest is
// unsalted and single-round, matching the existing demo-account rows; any
// change here invalidates every stored credential.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// NormalizeEmail lower-cases and trims an email for in-process comparison.
// SQL lookups use LOWER() directly.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
