package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"
)

// tokenBytes is the entropy of a session token. 18 bytes encode to exactly
// 24 base64url characters with no padding.
const tokenBytes = 18

// Session is the persisted record of an authenticated session. The plaintext
// token is never part of it; ID is the one-way hash of the token.
type Session struct {
	// ID is the hex-encoded SHA-256 of the session token. Primary key.
	ID string

	// UserID references the owning user. The reference is not ownership:
	// cascade rules on user deletion are the store's policy.
	UserID string

	// ExpiresAt is the absolute expiry instant. Extended by sliding renewal.
	ExpiresAt time.Time

	// CreatedAt records when the session was issued.
	CreatedAt time.Time
}

// User is the summary of the owning user returned alongside a validated
// session, sufficient for request handling without a second lookup.
type User struct {
	ID       string
	Username string
}

// IsExpired reports whether the session is expired at the given instant.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// GenerateToken draws 18 bytes from the CSPRNG and encodes them with the
// URL-safe, padding-free base64 alphabet, producing 24 printable characters.
// Each invocation is statistically independent.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashToken derives the session ID from a plaintext token: hex-lowercase
// SHA-256. The same fixed function is used everywhere a token must be
// resolved to an ID.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
