package session

import (
	"context"
	"time"
)

// Store defines the persistence contract consumed by the Manager.
// Implementations must be safe for concurrent use; each operation is expected
// to be atomic at the row level.
type Store interface {
	// Insert persists a new session. It must return ErrDuplicateID if a row
	// with the same ID already exists.
	Insert(ctx context.Context, sess Session) error

	// FindWithUser returns the session and its owning user's summary in a
	// single round trip. Absence is reported as ErrNotFound, not a failure.
	FindWithUser(ctx context.Context, id string) (Session, User, error)

	// UpdateExpiry sets a new absolute expiry on an existing session.
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Delete removes a session. Deleting a non-existent row is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes all sessions owned by a user.
	DeleteByUserID(ctx context.Context, userID string) error

	// DeleteExpired removes all sessions expired at the given instant.
	DeleteExpired(ctx context.Context, now time.Time) error
}
