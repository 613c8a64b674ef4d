package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Manager orchestrates the session lifecycle over an injected Store. It holds
// no global state; construct one at startup and pass it to transports and
// services by reference.
type Manager struct {
	store            Store
	ttl              time.Duration
	renewalThreshold time.Duration
	thresholdSet     bool
	now              func() time.Time
}

// NewManager creates a session manager with the given store. Defaults:
// 30-day TTL, renewal at the half-life, time.Now as the clock.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:            store,
		ttl:              DefaultTTL,
		renewalThreshold: DefaultRenewalThreshold,
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create issues a new session for userID: generates a token, derives the
// session ID by one-way hash, and persists the record with expiry now+TTL.
// It returns the plaintext token (for the cookie) alongside the stored
// record (for the caller to read ExpiresAt).
//
// A store rejection surfaces as ErrCreationFailed, a generic retryable
// failure that never carries store diagnostics.
func (m *Manager) Create(ctx context.Context, userID string) (string, Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", Session{}, err
	}

	now := m.now()
	sess := Session{
		ID:        HashToken(token),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}

	if err := m.store.Insert(ctx, sess); err != nil {
		return "", Session{}, errors.Join(ErrCreationFailed, err)
	}

	return token, sess, nil
}

// Validate resolves a plaintext token to its session and owning user.
//
// Any token that does not resolve to a live session yields ErrNotFound,
// whether it is unknown, invalidated, or expired (expired rows are deleted
// on the spot). When more than the renewal threshold of the lifetime has
// elapsed, expiry is extended to now+TTL and persisted before returning, so
// the caller always sees the effective expiry.
func (m *Manager) Validate(ctx context.Context, token string) (Session, User, error) {
	id := HashToken(token)

	sess, user, err := m.store.FindWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, User{}, ErrNotFound
		}
		return Session{}, User{}, fmt.Errorf("session: lookup: %w", err)
	}

	now := m.now()
	if sess.IsExpired(now) {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			return Session{}, User{}, fmt.Errorf("session: purge expired: %w", err)
		}
		return Session{}, User{}, ErrNotFound
	}

	if !now.Before(sess.ExpiresAt.Add(-m.renewalThreshold)) {
		sess.ExpiresAt = now.Add(m.ttl)
		if err := m.store.UpdateExpiry(ctx, sess.ID, sess.ExpiresAt); err != nil {
			return Session{}, User{}, fmt.Errorf("session: renew: %w", err)
		}
	}

	return sess, user, nil
}

// Invalidate deletes a session by ID. Idempotent: invalidating an unknown or
// already-removed session is not an error. Used for explicit logout.
func (m *Manager) Invalidate(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// InvalidateUserSessions deletes every session owned by userID, e.g. after a
// password change or reset.
func (m *Manager) InvalidateUserSessions(ctx context.Context, userID string) error {
	return m.store.DeleteByUserID(ctx, userID)
}

// CleanupExpired removes all currently expired sessions. Expiry is otherwise
// lazy; hosts that want to bound table growth call this periodically.
func (m *Manager) CleanupExpired(ctx context.Context) error {
	return m.store.DeleteExpired(ctx, m.now())
}

// TTL returns the configured session time-to-live.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
