package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	dbpg "github.com/dmitrymomot/authkit/integration/database/pg"

	"github.com/dmitrymomot/authkit/core/session"
)

// Querier is the subset of pgxpool.Pool used by the stores. pgx.Tx and
// pgxmock pools satisfy it too.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements session.Store on PostgreSQL.
type Store struct {
	db Querier
}

// NewStore creates a session store backed by db.
func NewStore(db Querier) *Store {
	return &Store{db: db}
}

// querier resolves the executor for ctx, preferring a transaction carried
// via dbpg.WithTx.
func (s *Store) querier(ctx context.Context) Querier {
	if tx, ok := dbpg.TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}

// Insert implements session.Store.
func (s *Store) Insert(ctx context.Context, sess session.Session) error {
	const query = `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`

	_, err := s.querier(ctx).Exec(ctx, query, sess.ID, sess.UserID, sess.ExpiresAt, sess.CreatedAt)
	if err != nil {
		if dbpg.IsDuplicateKeyError(err) {
			return session.ErrDuplicateID
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindWithUser implements session.Store with a single join query.
func (s *Store) FindWithUser(ctx context.Context, id string) (session.Session, session.User, error) {
	const query = `
		SELECT s.id, s.user_id, s.expires_at, s.created_at, u.username
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`

	var (
		sess session.Session
		user session.User
	)
	err := s.querier(ctx).QueryRow(ctx, query, id).
		Scan(&sess.ID, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.User{}, session.ErrNotFound
		}
		return session.Session{}, session.User{}, fmt.Errorf("find session: %w", err)
	}

	user.ID = sess.UserID
	return sess, user, nil
}

// UpdateExpiry implements session.Store.
func (s *Store) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	const query = `UPDATE sessions SET expires_at = $2 WHERE id = $1`

	tag, err := s.querier(ctx).Exec(ctx, query, id, expiresAt)
	if err != nil {
		return fmt.Errorf("update session expiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

// Delete implements session.Store. Idempotent.
func (s *Store) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id = $1`

	if _, err := s.querier(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUserID implements session.Store.
func (s *Store) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM sessions WHERE user_id = $1`

	if _, err := s.querier(ctx).Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}

// DeleteExpired implements session.Store.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) error {
	const query = `DELETE FROM sessions WHERE expires_at <= $1`

	if _, err := s.querier(ctx).Exec(ctx, query, now); err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}
