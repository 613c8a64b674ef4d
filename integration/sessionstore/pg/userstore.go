package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	dbpg "github.com/dmitrymomot/authkit/integration/database/pg"

	"github.com/dmitrymomot/authkit/core/auth"
)

// UserStore implements auth.UserStore on PostgreSQL.
type UserStore struct {
	db Querier
}

// NewUserStore creates a user store backed by db.
func NewUserStore(db Querier) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) querier(ctx context.Context) Querier {
	if tx, ok := dbpg.TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}

// Create implements auth.UserStore. The unique index on email enforces
// auth.ErrEmailTaken. Emails are stored lowercased so GetByEmail matches
// regardless of the case the row was created with.
func (s *UserStore) Create(ctx context.Context, user auth.User) error {
	const query = `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.querier(ctx).Exec(ctx, query,
		user.ID, strings.ToLower(user.Email), user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if dbpg.IsDuplicateKeyError(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail implements auth.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at
		FROM users WHERE email = lower($1)`

	return s.scanUser(s.querier(ctx).QueryRow(ctx, query, email))
}

// GetByID implements auth.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id string) (auth.User, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at
		FROM users WHERE id = $1`

	return s.scanUser(s.querier(ctx).QueryRow(ctx, query, id))
}

// UpdateUsername implements auth.UserStore.
func (s *UserStore) UpdateUsername(ctx context.Context, id, username string) error {
	const query = `UPDATE users SET username = $2 WHERE id = $1`

	tag, err := s.querier(ctx).Exec(ctx, query, id, username)
	if err != nil {
		return fmt.Errorf("update username: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// UpdatePasswordHash implements auth.UserStore.
func (s *UserStore) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1`

	tag, err := s.querier(ctx).Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func (s *UserStore) scanUser(row pgx.Row) (auth.User, error) {
	var user auth.User
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}
