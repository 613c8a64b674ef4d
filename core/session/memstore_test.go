package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

func makeSession(userID string, expiresAt time.Time) session.Session {
	token, _ := session.GenerateToken()
	return session.Session{
		ID:        session.HashToken(token),
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: expiresAt.Add(-30 * 24 * time.Hour),
	}
}

func TestMemoryStore_Insert(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		sess := makeSession("u1", time.Now().Add(time.Hour))

		require.NoError(t, store.Insert(ctx, sess))
		assert.ErrorIs(t, store.Insert(ctx, sess), session.ErrDuplicateID)
	})
}

func TestMemoryStore_FindWithUser(t *testing.T) {
	t.Parallel()

	t.Run("joins registered user summary", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		store.PutUser(session.User{ID: "u1", Username: "alice"})
		sess := makeSession("u1", time.Now().Add(time.Hour))
		require.NoError(t, store.Insert(ctx, sess))

		got, user, err := store.FindWithUser(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("falls back to id-only summary for unregistered users", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		sess := makeSession("ghost", time.Now().Add(time.Hour))
		require.NoError(t, store.Insert(ctx, sess))

		_, user, err := store.FindWithUser(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "ghost", user.ID)
		assert.Empty(t, user.Username)
	})

	t.Run("absence is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		_, _, err := store.FindWithUser(context.Background(), "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestMemoryStore_UpdateExpiry(t *testing.T) {
	t.Parallel()

	t.Run("persists the new expiry", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		sess := makeSession("u1", time.Now().Add(time.Hour))
		require.NoError(t, store.Insert(ctx, sess))

		next := sess.ExpiresAt.Add(24 * time.Hour)
		require.NoError(t, store.UpdateExpiry(ctx, sess.ID, next))

		got, _, err := store.FindWithUser(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, next, got.ExpiresAt)
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		err := store.UpdateExpiry(context.Background(), "missing", time.Now())
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestMemoryStore_Deletes(t *testing.T) {
	t.Parallel()

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		sess := makeSession("u1", time.Now().Add(time.Hour))
		require.NoError(t, store.Insert(ctx, sess))

		require.NoError(t, store.Delete(ctx, sess.ID))
		require.NoError(t, store.Delete(ctx, sess.ID))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("delete by user removes only that user's sessions", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		exp := time.Now().Add(time.Hour)
		require.NoError(t, store.Insert(ctx, makeSession("u1", exp)))
		require.NoError(t, store.Insert(ctx, makeSession("u1", exp)))
		keep := makeSession("u2", exp)
		require.NoError(t, store.Insert(ctx, keep))

		require.NoError(t, store.DeleteByUserID(ctx, "u1"))
		assert.Equal(t, 1, store.Len())

		_, _, err := store.FindWithUser(ctx, keep.ID)
		assert.NoError(t, err)
	})

	t.Run("delete expired removes rows at or past the instant", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		ctx := context.Background()
		now := time.Now()
		require.NoError(t, store.Insert(ctx, makeSession("u1", now.Add(-time.Minute))))
		require.NoError(t, store.Insert(ctx, makeSession("u2", now)))
		fresh := makeSession("u3", now.Add(time.Hour))
		require.NoError(t, store.Insert(ctx, fresh))

		require.NoError(t, store.DeleteExpired(ctx, now))
		assert.Equal(t, 1, store.Len())

		_, _, err := store.FindWithUser(ctx, fresh.ID)
		assert.NoError(t, err)
	})
}
