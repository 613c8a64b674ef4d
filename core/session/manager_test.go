package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

// fakeClock is a settable time source shared between test and manager.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// mockStore implements session.Store for failure-path tests.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, sess session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockStore) FindWithUser(ctx context.Context, id string) (session.Session, session.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(session.Session), args.Get(1).(session.User), args.Error(2)
}

func (m *mockStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	args := m.Called(ctx, id, expiresAt)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockStore) DeleteExpired(ctx context.Context, now time.Time) error {
	args := m.Called(ctx, now)
	return args.Error(0)
}

// newTestManager wires a manager to a fresh MemoryStore and fake clock with
// the default 30-day / 15-day policy.
func newTestManager(t *testing.T) (*session.Manager, *session.MemoryStore, *fakeClock) {
	t.Helper()
	store := session.NewMemoryStore()
	clock := newFakeClock()
	mgr := session.NewManager(store, session.WithClock(clock.Now))
	return mgr, store, clock
}

func TestManager_Create(t *testing.T) {
	t.Parallel()

	t.Run("returns token and persisted record", func(t *testing.T) {
		t.Parallel()

		mgr, store, clock := newTestManager(t)
		ctx := context.Background()

		token, sess, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		assert.Len(t, token, 24)
		assert.Equal(t, session.HashToken(token), sess.ID)
		assert.Equal(t, "u1", sess.UserID)
		assert.Equal(t, clock.Now().Add(30*24*time.Hour), sess.ExpiresAt)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("store rejection surfaces as generic creation failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)
		ctx := context.Background()

		store.On("Insert", ctx, mock.AnythingOfType("session.Session")).Return(session.ErrDuplicateID)

		_, _, err := mgr.Create(ctx, "u1")
		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrCreationFailed)
		store.AssertExpectations(t)
	})
}

func TestManager_Validate(t *testing.T) {
	t.Parallel()

	t.Run("fresh session resolves to its user", func(t *testing.T) {
		t.Parallel()

		mgr, store, _ := newTestManager(t)
		ctx := context.Background()
		store.PutUser(session.User{ID: "u1", Username: "alice"})

		token, created, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		sess, user, err := mgr.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, sess.ID)
		assert.Equal(t, "u1", sess.UserID)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		t.Parallel()

		mgr, _, _ := newTestManager(t)

		_, _, err := mgr.Validate(context.Background(), "AAAAAAAAAAAAAAAAAAAAAAAA")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("expired session is purged lazily", func(t *testing.T) {
		t.Parallel()

		mgr, store, clock := newTestManager(t)
		ctx := context.Background()

		token, created, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		clock.Advance(30*24*time.Hour + time.Second)

		_, _, err = mgr.Validate(ctx, token)
		assert.ErrorIs(t, err, session.ErrNotFound)

		// Row physically removed, not just reported absent.
		_, _, err = store.FindWithUser(ctx, created.ID)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("expiry exactly at now is expired", func(t *testing.T) {
		t.Parallel()

		mgr, _, clock := newTestManager(t)
		ctx := context.Background()

		token, _, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		clock.Advance(30 * 24 * time.Hour)

		_, _, err = mgr.Validate(ctx, token)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("no renewal in the first half of the lifetime", func(t *testing.T) {
		t.Parallel()

		mgr, _, clock := newTestManager(t)
		ctx := context.Background()

		token, created, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		clock.Advance(14 * 24 * time.Hour)

		sess, _, err := mgr.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, created.ExpiresAt, sess.ExpiresAt)
	})

	t.Run("sliding renewal past the half-life", func(t *testing.T) {
		t.Parallel()

		mgr, store, clock := newTestManager(t)
		ctx := context.Background()

		token, created, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		clock.Advance(16 * 24 * time.Hour)

		sess, _, err := mgr.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, clock.Now().Add(30*24*time.Hour), sess.ExpiresAt)

		// Renewal persisted before returning.
		stored, _, err := store.FindWithUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ExpiresAt, stored.ExpiresAt)
	})

	t.Run("renewal boundary is inclusive", func(t *testing.T) {
		t.Parallel()

		mgr, _, clock := newTestManager(t)
		ctx := context.Background()

		token, _, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		// Exactly at expiresAt - threshold.
		clock.Advance(15 * 24 * time.Hour)

		sess, _, err := mgr.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, clock.Now().Add(30*24*time.Hour), sess.ExpiresAt)
	})

	t.Run("renewal keeps the session alive indefinitely under activity", func(t *testing.T) {
		t.Parallel()

		mgr, _, clock := newTestManager(t)
		ctx := context.Background()

		token, _, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		// Four months of accesses every 20 days; each lands in the renewal
		// window and extends the session.
		for range 6 {
			clock.Advance(20 * 24 * time.Hour)
			_, _, err := mgr.Validate(ctx, token)
			require.NoError(t, err)
		}
	})

	t.Run("custom renewal threshold is honored", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		clock := newFakeClock()
		mgr := session.NewManager(store,
			session.WithClock(clock.Now),
			session.WithTTL(10*24*time.Hour),
			session.WithRenewalThreshold(2*24*time.Hour),
		)
		ctx := context.Background()

		token, created, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		clock.Advance(7 * 24 * time.Hour)
		sess, _, err := mgr.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, created.ExpiresAt, sess.ExpiresAt, "outside renewal window")

		clock.Advance(24 * time.Hour + time.Hour)
		sess, _, err = mgr.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, clock.Now().Add(10*24*time.Hour), sess.ExpiresAt, "inside renewal window")
	})

	t.Run("lookup failure propagates without remapping", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)
		ctx := context.Background()
		storeErr := errors.New("connection refused")

		store.On("FindWithUser", ctx, mock.AnythingOfType("string")).
			Return(session.Session{}, session.User{}, storeErr)

		_, _, err := mgr.Validate(ctx, "sometoken")
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, session.ErrNotFound)
		store.AssertExpectations(t)
	})
}

func TestManager_Invalidate(t *testing.T) {
	t.Parallel()

	t.Run("invalidated token no longer validates", func(t *testing.T) {
		t.Parallel()

		mgr, _, _ := newTestManager(t)
		ctx := context.Background()

		token, sess, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		require.NoError(t, mgr.Invalidate(ctx, sess.ID))

		_, _, err = mgr.Validate(ctx, token)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		mgr, _, _ := newTestManager(t)
		ctx := context.Background()

		_, sess, err := mgr.Create(ctx, "u1")
		require.NoError(t, err)

		require.NoError(t, mgr.Invalidate(ctx, sess.ID))
		require.NoError(t, mgr.Invalidate(ctx, sess.ID))
		require.NoError(t, mgr.Invalidate(ctx, "never-existed"))
	})
}

func TestManager_InvalidateUserSessions(t *testing.T) {
	t.Parallel()

	mgr, store, _ := newTestManager(t)
	ctx := context.Background()

	t1, _, err := mgr.Create(ctx, "u1")
	require.NoError(t, err)
	t2, _, err := mgr.Create(ctx, "u1")
	require.NoError(t, err)
	t3, _, err := mgr.Create(ctx, "u2")
	require.NoError(t, err)

	require.NoError(t, mgr.InvalidateUserSessions(ctx, "u1"))

	_, _, err = mgr.Validate(ctx, t1)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, _, err = mgr.Validate(ctx, t2)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, _, err = mgr.Validate(ctx, t3)
	assert.NoError(t, err, "other users' sessions survive")
	assert.Equal(t, 1, store.Len())
}

func TestManager_CleanupExpired(t *testing.T) {
	t.Parallel()

	mgr, store, clock := newTestManager(t)
	ctx := context.Background()

	_, _, err := mgr.Create(ctx, "u1")
	require.NoError(t, err)

	clock.Advance(10 * 24 * time.Hour)
	fresh, _, err := mgr.Create(ctx, "u2")
	require.NoError(t, err)

	clock.Advance(21 * 24 * time.Hour) // first session expired, second not

	require.NoError(t, mgr.CleanupExpired(ctx))
	assert.Equal(t, 1, store.Len())

	_, _, err = mgr.Validate(ctx, fresh)
	assert.NoError(t, err)
}

func TestManager_EndToEnd(t *testing.T) {
	t.Parallel()

	mgr, store, _ := newTestManager(t)
	ctx := context.Background()
	store.PutUser(session.User{ID: "u1", Username: "alice"})

	token, _, err := mgr.Create(ctx, "u1")
	require.NoError(t, err)

	sess, user, err := mgr.Validate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "u1", sess.UserID)
	require.Equal(t, "u1", user.ID)

	require.NoError(t, mgr.Invalidate(ctx, sess.ID))

	_, _, err = mgr.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
