package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

// The lifecycle contract tolerates benign races: concurrent validations of
// one token may double-renew, and a renewal racing a logout may lose. These
// tests run under -race to prove no memory-level races exist and that every
// outcome is one of the allowed ones.

func TestConcurrentValidate(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	clock := newFakeClock()
	mgr := session.NewManager(store, session.WithClock(clock.Now))
	ctx := context.Background()

	token, _, err := mgr.Create(ctx, "u1")
	require.NoError(t, err)

	// Land every validation inside the renewal window.
	clock.Advance(20 * 24 * time.Hour)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, _, err := mgr.Validate(ctx, token)
			assert.NoError(t, err)
			assert.Equal(t, "u1", sess.UserID)
		}()
	}
	wg.Wait()

	sess, _, err := mgr.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(30*24*time.Hour), sess.ExpiresAt)
}

func TestValidateRacingInvalidate(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	mgr := session.NewManager(store)
	ctx := context.Background()

	token, created, err := mgr.Create(ctx, "u1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, err := mgr.Validate(ctx, token)
		// Either outcome is acceptable depending on interleaving.
		if err != nil {
			assert.True(t, errors.Is(err, session.ErrNotFound))
		}
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, mgr.Invalidate(ctx, created.ID))
	}()
	wg.Wait()

	// After both complete the session is definitively gone.
	_, _, err = mgr.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestConcurrentCreate(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	mgr := session.NewManager(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	tokens := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, _, err := mgr.Create(ctx, "u1")
			assert.NoError(t, err)
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[string]struct{}, 64)
	for token := range tokens {
		_, dup := seen[token]
		require.False(t, dup, "duplicate token issued")
		seen[token] = struct{}{}
	}
	assert.Equal(t, 64, store.Len())
}
