package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultResetTTL is how long a password reset token stays redeemable.
const DefaultResetTTL = time.Hour

// ResetToken is a stored password reset request. TokenHash is the
// hex-encoded sha256 of the token handed to the user; the plaintext is
// never persisted.
type ResetToken struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
}

// ErrResetTokenNotFound is returned by reset stores when no token matches.
var ErrResetTokenNotFound = errors.New("auth: reset token not found")

// ResetStore persists password reset tokens. Consume must atomically remove
// the token it returns so each token redeems at most once.
type ResetStore interface {
	Insert(ctx context.Context, token ResetToken) error
	Consume(ctx context.Context, tokenHash string) (ResetToken, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// MemoryResetStore is a mutex-guarded in-memory ResetStore.
type MemoryResetStore struct {
	mu     sync.Mutex
	tokens map[string]ResetToken
}

// NewMemoryResetStore creates an empty in-memory reset token store.
func NewMemoryResetStore() *MemoryResetStore {
	return &MemoryResetStore{tokens: make(map[string]ResetToken)}
}

func (s *MemoryResetStore) Insert(_ context.Context, token ResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.TokenHash] = token
	return nil
}

func (s *MemoryResetStore) Consume(_ context.Context, tokenHash string) (ResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[tokenHash]
	if !ok {
		return ResetToken{}, ErrResetTokenNotFound
	}

	delete(s.tokens, tokenHash)
	return token, nil
}

func (s *MemoryResetStore) DeleteByUserID(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, token := range s.tokens {
		if token.UserID == userID {
			delete(s.tokens, hash)
		}
	}
	return nil
}
