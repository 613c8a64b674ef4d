package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/core/identity"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/password"
	"github.com/dmitrymomot/authkit/core/session"
)

// Service runs the account flows against a user store, a password hasher,
// and a session manager.
type Service struct {
	users    UserStore
	hasher   *password.Hasher
	sessions *session.Manager
	resets   ResetStore
	log      *slog.Logger
	clock    func() time.Time
	resetTTL time.Duration

	// dummyHash absorbs a verification for unknown emails so login timing
	// does not reveal account existence.
	dummyHash string
}

// Option configures a Service.
type Option func(*Service)

// WithResetStore replaces the in-memory reset token store.
func WithResetStore(store ResetStore) Option {
	return func(s *Service) {
		if store != nil {
			s.resets = store
		}
	}
}

// WithResetTTL overrides how long reset tokens stay redeemable.
func WithResetTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

// WithLogger sets the logger for internal failure reporting.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source, used by tests to control reset token
// expiry.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService creates an account flow service. The user store, hasher, and
// session manager are required; the reset token store defaults to an
// in-memory implementation.
func NewService(users UserStore, hasher *password.Hasher, sessions *session.Manager, opts ...Option) *Service {
	s := &Service{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		resets:   NewMemoryResetStore(),
		log:      slog.Default(),
		clock:    time.Now,
		resetTTL: DefaultResetTTL,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Verification against this hash always fails but costs the same as a
	// real check.
	if hash, err := hasher.Hash("decoy-password-for-timing-1!"); err == nil {
		s.dummyHash = hash
	}

	return s
}

// Register creates an account. An empty username gets a server-assigned
// placeholder. Validation failures are returned as identity.ValidationErrors;
// a duplicate email is ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, username, plaintext string) (User, error) {
	errs := identity.ValidateEmail(email)
	if username != "" {
		errs.Join(identity.ValidateUsername(username))
	}
	errs.Join(identity.ValidatePassword(plaintext))
	if !errs.IsEmpty() {
		return User{}, errs
	}

	if username == "" {
		generated, err := identity.NewUsername()
		if err != nil {
			s.log.ErrorContext(ctx, "username generation failed", logger.Component("auth"), logger.Error(err))
			return User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
		username = generated
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		s.log.ErrorContext(ctx, "password hashing failed", logger.Component("auth"), logger.Error(err))
		return User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	user := User{
		ID:           identity.NewUserID(),
		Email:        normalizeEmail(email),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, ErrEmailTaken
		}
		s.log.ErrorContext(ctx, "user insert failed", logger.Component("auth"), logger.Error(err))
		return User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return user, nil
}

// Login verifies email and password and returns the account. Unknown email
// and wrong password are both ErrInvalidCredentials, and the unknown-email
// path still performs a hash verification to level response timing.
func (s *Service) Login(ctx context.Context, email, plaintext string) (User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			if s.dummyHash != "" {
				_, _ = s.hasher.Verify(s.dummyHash, plaintext)
			}
			return User{}, ErrInvalidCredentials
		}
		s.log.ErrorContext(ctx, "user lookup failed", logger.Component("auth"), logger.Error(err))
		return User{}, err
	}

	match, err := s.hasher.Verify(user.PasswordHash, plaintext)
	if err != nil {
		s.log.ErrorContext(ctx, "password verification failed",
			logger.Component("auth"), logger.UserID(user.ID), logger.Error(err))
		return User{}, err
	}
	if !match {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Logout invalidates a single session by its identifier. Invalidating an
// already-gone session is not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Invalidate(ctx, sessionID)
}

// ChangeUsername validates and stores a new username for the account.
func (s *Service) ChangeUsername(ctx context.Context, userID, username string) error {
	if errs := identity.ValidateUsername(username); !errs.IsEmpty() {
		return errs
	}
	return s.users.UpdateUsername(ctx, userID, username)
}

// ChangePassword verifies the current password, stores a hash of the new
// one, and invalidates every session of the user. A wrong current password
// is ErrInvalidCredentials.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := s.hasher.Verify(user.PasswordHash, current)
	if err != nil {
		s.log.ErrorContext(ctx, "password verification failed",
			logger.Component("auth"), logger.UserID(userID), logger.Error(err))
		return err
	}
	if !match {
		return ErrInvalidCredentials
	}

	if errs := identity.ValidatePassword(next); !errs.IsEmpty() {
		return errs
	}

	return s.setPassword(ctx, userID, next)
}

// RequestPasswordReset issues a single-use reset token for the account
// behind email. Only the token's sha256 hash is stored; the plaintext is
// returned for the caller to deliver. An unknown email returns an empty
// token with no error, so callers respond identically either way.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil
		}
		s.log.ErrorContext(ctx, "user lookup failed", logger.Component("auth"), logger.Error(err))
		return "", err
	}

	token, err := session.GenerateToken()
	if err != nil {
		s.log.ErrorContext(ctx, "reset token generation failed",
			logger.Component("auth"), logger.UserID(user.ID), logger.Error(err))
		return "", err
	}

	record := ResetToken{
		TokenHash: session.HashToken(token),
		UserID:    user.ID,
		ExpiresAt: s.clock().Add(s.resetTTL),
	}
	if err := s.resets.Insert(ctx, record); err != nil {
		s.log.ErrorContext(ctx, "reset token insert failed",
			logger.Component("auth"), logger.UserID(user.ID), logger.Error(err))
		return "", err
	}

	return token, nil
}

// ConfirmPasswordReset redeems a reset token and stores a hash of the new
// password, invalidating every session of the user. Unknown, expired, and
// already-used tokens are uniformly ErrInvalidResetToken; each token redeems
// at most once, including on failed attempts.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, next string) error {
	record, err := s.resets.Consume(ctx, session.HashToken(token))
	if err != nil {
		if errors.Is(err, ErrResetTokenNotFound) {
			return ErrInvalidResetToken
		}
		s.log.ErrorContext(ctx, "reset token lookup failed", logger.Component("auth"), logger.Error(err))
		return err
	}

	if !s.clock().Before(record.ExpiresAt) {
		return ErrInvalidResetToken
	}

	if errs := identity.ValidatePassword(next); !errs.IsEmpty() {
		return errs
	}

	return s.setPassword(ctx, record.UserID, next)
}

func (s *Service) setPassword(ctx context.Context, userID, plaintext string) error {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		s.log.ErrorContext(ctx, "password hashing failed",
			logger.Component("auth"), logger.UserID(userID), logger.Error(err))
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	// Stale reset tokens die with the old credential.
	if err := s.resets.DeleteByUserID(ctx, userID); err != nil {
		s.log.ErrorContext(ctx, "reset token cleanup failed",
			logger.Component("auth"), logger.UserID(userID), logger.Error(err))
	}

	return s.sessions.InvalidateUserSessions(ctx, userID)
}
