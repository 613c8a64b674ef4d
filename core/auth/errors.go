package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("auth: email already taken")

	// ErrUserNotFound is returned by user stores for lookups that match no
	// account.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrInvalidResetToken covers unknown, expired, and already-used reset
	// tokens uniformly.
	ErrInvalidResetToken = errors.New("auth: invalid or expired reset token")

	// ErrRegistrationFailed wraps internal failures during registration so
	// store and hasher diagnostics stay out of user-facing responses.
	ErrRegistrationFailed = errors.New("auth: registration failed")
)
