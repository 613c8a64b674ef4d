package session

import "errors"

var (
	// ErrNotFound is returned for any token that does not resolve to a live
	// session: unknown, expired, or invalidated. The cases are deliberately
	// indistinguishable to avoid leaking why a token is invalid.
	ErrNotFound = errors.New("session: not found")

	// ErrDuplicateID is returned by stores when inserting a session whose ID
	// already exists. With 144 bits of token entropy this is cryptographically
	// negligible, but the contract is enforced, not assumed.
	ErrDuplicateID = errors.New("session: duplicate id")

	// ErrCreationFailed is returned when the store rejects a session insert.
	// It is a generic retryable failure; store diagnostics are never exposed
	// through it.
	ErrCreationFailed = errors.New("session: creation failed")

	// ErrTokenGeneration is returned when the random source fails.
	ErrTokenGeneration = errors.New("session: token generation failed")
)
