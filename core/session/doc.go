// Package session implements the bearer-token session lifecycle: token
// generation, one-way token hashing, validation with sliding renewal, and
// lazy expiry.
//
// # Token model
//
// A session token is a 24-character URL-safe random string handed to the
// client (typically in a cookie). The store never sees it: the session ID is
// the hex-encoded SHA-256 of the token, so a read-only compromise of the
// store yields no usable bearer tokens.
//
//	token, sess, err := manager.Create(ctx, userID)
//	// token  -> cookie value, shown to the client exactly once
//	// sess.ID -> sha256(token), the only identifier ever persisted
//
// # Lifecycle
//
// From the caller's perspective a token moves through
// Unauthenticated -> Valid -> (Renewed | Expired | Invalidated). There is no
// object for the unauthenticated state; it is the absence of a valid session
// and is always reported as ErrNotFound, indistinguishable from an expired
// and already purged session.
//
// Validation applies two policies in order:
//
//   - Lazy expiry: an expired row is deleted when next looked up; there is
//     no background sweep (CleanupExpired is available for hosts that want
//     one).
//   - Sliding renewal: once more than half the lifetime has elapsed
//     (configurable via WithRenewalThreshold), the expiry is extended to
//     now+TTL and persisted before the session is returned. A session
//     accessed daily is renewed roughly once per threshold window, not on
//     every request.
//
// # Stores
//
// Persistence is behind the Store interface; the manager is constructed with
// an injected store and never holds global state. MemoryStore is the
// in-process implementation used in tests and single-node setups;
// integration/sessionstore provides PostgreSQL and Redis implementations.
//
// Concurrent validations of the same token may race a renewal against a
// logout. That is benign by contract: the worst outcomes are an extra no-op
// write or a not-found on the next read. The manager issues no multi-row
// transactions and relies on row-level atomicity of the store.
package session
