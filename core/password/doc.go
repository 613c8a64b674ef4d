// Package password provides memory-hard password hashing built on Argon2id.
//
// Hashes are produced in the standard PHC string format, so every hash is
// self-describing: the algorithm parameters and salt travel with the hash and
// verification always uses the parameters the hash was created with. This
// allows cost parameters to be raised over time without invalidating stored
// credentials.
//
// Basic usage:
//
//	hasher := password.New()
//
//	encoded, err := hasher.Hash("s3cureP@ssword!")
//	if err != nil {
//		// resource exhaustion in the underlying primitive; treat as a
//		// server error, never as "wrong password"
//	}
//
//	ok, err := hasher.Verify(encoded, candidate)
//	if err != nil {
//		// the stored hash is unreadable (corrupted or produced by an
//		// unsupported algorithm)
//	}
//	if !ok {
//		// wrong password; this is data, not an error
//	}
//
// The default parameters (19456 KiB memory, 3 iterations, parallelism 1,
// 32-byte key) follow the current OWASP recommendation for Argon2id. They can
// be adjusted with functional options, but floors are enforced so a
// misconfigured service cannot silently produce weak hashes.
package password
