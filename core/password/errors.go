package password

import "errors"

var (
	// ErrHashingFailed indicates the underlying primitive failed, typically
	// because the random source or required memory was unavailable.
	ErrHashingFailed = errors.New("password: hashing failed")

	// ErrInvalidHash indicates the encoded hash is not a readable PHC string.
	ErrInvalidHash = errors.New("password: invalid hash encoding")

	// ErrUnsupportedAlgorithm indicates the hash was produced by an algorithm
	// other than argon2id.
	ErrUnsupportedAlgorithm = errors.New("password: unsupported algorithm")

	// ErrUnsupportedVersion indicates the hash was produced by an
	// incompatible argon2 version.
	ErrUnsupportedVersion = errors.New("password: unsupported argon2 version")

	// ErrInvalidParams indicates hasher construction was attempted with
	// parameters below the enforced security floors.
	ErrInvalidParams = errors.New("password: parameters below security floor")
)
