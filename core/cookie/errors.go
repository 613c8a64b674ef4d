package cookie

import "errors"

var (
	// ErrNoSecret indicates a signed operation was attempted on a manager
	// constructed without secrets.
	ErrNoSecret = errors.New("cookie: no signing secret configured")

	// ErrSecretTooShort indicates a secret below the minimum length.
	ErrSecretTooShort = errors.New("cookie: secret must be at least 32 characters")

	// ErrNotFound indicates the requested cookie is absent from the request.
	ErrNotFound = errors.New("cookie: not found in request")

	// ErrInvalidSignature indicates signature verification failed, suggesting
	// tampering or a rotated-out key.
	ErrInvalidSignature = errors.New("cookie: signature verification failed")

	// ErrInvalidFormat indicates the cookie value has an unexpected shape.
	ErrInvalidFormat = errors.New("cookie: invalid value format")
)
