package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const algorithmID = "argon2id"

// Security floors. Construction fails below these, regardless of options.
const (
	minMemoryKiB   uint32 = 8 * 1024
	minIterations  uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16
)

// Hasher derives and verifies Argon2id password hashes. It is stateless and
// safe for concurrent use; cost parameters are fixed at construction.
type Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithMemory sets the memory cost in KiB.
func WithMemory(kib uint32) Option {
	return func(h *Hasher) { h.memory = kib }
}

// WithIterations sets the time cost (number of passes).
func WithIterations(n uint32) Option {
	return func(h *Hasher) { h.iterations = n }
}

// WithParallelism sets the number of lanes.
func WithParallelism(p uint8) Option {
	return func(h *Hasher) { h.parallelism = p }
}

// WithKeyLength sets the derived key length in bytes.
func WithKeyLength(n uint32) Option {
	return func(h *Hasher) { h.keyLength = n }
}

// New creates a Hasher with the default parameters (19456 KiB memory,
// 3 iterations, parallelism 1, 16-byte salt, 32-byte key), optionally
// adjusted by opts. It panics if options push any parameter below the
// enforced floor; use NewWithOptions to get an error instead.
func New(opts ...Option) *Hasher {
	h, err := NewWithOptions(opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// NewWithOptions creates a Hasher and validates the resulting parameters
// against the security floors.
func NewWithOptions(opts ...Option) (*Hasher, error) {
	h := &Hasher{
		memory:      19456,
		iterations:  3,
		parallelism: 1,
		saltLength:  16,
		keyLength:   32,
	}

	for _, opt := range opts {
		opt(h)
	}

	switch {
	case h.memory < minMemoryKiB:
		return nil, fmt.Errorf("%w: memory %d KiB < %d KiB", ErrInvalidParams, h.memory, minMemoryKiB)
	case h.iterations < minIterations:
		return nil, fmt.Errorf("%w: iterations %d < %d", ErrInvalidParams, h.iterations, minIterations)
	case h.parallelism < minParallelism:
		return nil, fmt.Errorf("%w: parallelism %d < %d", ErrInvalidParams, h.parallelism, minParallelism)
	case h.saltLength < minSaltLength:
		return nil, fmt.Errorf("%w: salt length %d < %d", ErrInvalidParams, h.saltLength, minSaltLength)
	case h.keyLength < minKeyLength:
		return nil, fmt.Errorf("%w: key length %d < %d", ErrInvalidParams, h.keyLength, minKeyLength)
	}

	return h, nil
}

// Hash derives an Argon2id hash over password with a freshly generated random
// salt and returns it as a PHC-encoded string, e.g.
//
//	$argon2id$v=19$m=19456,t=3,p=1$<salt>$<hash>
//
// The only failure mode is the underlying primitive (random source or memory
// allocation), reported as ErrHashingFailed.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashingFailed, err)
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the hash over candidate using the parameters embedded in
// encodedHash and compares in constant time. A mismatched password is
// (false, nil); verification failure is data, not an error. An error is
// returned only for encodings that cannot be interpreted at all.
func (h *Hasher) Verify(encodedHash, candidate string) (bool, error) {
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(candidate), salt, params.iterations, params.memory, params.parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

// NeedsRehash reports whether encodedHash was produced with parameters weaker
// than the hasher's current configuration. Callers typically rehash on the
// next successful login.
func (h *Hasher) NeedsRehash(encodedHash string) (bool, error) {
	params, _, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	return params.memory < h.memory ||
		params.iterations < h.iterations ||
		params.parallelism < h.parallelism ||
		uint32(len(key)) != h.keyLength, nil
}

type hashParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// decodeHash parses a PHC string of the form
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>.
func decodeHash(encodedHash string) (hashParams, []byte, []byte, error) {
	var params hashParams

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, ErrInvalidHash
	}

	if parts[1] != algorithmID {
		return params, nil, nil, ErrUnsupportedAlgorithm
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return params, nil, nil, ErrUnsupportedVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return params, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, ErrInvalidHash
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrInvalidHash
	}

	return params, salt, key, nil
}
