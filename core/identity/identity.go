package identity

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// usernameAlphabet is the character set for generated username suffixes.
const usernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// usernameSuffixLength is the length of the random part of generated usernames.
const usernameSuffixLength = 8

// NewUserID returns a new user identifier: a random UUIDv4 string.
func NewUserID() string {
	return uuid.NewString()
}

// NewUsername returns a placeholder username of the form "user_<random>" for
// accounts registered without an explicit name. The suffix is drawn from a
// cryptographically secure source; generated names are server-assigned and
// exempt from ValidateUsername.
func NewUsername() (string, error) {
	suffix := make([]byte, usernameSuffixLength)
	max := big.NewInt(int64(len(usernameAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = usernameAlphabet[n.Int64()]
	}

	return "user_" + string(suffix), nil
}
