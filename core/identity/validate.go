package identity

import (
	"fmt"
	"regexp"
	"strings"
)

// Input length bounds.
const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxPasswordLength = 255
	maxEmailLength    = 255
)

// passwordSpecials is the set of special characters passwords may (and must)
// contain.
const passwordSpecials = "@$!%*#?&"

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[a-z0-9]+$`)
	// passwordCharsetRe restricts passwords to letters, digits, and the
	// allowed specials; the class requirements are checked separately since
	// Go's regexp has no lookahead.
	passwordCharsetRe = regexp.MustCompile(`^[A-Za-z0-9@$!%*#?&]+$`)
	digitRe           = regexp.MustCompile(`[0-9]`)
	letterRe          = regexp.MustCompile(`[A-Za-z]`)
)

// ValidateEmail checks format and length of an email address. A nil return
// means the value passed.
func ValidateEmail(email string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(email) == "" {
		return append(errs, ValidationError{Field: "email", Message: "email is required"})
	}
	if len(email) > maxEmailLength {
		errs = append(errs, ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("email must be at most %d characters", maxEmailLength),
		})
	}
	if !emailRe.MatchString(email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email format"})
	}

	return errs
}

// ValidateUsername checks length bounds and the lowercase-alphanumeric
// character rule. Underscores, dashes, and uppercase are rejected.
func ValidateUsername(username string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(username) == "" {
		return append(errs, ValidationError{Field: "username", Message: "username is required"})
	}
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		errs = append(errs, ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength),
		})
	}
	if !usernameRe.MatchString(username) {
		errs = append(errs, ValidationError{
			Field:   "username",
			Message: "username may contain only lowercase letters and digits",
		})
	}

	return errs
}

// ValidatePassword checks length bounds and character class requirements:
// at least one letter, one digit, and one of @$!%*#?&, with no characters
// outside those classes.
func ValidatePassword(password string) ValidationErrors {
	var errs ValidationErrors

	if password == "" {
		return append(errs, ValidationError{Field: "password", Message: "password is required"})
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		errs = append(errs, ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength),
		})
	}
	if !passwordCharsetRe.MatchString(password) {
		errs = append(errs, ValidationError{
			Field:   "password",
			Message: "password may contain only letters, digits, and " + passwordSpecials,
		})
	}
	if !letterRe.MatchString(password) {
		errs = append(errs, ValidationError{Field: "password", Message: "password must contain a letter"})
	}
	if !digitRe.MatchString(password) {
		errs = append(errs, ValidationError{Field: "password", Message: "password must contain a digit"})
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		errs = append(errs, ValidationError{Field: "password", Message: "password must contain one of " + passwordSpecials})
	}

	return errs
}
