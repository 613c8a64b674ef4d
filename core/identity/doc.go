// Package identity provides user identifier generation and field-level
// validation of registration input.
//
// Identifiers are UUIDv4 strings (122 bits of entropy); collision is treated
// as cryptographically negligible and is not defended against beyond the
// store's uniqueness constraint. Generated usernames follow the
// "user_<random>" convention for accounts created without an explicit name.
//
// Validators are pure predicates over untrusted input. Failures are reported
// per field as ValidationErrors so callers can render field-specific
// messages:
//
//	var errs identity.ValidationErrors
//	errs.Join(identity.ValidateEmail(email))
//	errs.Join(identity.ValidatePassword(pass))
//	if !errs.IsEmpty() {
//		// errs.Fields() -> map[string][]string for the form layer
//	}
//
// Validation must run before any persistence attempt; a validation failure is
// recoverable caller data, never a security event.
package identity
