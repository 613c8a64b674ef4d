package identity

import (
	"fmt"
	"strings"
)

// ValidationError describes a single failed check on a single input field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures across one input payload.
// The zero value is ready to use.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation passed"
	}

	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty reports whether no failures were recorded.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Join appends the failures from other, if any. It accepts the return value
// of the Validate* functions directly, including nil.
func (e *ValidationErrors) Join(other ValidationErrors) {
	*e = append(*e, other...)
}

// Fields groups failure messages by field name for structured responses.
func (e ValidationErrors) Fields() map[string][]string {
	if len(e) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(e))
	for _, err := range e {
		fields[err.Field] = append(fields[err.Field], err.Message)
	}
	return fields
}
