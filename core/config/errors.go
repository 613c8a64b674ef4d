package config

import "errors"

var (
	// ErrInvalidTarget is returned when Load receives anything but a non-nil
	// pointer to a struct.
	ErrInvalidTarget = errors.New("config: target must be a non-nil struct pointer")

	// ErrLoadFailed wraps environment parsing failures.
	ErrLoadFailed = errors.New("config: load failed")
)
