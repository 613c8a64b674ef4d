// Package logger provides slog attribute helpers shared across the library.
//
// Helpers follow the empty Attr pattern: nil errors and empty identifiers
// produce an empty slog.Attr, which slog silently drops, so call sites never
// guard attributes:
//
//	log.Error("login failed",
//		logger.Component("auth"),
//		logger.UserID(userID),
//		logger.Error(err),
//	)
//
// The package deliberately does not construct loggers; components accept a
// *slog.Logger and default to slog.Default().
package logger
