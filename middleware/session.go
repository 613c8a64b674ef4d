package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/sessiontransport"
)

type sessionKey struct{}
type userKey struct{}

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Transport resolves the request cookie into a session
	Transport *sessiontransport.Cookie
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
}

// Session creates middleware that resolves the request's session cookie and
// stores the session and user in the request context. Anonymous requests
// and transport failures degrade gracefully: the request continues with no
// session in context.
func Session(transport *sessiontransport.Cookie) Middleware {
	return SessionWithConfig(SessionConfig{Transport: transport})
}

// SessionWithConfig creates a session middleware with custom configuration.
func SessionWithConfig(cfg SessionConfig) Middleware {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, user, err := cfg.Transport.Load(r.Context(), w, r)
			if err != nil {
				if !errors.Is(err, sessiontransport.ErrNoSession) {
					cfg.Logger.ErrorContext(r.Context(), "session load failed",
						logger.Component("middleware"), logger.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			ctx = context.WithValue(ctx, userKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests without a resolved session with 401. It must
// run inside the Session middleware.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireGuest rejects requests carrying a resolved session with 403, for
// routes like login and registration. It must run inside the Session
// middleware.
func RequireGuest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); ok {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSession retrieves the resolved session from the request context.
func GetSession(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(session.Session)
	return sess, ok
}

// GetUser retrieves the resolved user summary from the request context.
func GetUser(ctx context.Context) (session.User, bool) {
	user, ok := ctx.Value(userKey{}).(session.User)
	return user, ok
}

// MustGetSession retrieves the session from context or panics. Use behind
// RequireAuth where presence is guaranteed.
func MustGetSession(ctx context.Context) session.Session {
	sess, ok := GetSession(ctx)
	if !ok {
		panic("session not found in context")
	}
	return sess
}
