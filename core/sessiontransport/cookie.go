package sessiontransport

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/session"
)

// DefaultCookieName is the session cookie name.
const DefaultCookieName = "auth-session"

// Cookie is the HTTP cookie transport for sessions.
type Cookie struct {
	sessions *session.Manager
	cookies  *cookie.Manager
	name     string
}

// CookieOption configures the transport.
type CookieOption func(*Cookie)

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) CookieOption {
	return func(c *Cookie) {
		if name != "" {
			c.name = name
		}
	}
}

// New creates a cookie-based session transport.
func New(sessions *session.Manager, cookies *cookie.Manager, opts ...CookieOption) *Cookie {
	c := &Cookie{
		sessions: sessions,
		cookies:  cookies,
		name:     DefaultCookieName,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Authenticate issues a session for userID and sets the token cookie with
// Expires mirroring the session expiry. Called after credentials have been
// verified (login) or an account created (registration).
func (c *Cookie) Authenticate(ctx context.Context, w http.ResponseWriter, userID string) (session.Session, error) {
	token, sess, err := c.sessions.Create(ctx, userID)
	if err != nil {
		return session.Session{}, err
	}

	c.setTokenCookie(w, token, sess)
	return sess, nil
}

// Load resolves the request's session cookie to a validated session and user
// summary. Requests without a live session yield ErrNoSession and have the
// cookie cleared so the dead token is not resent. When sliding renewal
// extended the session, the cookie is rewritten with the new expiry.
func (c *Cookie) Load(ctx context.Context, w http.ResponseWriter, r *http.Request) (session.Session, session.User, error) {
	token, err := c.cookies.Get(r, c.name)
	if err != nil {
		if errors.Is(err, cookie.ErrNotFound) {
			return session.Session{}, session.User{}, ErrNoSession
		}
		return session.Session{}, session.User{}, err
	}

	sess, user, err := c.sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.cookies.Delete(w, c.name)
			return session.Session{}, session.User{}, ErrNoSession
		}
		return session.Session{}, session.User{}, fmt.Errorf("sessiontransport: validate: %w", err)
	}

	// Keep the client's Expires aligned with renewals.
	c.setTokenCookie(w, token, sess)

	return sess, user, nil
}

// Logout invalidates the request's session and clears the cookie. Requests
// without a session cookie are a no-op; the cookie is cleared regardless.
func (c *Cookie) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer c.cookies.Delete(w, c.name)

	token, err := c.cookies.Get(r, c.name)
	if err != nil {
		if errors.Is(err, cookie.ErrNotFound) {
			return nil
		}
		return err
	}

	return c.sessions.Invalidate(ctx, session.HashToken(token))
}

func (c *Cookie) setTokenCookie(w http.ResponseWriter, token string, sess session.Session) {
	c.cookies.Set(w, c.name, token,
		cookie.WithPath("/"),
		cookie.WithExpires(sess.ExpiresAt),
		cookie.WithHTTPOnly(true),
	)
}
