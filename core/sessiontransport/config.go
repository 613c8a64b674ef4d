package sessiontransport

import (
	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/session"
)

// Config provides environment-based configuration for the cookie transport.
type Config struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"auth-session"`
}

// NewFromConfig creates a cookie transport from configuration; explicit
// options override config values.
func NewFromConfig(cfg Config, sessions *session.Manager, cookies *cookie.Manager, opts ...CookieOption) *Cookie {
	configOpts := make([]CookieOption, 0, len(opts)+1)
	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}
	configOpts = append(configOpts, opts...)

	return New(sessions, cookies, configOpts...)
}
