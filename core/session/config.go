package session

import "time"

// Defaults: 30-day lifetime, renewal once past the half-life. The threshold
// bounds both write amplification and the staleness window an inactive
// session tolerates.
const (
	DefaultTTL              = 30 * 24 * time.Hour
	DefaultRenewalThreshold = 15 * 24 * time.Hour
)

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithTTL sets the session time-to-live. Values <= 0 keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
			// Keep the half-life rule unless overridden explicitly.
			if !m.thresholdSet {
				m.renewalThreshold = ttl / 2
			}
		}
	}
}

// WithRenewalThreshold sets how long before expiry a validated session is
// renewed: once now >= expiresAt - threshold, expiry is extended to now+TTL.
// Values <= 0 keep the default; values above the TTL renew on every request.
func WithRenewalThreshold(threshold time.Duration) Option {
	return func(m *Manager) {
		if threshold > 0 {
			m.renewalThreshold = threshold
			m.thresholdSet = true
		}
	}
}

// WithClock injects the time source, enabling expiry and renewal tests
// without sleeping. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// Config provides environment-based configuration for the session manager.
type Config struct {
	// TTL is the session lifetime.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"720h"` // 30 days

	// RenewalThreshold is the sliding-renewal window before expiry.
	RenewalThreshold time.Duration `env:"SESSION_RENEWAL_THRESHOLD" envDefault:"360h"` // 15 days
}

// NewFromConfig creates a Manager from configuration with the given store.
func NewFromConfig(cfg Config, store Store, opts ...Option) *Manager {
	configOpts := make([]Option, 0, len(opts)+2)
	if cfg.TTL > 0 {
		configOpts = append(configOpts, WithTTL(cfg.TTL))
	}
	if cfg.RenewalThreshold > 0 {
		configOpts = append(configOpts, WithRenewalThreshold(cfg.RenewalThreshold))
	}
	configOpts = append(configOpts, opts...)

	return NewManager(store, configOpts...)
}
