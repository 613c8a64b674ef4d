package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in priority order. The most reliable sources come first.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP from proxy headers, falling back to the
// request's RemoteAddr. X-Forwarded-For lists are resolved to the leftmost
// (original client) entry. Candidates are validated and normalized; when no
// header yields a valid address the raw RemoteAddr is returned as-is.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may hold "client, proxy1, proxy2".
		candidate, _, _ := strings.Cut(value, ",")
		if ip := normalize(candidate); ip != "" {
			return ip
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if ip := normalize(host); ip != "" {
			return ip
		}
	}
	if ip := normalize(r.RemoteAddr); ip != "" {
		return ip
	}

	return r.RemoteAddr
}

// normalize validates a candidate address and returns its canonical form,
// or "" when the candidate is unusable. The unspecified addresses (0.0.0.0,
// ::) signal the absence of a real client IP and are rejected.
func normalize(candidate string) string {
	ip := net.ParseIP(strings.TrimSpace(candidate))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
