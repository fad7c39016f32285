package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc extracts a unique identifier from an HTTP request for rate limiting.
type KeyFunc func(*http.Request) string

// ClientIP keys requests by the client address: the first valid
// X-Forwarded-For entry, then X-Real-IP, then the connection's remote
// address. Header values that do not parse as an IP are ignored, so a
// client cannot mint a fresh key per request.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for entry := range strings.SplitSeq(fwd, ",") {
			if ip := parseIP(entry); ip != "" {
				return ip
			}
		}
	}
	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parseIP(host); ip != "" {
		return ip
	}
	return host
}

// parseIP returns the normalized form of s, or "" if s is not an IP.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

// WithPrefix scopes keys produced by fn, so separate route groups keep
// separate counters.
func WithPrefix(prefix string, fn KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		key := fn(r)
		if key == "" {
			return ""
		}
		return prefix + ":" + key
	}
}
