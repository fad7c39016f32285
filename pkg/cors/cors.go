// Package cors answers cross-origin requests for browser clients.
//
// Requests without an Origin header (curl, server-to-server, same-origin
// navigation) always pass. Requests from a listed origin get credentialed
// CORS headers. Any other origin is refused with 403 and no body.
package cors

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Config lists the browser origins allowed to call the API.
type Config struct {
	Origins []string      `env:"CORS_ORIGINS" envSeparator:","`
	MaxAge  time.Duration `env:"CORS_MAX_AGE" envDefault:"10m"`
}

var (
	allowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")

	allowedHeaders = strings.Join([]string{
		"Authorization", "Content-Type", "X-Request-ID",
	}, ", ")

	exposedHeaders = strings.Join([]string{
		"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After",
	}, ", ")
)

// Middleware enforces the origin allow list in cfg.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(cfg.Origins))
	for _, o := range cfg.Origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowed[o] = struct{}{}
		}
	}
	maxAge := strconv.Itoa(int(cfg.MaxAge / time.Second))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if _, ok := allowed[origin]; !ok {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", allowedMethods)
				h.Set("Access-Control-Allow-Headers", allowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			h.Set("Access-Control-Expose-Headers", exposedHeaders)
			next.ServeHTTP(w, r)
		})
	}
}
