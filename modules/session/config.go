package session

import "time"

// Config holds the session signing settings.
type Config struct {
	SecretKey string        `env:"SECRET_KEY,required"`
	CookieTTL time.Duration `env:"SESSION_COOKIE_TTL" envDefault:"168h"`
}
