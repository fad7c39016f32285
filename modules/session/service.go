package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/pkg/cookie"
)

// CookieName is the cookie carrying the session token.
const CookieName = "X-401d25-Token"

const defaultCookieTTL = 7 * 24 * time.Hour

// Claims is the signed session payload.
type Claims struct {
	TokenSeed string `json:"tokenSeed"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens.
type Service struct {
	secret    []byte
	cookies   *cookie.Manager
	cookieTTL time.Duration
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the time source used for the iat claim.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Service signing with cfg.SecretKey. A nil cookie manager
// gets the package defaults.
func New(cfg Config, cookies *cookie.Manager, opts ...Option) (*Service, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}
	if cookies == nil {
		cookies = cookie.New()
	}
	ttl := cfg.CookieTTL
	if ttl <= 0 {
		ttl = defaultCookieTTL
	}

	s := &Service{
		secret:    []byte(cfg.SecretKey),
		cookies:   cookies,
		cookieTTL: ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token embedding tokenSeed.
func (s *Service) Issue(tokenSeed string) (string, error) {
	if tokenSeed == "" {
		return "", ErrEmptySeed
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenSeed: tokenSeed,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSignToken, err)
	}
	return signed, nil
}

// Parse verifies token and returns the embedded seed.
// Every failure is tagged core.KindUnauthorized.
func (s *Service) Parse(token string) (string, error) {
	if token == "" {
		return "", core.Unauthorized(ErrMissingToken)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", core.Unauthorized(fmt.Errorf("%w: %w", ErrInvalidToken, err))
	}
	if claims.TokenSeed == "" {
		return "", core.Unauthorized(ErrInvalidToken)
	}
	return claims.TokenSeed, nil
}

// SetCookie stores token in the session cookie.
func (s *Service) SetCookie(w http.ResponseWriter, token string) error {
	return s.cookies.Set(w, CookieName, token, cookie.WithTTL(s.cookieTTL))
}

// ClearCookie expires the session cookie.
func (s *Service) ClearCookie(w http.ResponseWriter) {
	s.cookies.Delete(w, CookieName)
}
