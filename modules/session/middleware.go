package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/account"
)

// AccountFinder resolves the account currently holding a token seed.
type AccountFinder interface {
	FindByTokenSeed(ctx context.Context, tokenSeed string) (*account.Account, error)
}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

// Authenticator rejects requests without a valid session and stores the
// authenticated account in the request context.
// Store failures other than a missing account are passed to respond unchanged.
func Authenticator(svc *Service, accounts AccountFinder, respond handler.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seed, err := svc.Parse(TokenFromRequest(r))
			if err != nil {
				respond(w, r, err)
				return
			}

			acc, err := accounts.FindByTokenSeed(r.Context(), seed)
			if err != nil {
				if core.KindOf(err) == core.KindNotFound {
					err = core.Unauthorized(fmt.Errorf("%w: %w", ErrUnknownSeed, err))
				}
				respond(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), acc)))
		})
	}
}
