package oauth

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/remindme/core"
)

var (
	// ErrMissingCode is reported when the callback arrives without a code.
	ErrMissingCode = core.NewHTTPError(http.StatusInternalServerError, "Google OAuth Error")

	// ErrNoAccessToken means the token endpoint answered without an access token.
	// The callback handles it with a plain redirect.
	ErrNoAccessToken = errors.New("oauth: no access token from google")

	// ErrStateMismatch is reported when the state echoed by Google differs
	// from the one issued by the login route.
	ErrStateMismatch = core.NewHTTPError(http.StatusInternalServerError, "Google OAuth Error: state mismatch")

	ErrTokenExchange  = errors.New("oauth: token exchange failed")
	ErrIdentityLookup = errors.New("oauth: identity lookup failed")
	ErrMissingEmail   = errors.New("oauth: identity response has no email")
	ErrMissingConfig  = errors.New("oauth: incomplete configuration")
)
