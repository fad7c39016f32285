package account

import (
	"errors"

	"github.com/dmitrymomot/remindme/core"
)

var (
	// ErrMissingCredentials is returned when login is attempted without Basic auth.
	ErrMissingCredentials = core.Validation(errors.New("validation failed: basic credentials required"))

	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = core.Unauthorized(errors.New("unauthorized: invalid username or password"))

	// ErrEmptySecretKey is returned when a token seed is requested without a secret key.
	ErrEmptySecretKey = errors.New("account: secret key is empty")
)
