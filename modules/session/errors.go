package session

import "errors"

var (
	ErrMissingSecretKey = errors.New("session: missing secret key")
	ErrEmptySeed        = errors.New("session: empty token seed")
	ErrSignToken        = errors.New("session: failed to sign token")

	// The messages below keep the "unauthorized" wording so untagged copies
	// still classify as 401.
	ErrMissingToken = errors.New("unauthorized: missing session token")
	ErrInvalidToken = errors.New("unauthorized: invalid session token")
	ErrUnknownSeed  = errors.New("unauthorized: no account for session token")
)
