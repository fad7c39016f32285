package mongo

import "errors"

// The messages of ErrInvalidObjectID and ErrDuplicateKey keep the phrases the
// handler's message fallback recognises.
var (
	ErrConnect          = errors.New("mongo: connect")
	ErrPing             = errors.New("mongo: ping failed")
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidObjectID  = errors.New("cast to objectid failed")
	ErrDuplicateKey     = errors.New("duplicate key")
)
