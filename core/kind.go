package core

import "errors"

// Kind classifies a failure at the place it happens, so the HTTP layer can
// map it to a status without inspecting the message text.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

// Tag attaches kind to err. A nil err stays nil.
func Tag(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

// KindOf returns the outermost kind attached to err, or KindUnknown.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnknown
}

// NotFound tags err with KindNotFound.
func NotFound(err error) error { return Tag(KindNotFound, err) }

// Validation tags err with KindValidation.
func Validation(err error) error { return Tag(KindValidation, err) }

// Conflict tags err with KindConflict.
func Conflict(err error) error { return Tag(KindConflict, err) }

// Unauthorized tags err with KindUnauthorized.
func Unauthorized(err error) error { return Tag(KindUnauthorized, err) }
