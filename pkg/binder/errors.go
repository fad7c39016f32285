package binder

import "errors"

// ErrNotApplicable tells the caller to try the next binder.
var ErrNotApplicable = errors.New("binder: not applicable")

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrParseJSON            = errors.New("binder: malformed JSON body")
	ErrParseMultipart       = errors.New("binder: malformed multipart body")
	ErrParseQuery           = errors.New("binder: invalid query parameter")
	ErrParsePath            = errors.New("binder: invalid path parameter")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer to struct")
)
