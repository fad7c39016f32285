package httpserver

import "errors"

var (
	ErrListen = errors.New("httpserver: listen")
	ErrServe  = errors.New("httpserver: serve")
	ErrStop   = errors.New("httpserver: graceful stop")
)
