package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/remindme/pkg/logger"
	"github.com/dmitrymomot/remindme/pkg/requestid"
)

// Responder writes the response for a failed request.
type Responder func(w http.ResponseWriter, r *http.Request, err error)

func logLevel(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewResponder logs err and answers with its classified status and no body.
// If the response has already been started it only logs.
func NewResponder(log *slog.Logger) Responder {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := Classify(err)
		committed := Committed(w)

		log.LogAttrs(r.Context(), logLevel(status), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("committed", committed),
			logger.Component("error_handler"),
		)

		if committed {
			return
		}
		w.WriteHeader(status)
	}
}

// NewErrorHandler adapts a Responder to Wrap's ErrorHandler.
// Configure it once in main and pass it to every module.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	respond := NewResponder(log)
	return func(ctx Context, err error) {
		respond(ctx.ResponseWriter(), ctx.Request(), err)
	}
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Route Not Registered"))
}
