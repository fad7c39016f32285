package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/pkg/validator"
)

var kindStatus = map[core.Kind]int{
	core.KindNotFound:     http.StatusNotFound,
	core.KindValidation:   http.StatusBadRequest,
	core.KindConflict:     http.StatusConflict,
	core.KindUnauthorized: http.StatusUnauthorized,
}

// Message fragments recognised for errors that carry neither a status nor a
// kind, mostly raw driver errors. First match wins.
var messageStatus = []struct {
	fragment string
	status   int
}{
	{"objectid failed", http.StatusNotFound},
	{"validation failed", http.StatusBadRequest},
	{"duplicate key", http.StatusConflict},
	{"unauthorized", http.StatusUnauthorized},
}

// Classify returns the HTTP status for err.
func Classify(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var withStatus interface{ StatusCode() int }
	if errors.As(err, &withStatus) {
		if code := withStatus.StatusCode(); code >= 100 && code <= 599 {
			return code
		}
	}

	if status, ok := kindStatus[core.KindOf(err)]; ok {
		return status
	}
	if validator.IsValidationError(err) {
		return http.StatusBadRequest
	}

	msg := strings.ToLower(err.Error())
	for _, m := range messageStatus {
		if strings.Contains(msg, m.fragment) {
			return m.status
		}
	}

	return http.StatusInternalServerError
}
