package handler_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/pkg/binder"
)

type echoRequest struct {
	Name string `json:"name"`
}

type capturedError struct {
	err       error
	committed bool
}

func capturingErrorHandler(got *capturedError) handler.ErrorHandler[handler.Context] {
	return func(ctx handler.Context, err error) {
		got.err = err
		got.committed = handler.Committed(ctx.ResponseWriter())
		if !got.committed {
			ctx.ResponseWriter().WriteHeader(handler.Classify(err))
		}
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := handler.HandlerFunc[handler.Context, echoRequest](func(ctx handler.Context, req echoRequest) handler.Response {
		if req.Name == "conflict" {
			return handler.Error(core.Conflict(errors.New("taken")))
		}
		return handler.JSON(map[string]string{"hello": req.Name}, handler.WithJSONStatus(http.StatusCreated))
	})

	newHandler := func(got *capturedError) http.HandlerFunc {
		return handler.Wrap(echo,
			handler.WithBinders[handler.Context, echoRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, echoRequest](capturingErrorHandler(got)),
		)
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var got capturedError
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ann"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newHandler(&got)(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"hello":"ann"}`, rec.Body.String())
		assert.NoError(t, got.err)
	})

	t.Run("bind failure is validation", func(t *testing.T) {
		t.Parallel()

		var got capturedError
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newHandler(&got)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, core.KindValidation, core.KindOf(got.err))
	})

	t.Run("handler error", func(t *testing.T) {
		t.Parallel()

		var got capturedError
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"conflict"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newHandler(&got)(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, got.committed)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got capturedError
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response { return nil }),
			handler.WithErrorHandler[handler.Context, struct{}](capturingErrorHandler(&got)),
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got.err, handler.ErrNilResponse)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("default error handler", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.Error(core.NewHTTPError(http.StatusTeapot, "teapot"))
		}))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestRedirectWithError(t *testing.T) {
	t.Parallel()

	var got capturedError
	failure := core.NewHTTPError(http.StatusInternalServerError, "Google OAuth Error")
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.RedirectWithError("https://app.example.com", failure)
		}),
		handler.WithErrorHandler[handler.Context, struct{}](capturingErrorHandler(&got)),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/oauth/google", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Location"))
	assert.ErrorIs(t, got.err, failure)
	assert.True(t, got.committed, "error handler must see the redirect already written")
}

func TestResponses(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(rec, httptest.NewRequest(http.MethodDelete, "/", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/next").Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/next", rec.Header().Get("Location"))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.Error(errors.New("E11000 duplicate key error"))
		}),
		handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(log)),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/signup", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, rec.Body.String(), "error responses carry no body")
	assert.Contains(t, buf.String(), `"status":409`)
	assert.Contains(t, buf.String(), `"path":"/api/signup"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestResponder_OnlyLogsWhenCommitted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	respond := handler.NewResponder(slog.New(slog.NewJSONHandler(&buf, nil)))

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.RedirectWithError("/client", errors.New("boom"))
		}),
		handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
			respond(ctx.ResponseWriter(), ctx.Request(), err)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, buf.String(), `"committed":true`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handler.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "Route Not Registered", string(body))
}
