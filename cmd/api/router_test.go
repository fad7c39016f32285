package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/account"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/cookie"
	"github.com/dmitrymomot/remindme/pkg/cors"
	"github.com/dmitrymomot/remindme/pkg/ratelimit"
)

type stubModule string

func (m stubModule) Handle() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(string(m)))
	})
}

type seedFinder map[string]*account.Account

func (f seedFinder) FindByTokenSeed(_ context.Context, seed string) (*account.Account, error) {
	if acc, ok := f[seed]; ok {
		return acc, nil
	}
	return nil, core.NotFound(account.ErrInvalidCredentials)
}

func newTestRouter(t *testing.T) (http.Handler, *session.Service) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions, err := session.New(session.Config{SecretKey: "secret", CookieTTL: time.Hour}, cookie.New())
	require.NoError(t, err)

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	limiter, err := ratelimit.NewFixedWindow(store, 100, time.Minute)
	require.NoError(t, err)

	errorHandler := handler.NewErrorHandler(log)
	router := newRouter(routes{
		log:      log,
		cors:     cors.Config{Origins: []string{"https://app.example.com"}, MaxAge: time.Minute},
		limiter:  limiter,
		respond:  handler.NewResponder(log),
		sessions: sessions,
		accounts: seedFinder{"seed-1": {ID: bson.NewObjectID(), Username: "alice", TokenSeed: "seed-1"}},

		account:  account.NewService(nil, sessions, "secret", errorHandler, account.WithLogger(log)),
		oauth:    stubModule("oauth"),
		profile:  stubModule("profiles"),
		reminder: stubModule("reminders"),
		message:  stubModule("messages"),
		image:    stubModule("images"),
	})
	return router, sessions
}

func TestRouter(t *testing.T) {
	t.Parallel()

	router, sessions := newTestRouter(t)
	token, err := sessions.Issue("seed-1")
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "liveness",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
			wantBody:   "ALIVE",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
			wantBody:   "Route Not Registered",
		},
		{
			name:       "wrong method",
			method:     http.MethodDelete,
			path:       "/health",
			wantStatus: http.StatusNotFound,
			wantBody:   "Route Not Registered",
		},
		{
			name:       "protected route without token",
			method:     http.MethodGet,
			path:       "/api/reminders/",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "protected route with bearer token",
			method:     http.MethodGet,
			path:       "/api/reminders/",
			header:     map[string]string{"Authorization": "Bearer " + token},
			wantStatus: http.StatusOK,
			wantBody:   "reminders",
		},
		{
			name:       "oauth callback is public",
			method:     http.MethodGet,
			path:       "/api/oauth/google/",
			wantStatus: http.StatusOK,
			wantBody:   "oauth",
		},
		{
			name:       "login without credentials",
			method:     http.MethodGet,
			path:       "/api/login",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blocked origin",
			method:     http.MethodGet,
			path:       "/health",
			header:     map[string]string{"Origin": "https://evil.example.com"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "allowed origin",
			method:     http.MethodGet,
			path:       "/health",
			header:     map[string]string{"Origin": "https://app.example.com"},
			wantStatus: http.StatusOK,
			wantBody:   "ALIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouterRequestID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
