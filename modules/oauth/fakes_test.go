package oauth_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/modules/account"
)

// fakeGoogle serves the token and identity endpoints.
type fakeGoogle struct {
	*httptest.Server

	tokenStatus    int
	tokenBody      map[string]any
	identityStatus int
	identityBody   map[string]any

	tokenCalls    atomic.Int32
	identityCalls atomic.Int32

	// Response delays, for exercising client timeouts.
	tokenDelay    atomic.Int64
	identityDelay atomic.Int64

	mu       sync.Mutex
	lastForm map[string]string
	lastAuth string
}

func newFakeGoogle(t *testing.T, accessToken, email string) *fakeGoogle {
	t.Helper()

	g := &fakeGoogle{
		tokenStatus:    http.StatusOK,
		tokenBody:      map[string]any{"access_token": accessToken, "token_type": "Bearer", "expires_in": 3599},
		identityStatus: http.StatusOK,
		identityBody:   map[string]any{"id": "1234", "email": email, "verified_email": true},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		g.tokenCalls.Add(1)
		if !stall(r, time.Duration(g.tokenDelay.Load())) {
			return
		}
		_ = r.ParseForm()
		g.mu.Lock()
		g.lastForm = map[string]string{}
		for k := range r.PostForm {
			g.lastForm[k] = r.PostForm.Get(k)
		}
		g.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.tokenStatus)
		_ = json.NewEncoder(w).Encode(g.tokenBody)
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		g.identityCalls.Add(1)
		if !stall(r, time.Duration(g.identityDelay.Load())) {
			return
		}
		g.mu.Lock()
		g.lastAuth = r.Header.Get("Authorization")
		g.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.identityStatus)
		_ = json.NewEncoder(w).Encode(g.identityBody)
	})

	g.Server = httptest.NewServer(mux)
	t.Cleanup(g.Close)
	return g
}

// stall waits for d unless the client goes away first, reporting whether
// the handler should still answer.
func stall(r *http.Request, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	select {
	case <-time.After(d):
		return true
	case <-r.Context().Done():
		return false
	}
}

func (g *fakeGoogle) form() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastForm
}

func (g *fakeGoogle) authorization() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastAuth
}

// memAccounts is an in-memory account store with a unique email constraint.
type memAccounts struct {
	mu       sync.Mutex
	byEmail  map[string]*account.Account
	creates  int
	saves    int
	lookups  int
	findErr  error
	saveErr  error
	createFn func() error
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byEmail: map[string]*account.Account{}}
}

func (m *memAccounts) FindByEmail(_ context.Context, email string) (*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.findErr != nil {
		return nil, m.findErr
	}
	acc, ok := m.byEmail[email]
	if !ok {
		return nil, core.NotFound(fmt.Errorf("accounts find: document not found"))
	}
	cp := *acc
	return &cp, nil
}

func (m *memAccounts) Create(_ context.Context, username, email, tokenSeed string) (*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createFn != nil {
		if err := m.createFn(); err != nil {
			return nil, err
		}
	}
	if _, ok := m.byEmail[email]; ok {
		return nil, core.Conflict(fmt.Errorf("accounts insert: E11000 duplicate key error"))
	}
	acc := &account.Account{
		ID:        bson.NewObjectID(),
		Username:  username,
		Email:     email,
		TokenSeed: tokenSeed,
		CreatedAt: time.Now().UTC(),
	}
	m.byEmail[email] = acc
	cp := *acc
	return &cp, nil
}

func (m *memAccounts) Save(_ context.Context, acc *account.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *acc
	m.byEmail[acc.Email] = &cp
	return nil
}

func (m *memAccounts) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byEmail)
}

func (m *memAccounts) get(email string) *account.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byEmail[email]
}

func (m *memAccounts) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups + m.creates + m.saves
}
