package account_test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/remindme/modules/account"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockStorage) Insert(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockStorage) Save(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Issue(tokenSeed string) (string, error) {
	args := m.Called(tokenSeed)
	return args.String(0), args.Error(1)
}

func (m *MockSessions) SetCookie(w http.ResponseWriter, token string) error {
	args := m.Called(w, token)
	return args.Error(0)
}
