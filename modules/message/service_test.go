package message_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/account"
	"github.com/dmitrymomot/remindme/modules/message"
	"github.com/dmitrymomot/remindme/modules/reminder"
	"github.com/dmitrymomot/remindme/modules/session"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Insert(ctx context.Context, msg *message.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockStorage) Get(ctx context.Context, id string, accountID bson.ObjectID) (*message.Message, error) {
	args := m.Called(ctx, id, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*message.Message), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context, accountID, reminderID bson.ObjectID) ([]message.Message, error) {
	args := m.Called(ctx, accountID, reminderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]message.Message), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, id string, accountID bson.ObjectID) error {
	return m.Called(ctx, id, accountID).Error(0)
}

type MockReminders struct {
	mock.Mock
}

func (m *MockReminders) Get(ctx context.Context, id string, accountID bson.ObjectID) (*reminder.Reminder, error) {
	args := m.Called(ctx, id, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reminder.Reminder), args.Error(1)
}

var owner = &account.Account{ID: bson.NewObjectID(), Username: "alice"}

func serve(storage *MockStorage, reminders *MockReminders, req *http.Request) *httptest.ResponseRecorder {
	svc := message.NewService(storage, reminders, handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	req = req.WithContext(session.WithAccount(req.Context(), owner))
	rec := httptest.NewRecorder()
	svc.Handle().ServeHTTP(rec, req)
	return rec
}

func createRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreate(t *testing.T) {
	t.Parallel()

	remID := bson.NewObjectID()
	body := `{"reminderId":"` + remID.Hex() + `","sentTo":"+15035550100","body":"Bring x-rays"}`

	t.Run("own reminder", func(t *testing.T) {
		t.Parallel()
		storage, reminders := &MockStorage{}, &MockReminders{}
		reminders.On("Get", mock.Anything, remID.Hex(), owner.ID).
			Return(&reminder.Reminder{ID: remID, AccountID: owner.ID}, nil).Once()
		storage.On("Insert", mock.Anything, mock.MatchedBy(func(m *message.Message) bool {
			return m.ReminderID == remID && m.AccountID == owner.ID && m.SentTo == "+15035550100"
		})).Return(nil).Once()

		rec := serve(storage, reminders, createRequest(body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), remID.Hex())
		storage.AssertExpectations(t)
	})

	t.Run("foreign reminder", func(t *testing.T) {
		t.Parallel()
		storage, reminders := &MockStorage{}, &MockReminders{}
		reminders.On("Get", mock.Anything, remID.Hex(), owner.ID).
			Return(nil, core.NotFound(errors.New("reminders find: document not found"))).Once()

		rec := serve(storage, reminders, createRequest(body))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		storage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		storage, reminders := &MockStorage{}, &MockReminders{}

		rec := serve(storage, reminders, createRequest(`{"reminderId":"","sentTo":"x","body":""}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		reminders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	remID := bson.NewObjectID()

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		storage := &MockStorage{}
		storage.On("List", mock.Anything, owner.ID, bson.NilObjectID).Return([]message.Message{}, nil).Once()

		rec := serve(storage, &MockReminders{}, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("by reminder", func(t *testing.T) {
		t.Parallel()
		storage := &MockStorage{}
		storage.On("List", mock.Anything, owner.ID, remID).
			Return([]message.Message{{ID: bson.NewObjectID(), ReminderID: remID}}, nil).Once()

		rec := serve(storage, &MockReminders{}, httptest.NewRequest(http.MethodGet, "/?reminderId="+remID.Hex(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		storage.AssertExpectations(t)
	})

	t.Run("malformed reminder id", func(t *testing.T) {
		t.Parallel()
		storage := &MockStorage{}

		rec := serve(storage, &MockReminders{}, httptest.NewRequest(http.MethodGet, "/?reminderId=zzz", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		storage.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetAndDelete(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	storage := &MockStorage{}
	storage.On("Get", mock.Anything, id.Hex(), owner.ID).
		Return(&message.Message{ID: id, AccountID: owner.ID, Body: "hi"}, nil).Once()
	storage.On("Delete", mock.Anything, id.Hex(), owner.ID).Return(nil).Once()

	rec := serve(storage, &MockReminders{}, httptest.NewRequest(http.MethodGet, "/"+id.Hex(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"body":"hi"`)

	rec = serve(storage, &MockReminders{}, httptest.NewRequest(http.MethodDelete, "/"+id.Hex(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	storage.AssertExpectations(t)
}
