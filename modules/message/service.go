package message

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/reminder"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/binder"
	"github.com/dmitrymomot/remindme/pkg/mongo"
)

// Storage defines the message persistence used by Service.
type Storage interface {
	Insert(ctx context.Context, m *Message) error
	Get(ctx context.Context, id string, accountID bson.ObjectID) (*Message, error)
	List(ctx context.Context, accountID, reminderID bson.ObjectID) ([]Message, error)
	Delete(ctx context.Context, id string, accountID bson.ObjectID) error
}

// Reminders resolves the reminder a message refers to.
type Reminders interface {
	Get(ctx context.Context, id string, accountID bson.ObjectID) (*reminder.Reminder, error)
}

type Service struct {
	storage      Storage
	reminders    Reminders
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

func NewService(storage Storage, reminders Reminders, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{storage: storage, reminders: reminders, errorHandler: errorHandler, now: time.Now}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Post("/", handler.Wrap(s.create,
		handler.WithBinders[handler.Context, Input](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Input](s.errorHandler),
	))
	r.Get("/", handler.Wrap(s.list,
		handler.WithBinders[handler.Context, ListQuery](binder.Query()),
		handler.WithErrorHandler[handler.Context, ListQuery](s.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(s.get,
		handler.WithBinders[handler.Context, IDParam](path),
		handler.WithErrorHandler[handler.Context, IDParam](s.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(s.delete,
		handler.WithBinders[handler.Context, IDParam](path),
		handler.WithErrorHandler[handler.Context, IDParam](s.errorHandler),
	))

	return r
}

// create stores a message for one of the caller's reminders. A reminder
// owned by someone else reads as missing.
func (s *Service) create(ctx handler.Context, in Input) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if err := in.Validate(); err != nil {
		return handler.Error(err)
	}

	rem, err := s.reminders.Get(ctx, in.ReminderID, owner)
	if err != nil {
		return handler.Error(err)
	}

	msg := &Message{
		ID:         bson.NewObjectID(),
		AccountID:  owner,
		ReminderID: rem.ID,
		SentTo:     in.SentTo,
		Body:       in.Body,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.storage.Insert(ctx, msg); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(msg)
}

func (s *Service) list(ctx handler.Context, q ListQuery) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	var reminderID bson.ObjectID
	if q.ReminderID != "" {
		if reminderID, err = mongo.ParseID(q.ReminderID); err != nil {
			return handler.Error(err)
		}
	}

	items, err := s.storage.List(ctx, owner, reminderID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(items)
}

func (s *Service) get(ctx handler.Context, p IDParam) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	msg, err := s.storage.Get(ctx, p.ID, owner)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(msg)
}

func (s *Service) delete(ctx handler.Context, p IDParam) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.storage.Delete(ctx, p.ID, owner); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}
