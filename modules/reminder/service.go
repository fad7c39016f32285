package reminder

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/binder"
)

// Storage defines the reminder persistence used by Service.
type Storage interface {
	Insert(ctx context.Context, r *Reminder) error
	Get(ctx context.Context, id string, accountID bson.ObjectID) (*Reminder, error)
	List(ctx context.Context, accountID bson.ObjectID) ([]Reminder, error)
	Update(ctx context.Context, r *Reminder) error
	Delete(ctx context.Context, id string, accountID bson.ObjectID) error
}

type Service struct {
	storage      Storage
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

func NewService(storage Storage, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{storage: storage, errorHandler: errorHandler, now: time.Now}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Post("/", handler.Wrap(s.create,
		handler.WithBinders[handler.Context, Input](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Input](s.errorHandler),
	))
	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(s.get,
		handler.WithBinders[handler.Context, Input](path),
		handler.WithErrorHandler[handler.Context, Input](s.errorHandler),
	))
	r.Put("/{id}", handler.Wrap(s.update,
		handler.WithBinders[handler.Context, Input](path, binder.JSON()),
		handler.WithErrorHandler[handler.Context, Input](s.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(s.delete,
		handler.WithBinders[handler.Context, Input](path),
		handler.WithErrorHandler[handler.Context, Input](s.errorHandler),
	))

	return r
}

func (s *Service) create(ctx handler.Context, in Input) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if err := in.Validate(); err != nil {
		return handler.Error(err)
	}

	now := s.now().UTC()
	rem := &Reminder{
		ID:        bson.NewObjectID(),
		AccountID: owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(rem)

	if err := s.storage.Insert(ctx, rem); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(rem)
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	items, err := s.storage.List(ctx, owner)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(items)
}

func (s *Service) get(ctx handler.Context, in Input) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	rem, err := s.storage.Get(ctx, in.ID, owner)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(rem)
}

func (s *Service) update(ctx handler.Context, in Input) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if err := in.Validate(); err != nil {
		return handler.Error(err)
	}

	rem, err := s.storage.Get(ctx, in.ID, owner)
	if err != nil {
		return handler.Error(err)
	}
	in.apply(rem)
	rem.UpdatedAt = s.now().UTC()

	if err := s.storage.Update(ctx, rem); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(rem)
}

func (s *Service) delete(ctx handler.Context, in Input) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.storage.Delete(ctx, in.ID, owner); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}
