package profile

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/binder"
	"github.com/dmitrymomot/remindme/pkg/mongo"
)

// Storage defines the profile persistence used by Service.
type Storage interface {
	Insert(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindByAccount(ctx context.Context, accountID bson.ObjectID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
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

// Handle returns the profile routes. They expect an authenticated request.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Post("/", handler.Wrap(s.create,
		handler.WithBinders[handler.Context, Input](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Input](s.errorHandler),
	))
	r.Get("/me", handler.Wrap(s.me,
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
	p := &Profile{
		ID:        bson.NewObjectID(),
		AccountID: owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(p)

	if err := s.storage.Insert(ctx, p); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (s *Service) me(ctx handler.Context, _ struct{}) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	p, err := s.storage.FindByAccount(ctx, owner)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (s *Service) get(ctx handler.Context, in Input) handler.Response {
	p, err := s.storage.FindByID(ctx, in.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (s *Service) update(ctx handler.Context, in Input) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if err := in.Validate(); err != nil {
		return handler.Error(err)
	}

	p, err := s.storage.FindByID(ctx, in.ID)
	if err != nil {
		return handler.Error(err)
	}
	if p.AccountID != owner {
		return handler.Error(core.NotFound(fmt.Errorf("profile %s: %w", in.ID, mongo.ErrDocumentNotFound)))
	}

	in.apply(p)
	p.UpdatedAt = s.now().UTC()
	if err := s.storage.Update(ctx, p); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
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
