package image

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/binder"
	"github.com/dmitrymomot/remindme/pkg/logger"
	"github.com/dmitrymomot/remindme/pkg/storage"
)

// MaxUploadBytes is the largest accepted image.
const MaxUploadBytes = 10 << 20

// multipartOverhead leaves room for form boundaries and headers.
const multipartOverhead = 1 << 20

// Storage defines the image record persistence used by Service.
type Storage interface {
	Insert(ctx context.Context, img *Image) error
	Get(ctx context.Context, id string, accountID bson.ObjectID) (*Image, error)
	List(ctx context.Context, accountID bson.ObjectID) ([]Image, error)
	Delete(ctx context.Context, id, accountID bson.ObjectID) error
}

// Objects stores the image bytes.
type Objects interface {
	Save(ctx context.Context, fh *multipart.FileHeader, key string) (*storage.Object, error)
	Delete(ctx context.Context, key string) error
}

type Service struct {
	storage      Storage
	objects      Objects
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

func NewService(records Storage, objects Objects, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		storage:      records,
		objects:      objects,
		log:          log,
		errorHandler: errorHandler,
		now:          time.Now,
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.With(middleware.RequestSize(MaxUploadBytes+multipartOverhead)).Post("/", handler.Wrap(s.upload,
		handler.WithBinders[handler.Context, UploadRequest](binder.File()),
		handler.WithErrorHandler[handler.Context, UploadRequest](s.errorHandler),
	))
	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
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

// ObjectKey returns the storage key for a new upload of owner.
func ObjectKey(owner bson.ObjectID, fh *multipart.FileHeader) string {
	return fmt.Sprintf("images/%s/%s%s", owner.Hex(), uuid.NewString(), storage.Extension(fh))
}

func (s *Service) upload(ctx handler.Context, req UploadRequest) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if req.Image == nil {
		return handler.Error(ErrMissingImage)
	}

	mimeType, err := storage.ValidateImage(req.Image, MaxUploadBytes)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrMIMENotAllowed) {
			return handler.Error(core.Validation(err))
		}
		return handler.Error(err)
	}

	obj, err := s.objects.Save(ctx, req.Image, ObjectKey(owner, req.Image))
	if err != nil {
		return handler.Error(err)
	}

	img := &Image{
		ID:        bson.NewObjectID(),
		AccountID: owner,
		Key:       obj.Key,
		URL:       obj.URL,
		FileName:  obj.FileName,
		Size:      obj.Size,
		MIMEType:  mimeType,
		CreatedAt: s.now().UTC(),
	}
	if err := s.storage.Insert(ctx, img); err != nil {
		if derr := s.objects.Delete(ctx, obj.Key); derr != nil {
			s.log.ErrorContext(ctx, "failed to remove orphaned image object",
				logger.Component("image"),
				logger.Error(derr),
				slog.String("key", obj.Key),
			)
		}
		return handler.Error(err)
	}

	return handler.JSON(img)
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

func (s *Service) get(ctx handler.Context, p IDParam) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	img, err := s.storage.Get(ctx, p.ID, owner)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(img)
}

// delete removes the object first so a failed record delete can be retried.
func (s *Service) delete(ctx handler.Context, p IDParam) handler.Response {
	owner, err := session.AccountID(ctx)
	if err != nil {
		return handler.Error(err)
	}
	img, err := s.storage.Get(ctx, p.ID, owner)
	if err != nil {
		return handler.Error(err)
	}

	if err := s.objects.Delete(ctx, img.Key); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		return handler.Error(err)
	}
	if err := s.storage.Delete(ctx, img.ID, owner); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}
