package image_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/account"
	"github.com/dmitrymomot/remindme/modules/image"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Insert(ctx context.Context, img *image.Image) error {
	return m.Called(ctx, img).Error(0)
}

func (m *MockStorage) Get(ctx context.Context, id string, accountID bson.ObjectID) (*image.Image, error) {
	args := m.Called(ctx, id, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*image.Image), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context, accountID bson.ObjectID) ([]image.Image, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]image.Image), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, id, accountID bson.ObjectID) error {
	return m.Called(ctx, id, accountID).Error(0)
}

type MockObjects struct {
	mock.Mock
}

func (m *MockObjects) Save(ctx context.Context, fh *multipart.FileHeader, key string) (*storage.Object, error) {
	args := m.Called(ctx, fh, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

func (m *MockObjects) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var (
	owner   = &account.Account{ID: bson.NewObjectID(), Username: "alice"}
	pngData = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
)

func serve(records *MockStorage, objects *MockObjects, req *http.Request) *httptest.ResponseRecorder {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := image.NewService(records, objects, log, handler.NewErrorHandler(log))
	req = req.WithContext(session.WithAccount(req.Context(), owner))
	rec := httptest.NewRecorder()
	svc.Handle().ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	t.Parallel()

	keyPrefix := "images/" + owner.ID.Hex() + "/"

	t.Run("stores object and record", func(t *testing.T) {
		t.Parallel()
		records, objects := &MockStorage{}, &MockObjects{}
		objects.On("Save", mock.Anything, mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, keyPrefix) && strings.HasSuffix(key, ".png")
		})).Return(&storage.Object{
			Key:      keyPrefix + "abc.png",
			URL:      "https://cdn.example.com/" + keyPrefix + "abc.png",
			FileName: "cat.png",
			Size:     int64(len(pngData)),
			MIMEType: "image/png",
		}, nil).Once()
		records.On("Insert", mock.Anything, mock.MatchedBy(func(img *image.Image) bool {
			return img.AccountID == owner.ID && img.Key == keyPrefix+"abc.png" && img.MIMEType == "image/png"
		})).Return(nil).Once()

		rec := serve(records, objects, uploadRequest(t, "image", "cat.PNG", pngData))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"url":"https://cdn.example.com/`)
		records.AssertExpectations(t)
		objects.AssertExpectations(t)
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()
		records, objects := &MockStorage{}, &MockObjects{}

		rec := serve(records, objects, uploadRequest(t, "image", "notes.txt", []byte("plain text body")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		objects.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing part", func(t *testing.T) {
		t.Parallel()
		records, objects := &MockStorage{}, &MockObjects{}

		rec := serve(records, objects, uploadRequest(t, "avatar", "cat.png", pngData))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("record failure removes object", func(t *testing.T) {
		t.Parallel()
		records, objects := &MockStorage{}, &MockObjects{}
		objects.On("Save", mock.Anything, mock.Anything, mock.Anything).
			Return(&storage.Object{Key: keyPrefix + "x.png"}, nil).Once()
		records.On("Insert", mock.Anything, mock.Anything).Return(errors.New("write concern error")).Once()
		objects.On("Delete", mock.Anything, keyPrefix+"x.png").Return(nil).Once()

		rec := serve(records, objects, uploadRequest(t, "image", "cat.png", pngData))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		objects.AssertExpectations(t)
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	stored := &image.Image{ID: id, AccountID: owner.ID, Key: "images/" + owner.ID.Hex() + "/a.png"}

	t.Run("removes object then record", func(t *testing.T) {
		t.Parallel()
		records, objects := &MockStorage{}, &MockObjects{}
		records.On("Get", mock.Anything, id.Hex(), owner.ID).Return(stored, nil).Once()
		objects.On("Delete", mock.Anything, stored.Key).Return(storage.ErrFileNotFound).Once()
		records.On("Delete", mock.Anything, id, owner.ID).Return(nil).Once()

		rec := serve(records, objects, httptest.NewRequest(http.MethodDelete, "/"+id.Hex(), nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		records.AssertExpectations(t)
	})

	t.Run("foreign image", func(t *testing.T) {
		t.Parallel()
		records, objects := &MockStorage{}, &MockObjects{}
		records.On("Get", mock.Anything, id.Hex(), owner.ID).
			Return(nil, core.NotFound(errors.New("images find: document not found"))).Once()

		rec := serve(records, objects, httptest.NewRequest(http.MethodDelete, "/"+id.Hex(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		objects.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	key := image.ObjectKey(owner.ID, &multipart.FileHeader{Filename: "../../Photo.JPG"})
	assert.True(t, strings.HasPrefix(key, "images/"+owner.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotContains(t, key, "..")
}
