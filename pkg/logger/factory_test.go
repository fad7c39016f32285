package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remindme/pkg/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger by default", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")

		assert.Empty(t, buf.String())
	})

	t.Run("context extractor injects attributes", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				if !ok {
					return slog.Attr{}, false
				}
				return logger.RequestID(v), true
			}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.With(slog.String("k", "v")).InfoContext(ctx, "hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "v", entry["k"])
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("production uses JSON with env attributes", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log, err := logger.NewFromConfig(logger.Config{Env: "prod", Service: "api"}, logger.WithOutput(buf))
		require.NoError(t, err)

		log.Debug("dropped")
		log.Info("kept")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "api", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("development uses text at debug level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log, err := logger.NewFromConfig(logger.Config{Env: "development"}, logger.WithOutput(buf))
		require.NoError(t, err)

		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("explicit level overrides environment", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log, err := logger.NewFromConfig(logger.Config{Env: "development", Level: "error"}, logger.WithOutput(buf))
		require.NoError(t, err)

		log.Warn("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := logger.NewFromConfig(logger.Config{Level: "loud"})
		assert.Error(t, err)
	})
}
