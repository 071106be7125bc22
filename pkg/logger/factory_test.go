package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/environment"
	"github.com/wikiai/kbaccess/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello", logger.Role("admin"))

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "admin", entry["role"])
	})

	t.Run("debug suppressed at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("level name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		log.Debug("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("context extractors", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.ContextValue("tenant", key{}), nil),
		)
		ctx := context.WithValue(context.Background(), key{}, "acme")
		log.InfoContext(ctx, "scoped")

		assert.Equal(t, "acme", decode(t, buf)["tenant"])
	})

	t.Run("environment preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Production, "authzd"),
		)
		log.Info("up")

		entry := decode(t, buf)
		assert.Equal(t, "authzd", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("from config", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Production, "authzd"),
			logger.FromConfig(logger.Config{Level: "warn"}),
		)
		log.Info("dropped")
		log.Warn("kept", slog.Int("n", 1))

		entry := decode(t, buf)
		assert.Equal(t, "kept", entry["msg"])
	})
}

func TestNoop(t *testing.T) {
	log := logger.Noop()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { log.With("a", 1).WithGroup("g").Error("x") })

	assert.NotNil(t, logger.OrNoop(nil))
	custom := slog.Default()
	assert.Same(t, custom, logger.OrNoop(custom))
}
