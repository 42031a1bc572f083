package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogLogger_WritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	l.Info(context.Background(), "hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestSlogLogger_WithAddsPermanentFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	child := l.With("module", "authstore")
	child.Warn(context.Background(), "something odd")

	assert.Contains(t, buf.String(), `"module":"authstore"`)
}

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core))

	l.Error(context.Background(), "boom", "cause", "disk")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, "disk", entry.ContextMap()["cause"])
}

func TestNopLogger_DoesNothing(t *testing.T) {
	l := NewNopLogger()
	// must not panic
	l.Debug(context.Background(), "x")
	l.With("a", 1).Info(context.Background(), "y")
}
