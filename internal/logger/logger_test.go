package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "vault-server", zerolog.DebugLevel)

	l.Info().Msg("started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "vault-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNewLoggerWithLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.DebugLevel},
		{level: "loud", want: zerolog.DebugLevel},
	}

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			l := NewLoggerWithLevel("test", tt.level)
			require.NotNil(t, l)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test", zerolog.WarnLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("from child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("from parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		l := newLogger(&buf, "ctx", zerolog.DebugLevel)
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("hello")
		assert.Equal(t, "ctx", decodeEntry(t, &buf)["role"])
	})

	t.Run("empty context never yields nil", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "req", zerolog.DebugLevel)

	r := httptest.NewRequest("GET", "/api/ping", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("hello")
	assert.Equal(t, "req", decodeEntry(t, &buf)["role"])
}
