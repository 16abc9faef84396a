package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		m := map[string]any{}
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}

	return out
}

func TestNewLogger(t *testing.T) {
	t.Run("MasksCodesAlways", func(t *testing.T) {
		// Arrange
		buf := &bytes.Buffer{}
		logger := newLogger(&Config{ServiceName: "passcode", LogWriter: buf}, nil)

		// Act
		logger.Info("generated", "otp", "123456", "length", 6)

		// Assert
		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "***", lines[0]["otp"])
		assert.InDelta(t, 6, lines[0]["length"], 0)
		assert.Equal(t, "passcode", lines[0]["service"])
		assert.Equal(t, "INFO", lines[0]["severity"])
		assert.Contains(t, lines[0], "ts")
	})

	t.Run("MasksConfiguredFieldsInGroupsAndJSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := newLogger(&Config{MaskFields: []string{" Secret "}, LogWriter: buf}, nil)

		logger.Info("nested",
			slog.Group("result", slog.String("otp", "abc"), slog.String("batch_id", "b1")),
			slog.String("payload", `{"secret":"s","keep":"k"}`),
		)

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		group, ok := lines[0]["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "***", group["otp"])
		assert.Equal(t, "b1", group["batch_id"])
		assert.JSONEq(t, `{"secret":"***","keep":"k"}`, lines[0]["payload"].(string))
	})

	t.Run("AddsCorrelationID", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := newLogger(&Config{LogWriter: buf}, nil).With("component", "test")
		ctx := SetCorrelationID(context.Background(), "cid-1")

		logger.InfoContext(ctx, "with context")
		logger.Info("without context")

		lines := decodeLines(t, buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "cid-1", lines[0]["_cID"])
		assert.Equal(t, "test", lines[0]["component"])
		assert.NotContains(t, lines[1], "_cID")
		assert.NotContains(t, lines[1], "service")
	})

	t.Run("HonoursLevel", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := newLogger(&Config{LogLevel: "warn", LogWriter: buf}, nil)

		logger.Info("dropped")
		logger.Warn("kept")

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "kept", lines[0]["msg"])
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel(" ERROR "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func TestGetCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "x", GetCorrelationID(SetCorrelationID(context.Background(), "x")))
}

func TestNew_Disabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	ins, err := New(context.Background(), &Config{LogWriter: buf})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()
	slog.Info("installed", "otp", "999")

	assert.Contains(t, buf.String(), `"otp":"***"`)
	assert.NoError(t, ins.Shutdown(context.Background()))
}
