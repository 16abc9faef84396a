package instrument

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Enabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	// Arrange
	buf := &bytes.Buffer{}
	cfg := &Config{
		Enabled:          true,
		ServiceName:      "passcode-test",
		ServiceVersion:   "0.0.0",
		Environment:      "test",
		OTLPEndpoint:     "127.0.0.1:1",
		TraceSampleRatio: 1,
		MetricsInterval:  time.Hour,
		LogLevel:         "info",
		LogWriter:        buf,
	}

	// Act
	ins, err := New(context.Background(), cfg)

	// Assert
	require.NoError(t, err)
	require.IsType(t, &otelInstrumentation{}, ins)

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	counter, err := ins.Meter("test").Int64Counter("test.count")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	slog.Info("exporting", "otp", "123456")
	assert.Contains(t, buf.String(), `"service":"passcode-test"`)
	assert.Contains(t, buf.String(), `"otp":"***"`)
	assert.NotContains(t, buf.String(), "123456")

	// the collector is unreachable, so only a bounded return is asserted
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = ins.Shutdown(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Shutdown did not honor its context")
	}
}

func TestNew_NilConfig(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ins, err := New(context.Background(), nil)

	require.NoError(t, err)
	assert.IsType(t, &noopInstrumentation{}, ins)
}
