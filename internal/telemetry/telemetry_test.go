package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"ctchen222/tictactoe/internal/config"
)

func TestInitOtel_None(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Exporter: ExporterNone}, nil)
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOtel_UnknownExporter(t *testing.T) {
	_, err := InitOtel(context.Background(), config.Telemetry{Exporter: "zipkin"}, nil)

	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestInitOtel_Stdout(t *testing.T) {
	prevTracer, prevMeter := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTracer)
		otel.SetMeterProvider(prevMeter)
	})

	var buf bytes.Buffer
	shutdown, err := InitOtel(context.Background(), config.Telemetry{
		Exporter:    ExporterStdout,
		ServiceName: "tic-tac-toe-test",
	}, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry_test").Start(context.Background(), "session.Play")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "session.Play")
	assert.Contains(t, buf.String(), "tic-tac-toe-test")
}
