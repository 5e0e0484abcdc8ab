package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiHandler(t *testing.T) {
	var debug, warn bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("session.id", "abc")

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Debug("bot moved")
	log.Warn("invalid move")

	assert.Contains(t, debug.String(), "bot moved")
	assert.Contains(t, debug.String(), "invalid move")
	assert.NotContains(t, warn.String(), "bot moved")
	assert.Contains(t, warn.String(), "invalid move")
	assert.Contains(t, warn.String(), "session.id=abc")
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := Init(&buf, slog.LevelInfo)
	log.Info("game started", "game.mode", "bot")

	assert.Same(t, log, slog.Default())
	assert.Contains(t, buf.String(), "game.mode=bot")
}
