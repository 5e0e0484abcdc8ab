package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/player"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LANG", "")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, player.ModeBot, conf.PlayMode())
	assert.Equal(t, bot.Medium, conf.BotDifficulty())
	assert.Equal(t, 420*time.Millisecond, conf.BotDelay)
	assert.Equal(t, "none", conf.Telemetry.Exporter)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "log-level: debug\nmode: pvp\ndifficulty: hard\nbot-delay: 1s\ntelemetry:\n  exporter: stdout\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, player.ModeHuman, conf.PlayMode())
	assert.Equal(t, bot.Hard, conf.BotDifficulty())
	assert.Equal(t, time.Second, conf.BotDelay)
	assert.Equal(t, "stdout", conf.Telemetry.Exporter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TTT_DIFFICULTY", "easy")
	t.Setenv("TTT_BOT_DELAY", "50ms")

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, bot.Easy, conf.BotDifficulty())
	assert.Equal(t, 50*time.Millisecond, conf.BotDelay)
}

func TestLoad_UnknownDifficulty(t *testing.T) {
	t.Setenv("TTT_DIFFICULTY", "impossible")

	_, err := Load("")

	assert.ErrorContains(t, err, "invalid config")
}
