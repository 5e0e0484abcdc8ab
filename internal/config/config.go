package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/player"
	"ctchen222/tictactoe/internal/validator"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Mode       string        `yaml:"mode" env:"TTT_MODE" env-default:"bot" validate:"playmode"`
	Difficulty string        `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"medium" validate:"difficulty"`
	BotDelay   time.Duration `yaml:"bot-delay" env:"TTT_BOT_DELAY" env-default:"420ms" validate:"gte=0,lte=10s"`
	Locale     string        `yaml:"locale" env:"LANG" env-default:"en"`
	Telemetry  Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	Exporter    string `yaml:"exporter" env:"OTEL_EXPORTER" env-default:"none" validate:"oneof=none stdout otlp"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317" validate:"required_if=Exporter otlp"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
}

// Load reads the YAML file at path, when it exists, then applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// PlayMode returns the validated play mode.
func (c *Config) PlayMode() player.Mode {
	mode, err := player.ParseMode(c.Mode)
	if err != nil {
		return player.ModeBot
	}
	return mode
}

// BotDifficulty returns the validated bot difficulty.
func (c *Config) BotDifficulty() bot.Difficulty {
	d, err := bot.ParseDifficulty(c.Difficulty)
	if err != nil {
		return bot.Medium
	}
	return d
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
