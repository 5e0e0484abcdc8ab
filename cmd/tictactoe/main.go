package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/locale"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/session"
	"ctchen222/tictactoe/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(os.Stderr, conf.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry, os.Stderr)
	if err != nil {
		log.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Error("error shutting down telemetry", "error", err)
		}
	}()

	if err := run(ctx, conf, os.Stdin, os.Stdout, log); err != nil {
		log.Error("game exited", "error", err)
	}
}

// run plays games until the input is exhausted, the player quits or ctx ends.
func run(ctx context.Context, conf *config.Config, in io.Reader, out io.Writer, log *slog.Logger) error {
	mode := conf.PlayMode()
	catalog := locale.Select(conf.Locale)
	term := newTerminal(termenv.NewOutput(out), catalog, mode)

	s, err := session.New(
		session.WithBotDelay(conf.BotDelay),
		session.WithListener(term),
		session.WithLogger(log),
		session.WithPolicy(bot.NewPolicy(nil)),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer s.Close()

	if err := s.Start(ctx, mode, conf.BotDifficulty()); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			cmd, err := parseCommand(line)
			if err != nil {
				term.notice(catalog.Help)
				continue
			}

			switch cmd.kind {
			case commandQuit:
				return nil
			case commandRestart:
				s.Restart(ctx)
			case commandPlay:
				if _, err := s.Play(ctx, cmd.index); err != nil {
					switch {
					case errors.Is(err, session.ErrNotYourTurn):
						term.notice(catalog.NotYourTurn)
					case errors.Is(err, game.ErrInvalidMove):
						term.notice(catalog.InvalidMove)
					default:
						return err
					}
				}
			}
		}
	}
}
