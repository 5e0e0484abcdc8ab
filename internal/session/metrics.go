package session

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("session")

type instruments struct {
	moves         metric.Int64Counter
	gamesFinished metric.Int64Counter
	botDecision   metric.Float64Histogram
}

func newInstruments() (*instruments, error) {
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to the board"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}

	gamesFinished, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a terminal state"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}

	botDecision, err := meter.Float64Histogram("tictactoe.bot.decision.duration",
		metric.WithDescription("Time the bot spent choosing a move"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot decision histogram: %w", err)
	}

	return &instruments{
		moves:         moves,
		gamesFinished: gamesFinished,
		botDecision:   botDecision,
	}, nil
}
