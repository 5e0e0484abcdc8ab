package player

import (
	"errors"
	"fmt"
	"strings"

	"ctchen222/tictactoe/internal/game"
)

// Mode is how the two seats are filled.
type Mode string

const (
	// ModeBot pits a human playing X against the bot playing O.
	ModeBot Mode = "bot"
	// ModeHuman seats a human on both sides.
	ModeHuman Mode = "human"
)

var ErrUnknownMode = errors.New("unknown play mode")

// ParseMode validates a play mode. "pvp" is accepted as an alias of human.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeBot, ModeHuman:
		return m, nil
	case "pvp":
		return ModeHuman, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Kind tells who controls a seat.
type Kind string

const (
	Human Kind = "human"
	Bot   Kind = "bot"
)

// Seats maps each mark to its controller.
type Seats struct {
	X Kind
	O Kind
}

// SeatsFor returns the seating for mode. The bot, when present, always plays O.
func SeatsFor(mode Mode) Seats {
	if mode == ModeBot {
		return Seats{X: Human, O: Bot}
	}
	return Seats{X: Human, O: Human}
}

// Of returns the controller of mark.
func (s Seats) Of(mark game.PlayerMark) Kind {
	if mark == game.PlayerO {
		return s.O
	}
	return s.X
}

// IsBot reports whether mark is played by the bot.
func (s Seats) IsBot(mark game.PlayerMark) bool {
	return s.Of(mark) == Bot
}

// AcceptsInput reports whether a human may move for mark.
func (s Seats) AcceptsInput(mark game.PlayerMark) bool {
	return s.Of(mark) == Human
}
