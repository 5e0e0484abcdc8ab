package events

import (
	"context"

	"ctchen222/tictactoe/internal/game"
)

// Event types emitted by a session.
const (
	TypeMove     = "move"
	TypeGameOver = "game_over"
	TypeReset    = "reset"
)

// Event describes a change to a session's game.
type Event struct {
	Type   string          `json:"event"`
	Index  int             `json:"index"`
	Mark   game.PlayerMark `json:"mark,omitempty"`
	Status game.Status     `json:"status"`
	// Next is the mark to move after the event.
	Next game.PlayerMark `json:"next,omitempty"`
	// Board is the board after the event.
	Board game.Board `json:"board"`
	// ByBot is set when the bot made the move.
	ByBot bool `json:"by_bot,omitempty"`
}

// Listener receives session events. Renderers and sound players implement it.
// OnEvent runs while the session is locked and must not call back into it.
type Listener interface {
	OnEvent(ctx context.Context, event Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ctx context.Context, event Event)

// OnEvent calls f.
func (f ListenerFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}

// Discard ignores every event.
var Discard Listener = ListenerFunc(func(context.Context, Event) {})
