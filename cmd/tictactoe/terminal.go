package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/locale"
	"ctchen222/tictactoe/internal/player"
)

// bell is the terminal's audio cue for a finished game.
const bell = "\a"

// terminal renders session events as text.
type terminal struct {
	mu      sync.Mutex
	out     *termenv.Output
	catalog *locale.Catalog
	seats   player.Seats
}

func newTerminal(out *termenv.Output, catalog *locale.Catalog, mode player.Mode) *terminal {
	return &terminal{
		out:     out,
		catalog: catalog,
		seats:   player.SeatsFor(mode),
	}
}

// OnEvent implements events.Listener.
func (t *terminal) OnEvent(_ context.Context, e events.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Type {
	case events.TypeReset:
		fmt.Fprintln(t.out, t.renderBoard(e.Board, -1))
		fmt.Fprintln(t.out, t.catalog.StatusText(e.Status, t.seats, e.Next))
		fmt.Fprintln(t.out, t.catalog.Help)

	case events.TypeMove:
		fmt.Fprintln(t.out, t.renderBoard(e.Board, e.Index))
		if e.Status.IsTerminal() {
			return
		}
		fmt.Fprintln(t.out, t.catalog.StatusText(e.Status, t.seats, e.Next))
		if t.seats.IsBot(e.Next) {
			fmt.Fprintln(t.out, t.catalog.BotThinking)
		}

	case events.TypeGameOver:
		status := t.out.String(t.catalog.StatusText(e.Status, t.seats, e.Mark)).Bold()
		fmt.Fprint(t.out, bell)
		fmt.Fprintln(t.out, status.String())
	}
}

func (t *terminal) notice(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, t.out.String(msg).Faint().String())
}

// renderBoard draws the grid; empty cells show their index and the last
// move is underlined.
func (t *terminal) renderBoard(b game.Board, last int) string {
	var sb strings.Builder
	for r, row := range b.Rows() {
		cells := make([]string, len(row))
		for c, mark := range row {
			cells[c] = t.renderCell(mark, r*3+c, r*3+c == last)
		}
		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if r < 2 {
			sb.WriteString("---+---+---\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (t *terminal) renderCell(mark game.PlayerMark, index int, last bool) string {
	if mark == game.None {
		return t.out.String(strconv.Itoa(index)).Faint().String()
	}

	style := t.out.String(string(mark)).Bold()
	switch mark {
	case game.PlayerX:
		style = style.Foreground(t.out.Color("9"))
	case game.PlayerO:
		style = style.Foreground(t.out.Color("12"))
	}
	if last {
		style = style.Underline()
	}
	return style.String()
}
