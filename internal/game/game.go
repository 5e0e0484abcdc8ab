package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// BoardSize is the number of cells on the board.
	BoardSize = 9
)

var (
	// ErrInvalidMove is the root of every rejected move.
	ErrInvalidMove = errors.New("invalid move")

	ErrInvalidCell  = fmt.Errorf("%w: cell index out of range", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game already finished", ErrInvalidMove)
)

// Game holds the board, the mark to move and the current status.
// A Game is owned by a single session and is not safe for concurrent use.
type Game struct {
	board       Board
	currentTurn PlayerMark
	status      Status
}

// NewGame returns a game ready for X to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset clears the board, gives the turn to X and resumes play.
func (g *Game) Reset() {
	g.board = Board{}
	g.currentTurn = PlayerX
	g.status = Status{State: InProgress}
}

// ApplyMove places the current player's mark on the cell at index.
// On failure the game is left untouched.
func (g *Game) ApplyMove(index int) (Status, error) {
	if g.status.IsTerminal() {
		return g.status, ErrGameFinished
	}
	if index < 0 || index >= BoardSize {
		return g.status, fmt.Errorf("%w: %d", ErrInvalidCell, index)
	}
	if g.board[index] != None {
		return g.status, fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}

	mover := g.currentTurn
	g.board[index] = mover

	switch {
	case HasWon(g.board, mover):
		g.status = Status{State: Won, Winner: mover}
	case IsBoardFull(g.board):
		g.status = Status{State: Draw}
	default:
		g.currentTurn = Opponent(mover)
	}

	return g.status, nil
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// CurrentPlayer returns the mark to move. After the game ends it is the mark
// that made the final move.
func (g *Game) CurrentPlayer() PlayerMark {
	return g.currentTurn
}

// Opponent returns the other player's mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
