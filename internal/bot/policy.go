package bot

import (
	"math/rand/v2"

	"ctchen222/tictactoe/internal/game"
)

//go:generate mockgen -destination=mock_rand_test.go -package=bot . RandSource

// RandSource supplies the randomness behind Easy moves and Medium fallbacks.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Policy picks moves for the bot, which always plays O.
type Policy struct {
	rng RandSource
}

// NewPolicy returns a policy drawing from rng, or from the global source when
// rng is nil.
func NewPolicy(rng RandSource) *Policy {
	if rng == nil {
		rng = globalRand{}
	}
	return &Policy{rng: rng}
}

// Mark is the mark the bot plays.
func (p *Policy) Mark() game.PlayerMark {
	return game.PlayerO
}

// SelectMove determines the bot's next move on board for the given difficulty.
// ok is false only when the board has no empty cell. Unrecognized difficulties
// play as Medium.
func (p *Policy) SelectMove(board game.Board, difficulty Difficulty) (index int, ok bool) {
	switch difficulty {
	case Easy:
		return p.easyMove(board)
	case Hard:
		return hardMove(board)
	default:
		return p.mediumMove(board)
	}
}

// easyMove makes a completely random move.
func (p *Policy) easyMove(board game.Board) (int, bool) {
	availableMoves := game.EmptyCells(board)
	if len(availableMoves) == 0 {
		return -1, false
	}
	return availableMoves[p.rng.IntN(len(availableMoves))], true
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func (p *Policy) mediumMove(board game.Board) (int, bool) {
	// 1. Win: Check if the bot can win in the next move
	if index, canWin := findWinningMove(board, game.PlayerO); canWin {
		return index, true
	}

	// 2. Block: Check if the opponent is about to win and block them
	if index, canBlock := findWinningMove(board, game.PlayerX); canBlock {
		return index, true
	}

	// 3. Random: Otherwise, make a random move
	return p.easyMove(board)
}

// findWinningMove returns the empty cell of the first win line holding two of
// mark and one empty cell.
func findWinningMove(board game.Board, mark game.PlayerMark) (index int, found bool) {
	for _, line := range game.WinLines {
		count, empty := 0, -1
		for _, i := range line {
			switch board[i] {
			case mark:
				count++
			case game.None:
				empty = i
			}
		}
		if count == 2 && empty != -1 {
			return empty, true
		}
	}
	return -1, false
}
