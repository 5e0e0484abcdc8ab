package bot

import "ctchen222/tictactoe/internal/game"

// Leaf scores, from O's point of view.
const (
	scoreOWins = 1
	scoreDraw  = 0
	scoreXWins = -1
)

// hardMove searches the whole remaining game tree with O to move and returns
// the lowest index among the best-scoring cells.
func hardMove(board game.Board) (int, bool) {
	bestMove, bestScore := -1, scoreXWins-1
	for i := range board {
		if board[i] != game.None {
			continue
		}
		board[i] = game.PlayerO
		score := minimax(&board, false)
		board[i] = game.None

		if score > bestScore {
			bestScore, bestMove = score, i
		}
	}
	return bestMove, bestMove != -1
}

// minimax scores b assuming both sides play optimally. maximizing is true when
// O is to move. Cells are placed and cleared in place while backtracking.
func minimax(b *game.Board, maximizing bool) int {
	if game.HasWon(*b, game.PlayerO) {
		return scoreOWins
	}
	if game.HasWon(*b, game.PlayerX) {
		return scoreXWins
	}
	if game.IsBoardFull(*b) {
		return scoreDraw
	}

	mark, best := game.PlayerX, scoreOWins+1
	if maximizing {
		mark, best = game.PlayerO, scoreXWins-1
	}

	for i := range b {
		if b[i] != game.None {
			continue
		}
		b[i] = mark
		score := minimax(b, !maximizing)
		b[i] = game.None

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}
