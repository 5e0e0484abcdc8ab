package game

import "fmt"

// Board is the 3x3 grid flattened row by row: index = row*3 + col.
type Board [BoardSize]PlayerMark

// WinLines lists every winning triple: rows, then columns, then diagonals.
// Bots rely on this order for tie-breaking.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ParseBoard builds a board from up to nine cell strings ("X", "O" or "").
func ParseBoard(cells ...string) (Board, error) {
	var b Board
	if len(cells) > BoardSize {
		return b, fmt.Errorf("board has %d cells, want at most %d", len(cells), BoardSize)
	}
	for i, c := range cells {
		switch mark := PlayerMark(c); mark {
		case None, PlayerX, PlayerO:
			b[i] = mark
		default:
			return b, fmt.Errorf("cell %d: unknown mark %q", i, c)
		}
	}
	return b, nil
}

// Rows converts the board into three rows of three cells for rendering.
func (b Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, 3)
	for r := range rows {
		rows[r] = append([]PlayerMark(nil), b[r*3:r*3+3]...)
	}
	return rows
}

// Count returns how many cells hold mark.
func (b Board) Count(mark PlayerMark) int {
	n := 0
	for _, cell := range b {
		if cell == mark {
			n++
		}
	}
	return n
}

// HasWon reports whether mark occupies any full win line.
func HasWon(b Board, mark PlayerMark) bool {
	if mark == None {
		return false
	}
	for _, line := range WinLines {
		if b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark {
			return true
		}
	}
	return false
}

// CheckWinner returns the mark holding a full line, or None.
func CheckWinner(b Board) PlayerMark {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != None && a == b[line[1]] && a == b[line[2]] {
			return a
		}
	}
	return None
}

// IsBoardFull reports whether every cell is occupied.
func IsBoardFull(b Board) bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func EmptyCells(b Board) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}
