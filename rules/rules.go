// Package rules decides whether a tic-tac-toe board has been won.
package rules

import "tictactoe-local/types"

// Lines lists every row, column and diagonal in the order they are checked.
var Lines = [8]types.Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate returns the first line whose three cells hold the same mark.
// The second result is false when no line is complete, which includes
// both an unfinished game and a full board without a winner.
func Evaluate(board types.Board) (types.Line, bool) {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != types.Empty && a == b && b == c {
			return line, true
		}
	}
	return types.Line{}, false
}

// Winner returns the mark that completed a line, or Empty.
func Winner(board types.Board) types.Mark {
	line, ok := Evaluate(board)
	if !ok {
		return types.Empty
	}
	return board[line[0]]
}

// Draw returns true if the board is full and nobody has won.
func Draw(board types.Board) bool {
	if _, ok := Evaluate(board); ok {
		return false
	}
	return board.Full()
}
