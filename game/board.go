// Package game holds the move history state machine and the board view-model
// that the terminal UI renders.
package game

import (
	"tictactoe-local/rules"
	"tictactoe-local/types"
)

// Board is a controlled view over one snapshot. It keeps no state of its own:
// a legal click is handed to OnPlay and the owner decides what to do with it.
type Board struct {
	Squares types.Board
	XIsNext bool
	OnPlay  func(next types.Board)
}

// NextMark returns the mark that the next click would place.
func (b Board) NextMark() types.Mark {
	if b.XIsNext {
		return types.X
	}
	return types.O
}

// WinningLine returns the completed line, if any.
func (b Board) WinningLine() (types.Line, bool) {
	return rules.Evaluate(b.Squares)
}

// Winner returns the winning mark or Empty.
func (b Board) Winner() types.Mark {
	return rules.Winner(b.Squares)
}

// Draw returns true if the board is full and nobody has won.
func (b Board) Draw() bool {
	return rules.Draw(b.Squares)
}

// Finished returns true if no further move can be played.
func (b Board) Finished() bool {
	return b.Winner() != types.Empty || b.Squares.Full()
}

// Status returns the text shown above the board.
func (b Board) Status() string {
	if w := b.Winner(); w != types.Empty {
		return "Winner: " + w.String()
	}
	if b.Draw() {
		return "Draw"
	}
	return "Next player: " + b.NextMark().String()
}

// Highlighted returns true if cell i is part of the winning line.
func (b Board) Highlighted(i int) bool {
	line, ok := b.WinningLine()
	return ok && line.Contains(i)
}

// HandleClick plays the next mark at cell i. Clicks on an occupied cell, on
// a finished game or outside the grid are ignored.
func (b Board) HandleClick(i int) {
	if i < 0 || i >= types.Size {
		return
	}
	if b.Squares.Occupied(i) || b.Winner() != types.Empty {
		return
	}
	if b.OnPlay == nil {
		return
	}
	b.OnPlay(b.Squares.With(i, b.NextMark()))
}
