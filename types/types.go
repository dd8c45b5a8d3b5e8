// Package types contains shared data structures for tictactoe-local.
package types

import "fmt"

// Mark is the content of a single cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return ""
}

// Other returns the opponent's mark. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// Size is the number of cells on a board.
const Size = 9

// Board is one snapshot of the 3x3 grid, indexed row-major (row*3+col).
// It is a value type: assigning or passing a Board copies it.
type Board [Size]Mark

// Occupied returns true if cell i holds a mark.
func (b Board) Occupied(i int) bool {
	return b[i] != Empty
}

// Full returns true if no empty cell is left.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// With returns a copy of the board with mark m written at cell i.
func (b Board) With(i int, m Mark) Board {
	b[i] = m
	return b
}

// Line is a row, column or diagonal given as three cell indices.
type Line [3]int

// Contains reports whether cell i is part of the line.
func (l Line) Contains(i int) bool {
	return l[0] == i || l[1] == i || l[2] == i
}

// Pos is a cell position on the grid.
type Pos struct {
	Row int
	Col int
}

// PosOf converts a cell index to its row and column.
func PosOf(i int) Pos {
	return Pos{Row: i / 3, Col: i % 3}
}

// Index converts a position back to its cell index.
func (p Pos) Index() int {
	return p.Row*3 + p.Col
}

// Valid returns true if the position lies on the grid.
func (p Pos) Valid() bool {
	return p.Row >= 0 && p.Row < 3 && p.Col >= 0 && p.Col < 3
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
