package ui

import (
	"github.com/gdamore/tcell/v2"

	"tictactoe-local/types"
)

// cellStyles holds the styles a cell is drawn with, built from the theme.
type cellStyles struct {
	normal    tcell.Style
	highlight tcell.Style
	selected  tcell.Style
	x         tcell.Color
	o         tcell.Color
	number    tcell.Color
	xRune     rune
	oRune     rune
	cursor    rune
	cursorBG  bool
}

// CellUI draws a single board position. It holds no game state: the value,
// the highlight and the click handler are all set by its BoardUI.
type CellUI struct {
	index       int
	value       types.Mark
	highlighted bool
	focused     bool
	onClick     func()
}

// NewCell creates the cell at the given board index.
func NewCell(index int) *CellUI {
	return &CellUI{index: index}
}

// Set replaces what the cell shows and what a click does.
func (c *CellUI) Set(value types.Mark, highlighted bool, onClick func()) {
	c.value = value
	c.highlighted = highlighted
	c.onClick = onClick
}

// Value returns the mark shown in the cell.
func (c *CellUI) Value() types.Mark {
	return c.value
}

// Highlighted returns true if the cell belongs to the winning line.
func (c *CellUI) Highlighted() bool {
	return c.highlighted
}

// SetFocused sets whether the board cursor is on this cell.
func (c *CellUI) SetFocused(focused bool) {
	c.focused = focused
}

// Click invokes the click handler.
func (c *CellUI) Click() {
	if c.onClick != nil {
		c.onClick()
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (c *CellUI) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEnter:
		c.Click()
		return true
	case tcell.KeyRune:
		if event.Rune() == ' ' {
			c.Click()
			return true
		}
	}
	return false
}

// Draw renders the cell into the given rectangle.
func (c *CellUI) Draw(screen tcell.Screen, x, y, width, height int, s cellStyles) {
	style := s.normal
	if c.highlighted {
		style = s.highlight
	} else if c.focused && s.cursorBG {
		style = s.selected
	}

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}

	cx, cy := x+width/2, y+height/2
	switch c.value {
	case types.X:
		screen.SetContent(cx, cy, s.xRune, nil, style.Foreground(s.x).Bold(true))
	case types.O:
		screen.SetContent(cx, cy, s.oRune, nil, style.Foreground(s.o).Bold(true))
	default:
		// Number hint for the 1-9 shortcut keys
		screen.SetContent(x, y, rune('1'+c.index), nil, style.Foreground(s.number))
	}

	if c.focused && !s.cursorBG {
		screen.SetContent(x+width-1, y+height-1, s.cursor, nil, style)
	}
}
