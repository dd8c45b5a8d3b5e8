// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/game"
	"tictactoe-local/types"
)

const (
	cellWidth  = 7
	cellHeight = 3

	// Grid size including the lines between and around the cells.
	gridWidth  = 3*cellWidth + 4
	gridHeight = 3*cellHeight + 4
)

// BoardUI renders a game.Board as a 3x3 grid of cells with a keyboard cursor.
type BoardUI struct {
	Box    *tview.Box
	board  game.Board
	cells  [types.Size]*CellUI
	cfg    *config.Config
	styles cellStyles
	grid   tcell.Style
	sel    int

	// Top left of the grid as last drawn, for mouse hit testing.
	originX, originY int
}

// NewBoard creates an empty board view.
func NewBoard(c *config.Config) *BoardUI {
	b := &BoardUI{
		Box: tview.NewBox(),
		sel: -1,
	}
	for i := range b.cells {
		b.cells[i] = NewCell(i)
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		if i := b.CellAt(event.Position()); i >= 0 {
			b.setSelection(i)
			b.cells[i].Click()
		}
		return action, event
	})
	return b
}

// SetConfig applies the theme colors and symbols.
func (b *BoardUI) SetConfig(c *config.Config) {
	t := c.Theme
	cellBG := tcell.PaletteColor(t.Colors.Cell)
	b.styles = cellStyles{
		normal:    tcell.StyleDefault.Background(cellBG),
		highlight: tcell.StyleDefault.Background(tcell.PaletteColor(t.Colors.Highlight)),
		selected:  tcell.StyleDefault.Background(tcell.PaletteColor(t.Colors.CursorBG)),
		x:         tcell.PaletteColor(t.Colors.X),
		o:         tcell.PaletteColor(t.Colors.O),
		number:    tcell.PaletteColor(t.Colors.Grid),
		xRune:     firstRune(t.Symbols.X, 'X'),
		oRune:     firstRune(t.Symbols.O, 'O'),
		cursor:    firstRune(t.Symbols.Cursor, '·'),
		cursorBG:  t.DrawCursorBackground,
	}
	b.grid = tcell.StyleDefault.Foreground(tcell.PaletteColor(t.Colors.Grid))
	b.cfg = c
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// SetBoard shows a new snapshot. Each cell is told its value, whether it is
// on the winning line, and is wired to the board's click handler.
func (b *BoardUI) SetBoard(board game.Board) {
	b.board = board
	for i, cell := range b.cells {
		i := i
		cell.Set(board.Squares[i], board.Highlighted(i), func() {
			b.board.HandleClick(i)
		})
	}
	if board.Finished() {
		b.ResetSelection()
	}
}

// Board returns the board view-model currently shown.
func (b *BoardUI) Board() game.Board {
	return b.board
}

// Cell returns the cell view at index i.
func (b *BoardUI) Cell(i int) *CellUI {
	return b.cells[i]
}

// Status returns the status line for the shown board.
func (b *BoardUI) Status() string {
	return b.board.Status()
}

// SelectedCell returns the cell under the cursor, or -1.
func (b *BoardUI) SelectedCell() int {
	return b.sel
}

func (b *BoardUI) setSelection(i int) {
	if b.sel >= 0 {
		b.cells[b.sel].SetFocused(false)
	}
	b.sel = i
	if i >= 0 {
		b.cells[i].SetFocused(true)
	}
}

// MoveSelection moves the cursor by h columns and v rows. The first call
// places the cursor in the center.
func (b *BoardUI) MoveSelection(h, v int) {
	if b.board.Finished() {
		b.ResetSelection()
		return
	}
	if b.sel == -1 {
		b.setSelection(4)
		return
	}
	p := types.PosOf(b.sel)
	next := types.Pos{Row: p.Row + v, Col: p.Col + h}
	if !next.Valid() {
		return
	}
	b.setSelection(next.Index())
}

// ResetSelection removes the cursor.
func (b *BoardUI) ResetSelection() {
	b.setSelection(-1)
}

// Activate clicks the cell under the cursor.
func (b *BoardUI) Activate() {
	if b.sel == -1 {
		return
	}
	b.cells[b.sel].Click()
}

// Play clicks cell i directly and moves the cursor there.
func (b *BoardUI) Play(i int) {
	if i < 0 || i >= types.Size {
		return
	}
	if !b.board.Finished() {
		b.setSelection(i)
	}
	b.cells[i].Click()
}

// CellAt returns the cell index under the screen position, or -1.
func (b *BoardUI) CellAt(x, y int) int {
	dx, dy := x-b.originX, y-b.originY
	if dx < 0 || dy < 0 || dx >= gridWidth || dy >= gridHeight {
		return -1
	}
	// Positions on grid lines are not inside any cell.
	if dx%(cellWidth+1) == 0 || dy%(cellHeight+1) == 0 {
		return -1
	}
	col := dx / (cellWidth + 1)
	row := dy / (cellHeight + 1)
	return types.Pos{Row: row, Col: col}.Index()
}

// HandleKey processes board navigation keys. Returns true if handled.
func (b *BoardUI) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(0, -1)
	case tcell.KeyDown:
		b.MoveSelection(0, 1)
	case tcell.KeyLeft:
		b.MoveSelection(-1, 0)
	case tcell.KeyRight:
		b.MoveSelection(1, 0)
	case tcell.KeyEnter:
		b.Activate()
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'h':
			b.MoveSelection(-1, 0)
		case r == 'j':
			b.MoveSelection(0, 1)
		case r == 'k':
			b.MoveSelection(0, -1)
		case r == 'l':
			b.MoveSelection(1, 0)
		case r == ' ':
			if b.sel >= 0 {
				return b.cells[b.sel].HandleKey(event)
			}
		case r >= '1' && r <= '9':
			b.Play(int(r - '1'))
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// GridSize returns the width and height the board needs on screen.
func (b *BoardUI) GridSize() (int, int) {
	return gridWidth, gridHeight
}

func (b *BoardUI) draw(screen tcell.Screen, _, _, _, _ int) (int, int, int, int) {
	x, y, width, height := b.Box.GetInnerRect()
	ox, oy := x, y
	if width > gridWidth {
		ox = x + (width-gridWidth)/2
	}
	if height > gridHeight {
		oy = y + (height-gridHeight)/2
	}
	b.originX, b.originY = ox, oy

	for gy := 0; gy < gridHeight; gy++ {
		onRow := gy%(cellHeight+1) == 0
		for gx := 0; gx < gridWidth; gx++ {
			onCol := gx%(cellWidth+1) == 0
			switch {
			case onRow && onCol:
				screen.SetContent(ox+gx, oy+gy, gridRune(gx/(cellWidth+1), gy/(cellHeight+1)), nil, b.grid)
			case onRow:
				screen.SetContent(ox+gx, oy+gy, '─', nil, b.grid)
			case onCol:
				screen.SetContent(ox+gx, oy+gy, '│', nil, b.grid)
			}
		}
	}

	for i, cell := range b.cells {
		p := types.PosOf(i)
		cx := ox + 1 + p.Col*(cellWidth+1)
		cy := oy + 1 + p.Row*(cellHeight+1)
		cell.Draw(screen, cx, cy, cellWidth, cellHeight, b.styles)
	}
	return x, y, width, height
}

// gridRune returns the box-drawing character for a grid line crossing, where
// x and y count crossings from the top left (0..3).
func gridRune(x, y int) rune {
	isTop := y == 0
	isBottom := y == 3
	isLeft := x == 0
	isRight := x == 3

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}
