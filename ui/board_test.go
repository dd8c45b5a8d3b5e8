package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/config"
	"tictactoe-local/game"
	"tictactoe-local/types"
)

const (
	screenW = 40
	screenH = 20

	// Grid origin when drawn centered on a screenW x screenH box.
	testOX = (screenW - gridWidth) / 2
	testOY = (screenH - gridHeight) / 2
)

// newTestBoard returns a board view wired to a fresh controller.
func newTestBoard(t *testing.T) (*BoardUI, *game.Controller, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig
	ctrl := game.NewController(nil)
	b := NewBoard(&cfg)
	b.SetBoard(ctrl.Board())
	ctrl.OnChange(func() { b.SetBoard(ctrl.Board()) })
	return b, ctrl, &cfg
}

func drawBoard(t *testing.T, b *BoardUI) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(screenW, screenH)
	b.Box.SetRect(0, 0, screenW, screenH)
	b.Box.Draw(screen)
	return screen
}

// cellCenter returns the screen position of the center of cell i.
func cellCenter(i int) (int, int) {
	p := types.PosOf(i)
	return testOX + 1 + p.Col*(cellWidth+1) + cellWidth/2,
		testOY + 1 + p.Row*(cellHeight+1) + cellHeight/2
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestBoardUI_PlayByNumber(t *testing.T) {
	b, ctrl, _ := newTestBoard(t)

	require.True(t, b.HandleKey(key('1')))

	assert.Equal(t, 1, ctrl.CurrentMove())
	assert.Equal(t, types.X, ctrl.CurrentSquares()[0])
	assert.Equal(t, types.X, b.Cell(0).Value())
	assert.Equal(t, "Next player: O", b.Status())
	assert.Equal(t, 0, b.SelectedCell())
}

func TestBoardUI_CursorAndEnter(t *testing.T) {
	b, ctrl, _ := newTestBoard(t)

	// The first move key places the cursor in the center.
	b.HandleKey(key('l'))
	assert.Equal(t, 4, b.SelectedCell())

	b.HandleKey(key('k'))
	b.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, 0, b.SelectedCell())

	// Moving off the grid keeps the cursor where it is.
	b.HandleKey(key('h'))
	b.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 0, b.SelectedCell())

	b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, types.X, ctrl.CurrentSquares()[0])

	// Enter on the same occupied cell does nothing.
	b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, 2, ctrl.Len())

	assert.False(t, b.HandleKey(key('z')))
}

func TestBoardUI_WinHighlightsAndLocks(t *testing.T) {
	b, ctrl, cfg := newTestBoard(t)
	for _, r := range "14253" {
		b.HandleKey(key(r))
	}

	require.Equal(t, "Winner: X", b.Status())
	assert.Equal(t, -1, b.SelectedCell(), "cursor is removed once the game is over")
	for i := 0; i < types.Size; i++ {
		assert.Equal(t, i <= 2, b.Cell(i).Highlighted(), "cell %d", i)
	}

	screen := drawBoard(t, b)
	x, y := cellCenter(1)
	mainc, _, style, _ := screen.GetContent(x, y)
	assert.Equal(t, 'X', mainc)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.Highlight), bg)

	x, y = cellCenter(3)
	_, _, style, _ = screen.GetContent(x, y)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.Cell), bg)

	before := ctrl.History()
	for r := '1'; r <= '9'; r++ {
		b.HandleKey(key(r))
	}
	assert.Equal(t, before, ctrl.History())
}

func TestBoardUI_Draw(t *testing.T) {
	b, _, _ := newTestBoard(t)
	b.HandleKey(key('5'))

	screen := drawBoard(t, b)

	corner, _, _, _ := screen.GetContent(testOX, testOY)
	assert.Equal(t, '┌', corner)
	cross, _, _, _ := screen.GetContent(testOX+cellWidth+1, testOY+cellHeight+1)
	assert.Equal(t, '┼', cross)
	last, _, _, _ := screen.GetContent(testOX+gridWidth-1, testOY+gridHeight-1)
	assert.Equal(t, '┘', last)

	x, y := cellCenter(4)
	mark, _, _, _ := screen.GetContent(x, y)
	assert.Equal(t, 'X', mark)

	// Empty cells show their shortcut number in the top left corner.
	hint, _, _, _ := screen.GetContent(testOX+1, testOY+1)
	assert.Equal(t, '1', hint)
}

func TestBoardUI_DrawInsideBorder(t *testing.T) {
	b, _, _ := newTestBoard(t)
	b.Box.SetBorder(true)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(screenW, 14)
	b.Box.SetRect(0, 0, screenW, 14)
	b.Box.Draw(screen)

	// The inner area is one row short of the grid, so the grid sits right
	// below the top border instead of being centered over it.
	ox := 1 + (screenW-2-gridWidth)/2
	border, _, _, _ := screen.GetContent(ox, 0)
	assert.Equal(t, tview.Borders.Horizontal, border)
	corner, _, _, _ := screen.GetContent(ox, 1)
	assert.Equal(t, '┌', corner)

	x, y, w, h := b.Box.GetInnerRect()
	assert.Equal(t, []int{1, 1, screenW - 2, 12}, []int{x, y, w, h})
}

func TestBoardUI_CellAt(t *testing.T) {
	b, _, _ := newTestBoard(t)
	drawBoard(t, b)

	for i := 0; i < types.Size; i++ {
		x, y := cellCenter(i)
		assert.Equal(t, i, b.CellAt(x, y), "cell %d", i)
	}

	assert.Equal(t, -1, b.CellAt(testOX, testOY), "grid corner")
	assert.Equal(t, -1, b.CellAt(testOX+cellWidth+1, testOY+2), "vertical line")
	assert.Equal(t, -1, b.CellAt(0, 0), "outside")
	assert.Equal(t, -1, b.CellAt(testOX+gridWidth, testOY+1), "right of grid")
}

func TestBoardUI_MouseClick(t *testing.T) {
	b, ctrl, _ := newTestBoard(t)
	drawBoard(t, b)

	x, y := cellCenter(8)
	handler := b.Box.MouseHandler()
	handler(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), func(tview.Primitive) {})

	assert.Equal(t, types.X, ctrl.CurrentSquares()[8])
	assert.Equal(t, 8, b.SelectedCell())

	// Clicks on grid lines do nothing.
	handler(tview.MouseLeftClick, tcell.NewEventMouse(testOX, testOY, tcell.Button1, tcell.ModNone), func(tview.Primitive) {})
	assert.Equal(t, 2, ctrl.Len())
}

func TestCellUI(t *testing.T) {
	c := NewCell(3)
	assert.NotPanics(t, c.Click)

	clicks := 0
	c.Set(types.O, true, func() { clicks++ })

	assert.True(t, c.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.True(t, c.HandleKey(key(' ')))
	assert.False(t, c.HandleKey(key('x')))
	assert.Equal(t, 2, clicks)
	assert.Equal(t, types.O, c.Value())
	assert.True(t, c.Highlighted())
}

func TestGridRune(t *testing.T) {
	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{3, 0, '┐'},
		{0, 3, '└'},
		{3, 3, '┘'},
		{1, 0, '┬'},
		{2, 3, '┴'},
		{0, 1, '├'},
		{3, 2, '┤'},
		{1, 2, '┼'},
	}
	for _, tt := range tests {
		if got := gridRune(tt.x, tt.y); got != tt.want {
			t.Errorf("gridRune(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}
