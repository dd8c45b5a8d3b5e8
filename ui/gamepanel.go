package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/game"
)

// GameUI lays out the board, the status line and the move list, and keeps
// them in sync with a game.Controller.
type GameUI struct {
	app       *tview.Application
	ctrl      *game.Controller
	board     *BoardUI
	moves     *MoveListUI
	status    *tview.TextView
	hint      *tview.TextView
	frame     *tview.Flex
	focusMode bool
	log       *slog.Logger

	// Hooks for keys handled outside the game screen.
	OnQuit  func()
	OnTheme func()
}

// NewGameUI builds the game screen. app may be nil, in which case focus
// changes are not forwarded to tview.
func NewGameUI(app *tview.Application, cfg *config.Config, ctrl *game.Controller, logger *slog.Logger) *GameUI {
	if logger == nil {
		logger = slog.Default()
	}
	g := &GameUI{
		app:  app,
		ctrl: ctrl,
		log:  logger.With("component", "ui"),
	}

	g.board = NewBoard(cfg)
	g.board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if g.board.HandleKey(event) {
			return nil
		}
		return event
	})

	g.moves = NewMoveList(func(move int) {
		ctrl.JumpTo(move)
	}, ctrl.ToggleSortOrder)
	g.moves.SetCurrentColor(tcell.PaletteColor(cfg.Theme.Colors.CurrentMove))

	g.status = tview.NewTextView()
	g.status.SetDynamicColors(true)
	g.status.SetBorder(true)
	g.status.SetBorderPadding(0, 0, 1, 1)
	g.status.SetTitle(" Status ")
	g.status.SetTitleAlign(tview.AlignLeft)
	stylePanel(g.status.Box)

	g.hint = tview.NewTextView()
	g.hint.SetDynamicColors(true)
	g.hint.SetTextColor(MenuColors.Hint)

	g.frame = tview.NewFlex()
	g.frame.SetInputCapture(g.handleKey)
	g.buildNormalLayout()

	ctrl.OnChange(g.Refresh)
	g.Refresh()
	return g
}

// Frame returns the root primitive of the game screen.
func (g *GameUI) Frame() *tview.Flex {
	return g.frame
}

// Board returns the board view.
func (g *GameUI) Board() *BoardUI {
	return g.board
}

// Moves returns the move list view.
func (g *GameUI) Moves() *MoveListUI {
	return g.moves
}

// StatusText returns the text currently in the status box.
func (g *GameUI) StatusText() string {
	return g.status.GetText(true)
}

// SetConfig applies a changed theme.
func (g *GameUI) SetConfig(cfg *config.Config) {
	g.board.SetConfig(cfg)
	g.moves.SetCurrentColor(tcell.PaletteColor(cfg.Theme.Colors.CurrentMove))
	g.Refresh()
}

// Refresh re-derives everything shown from the controller state.
func (g *GameUI) Refresh() {
	b := g.ctrl.Board()
	g.board.SetBoard(b)
	g.moves.SetMoves(g.ctrl.Moves(), g.ctrl.Ascending())
	g.refreshStatus(b)
}

func (g *GameUI) refreshStatus(b game.Board) {
	status := b.Status()
	if b.Finished() {
		status = fmt.Sprintf("[#%06x::b]%s[-:-:-]", MenuColors.Winner.Hex(), status)
	}
	g.status.SetText(fmt.Sprintf("%s\n[#%06x]move %d of %d[-]",
		status, MenuColors.Hint.Hex(), g.ctrl.CurrentMove(), g.ctrl.Len()-1))

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	g.hint.SetText(`  hjkl/↑↓←→ move   ⏎ play   1-9 play cell   tab switch panel
  s sort moves   t theme   f focus   q quit`)
}

// ToggleFocusMode switches between the full layout and the board alone and
// returns the new state.
func (g *GameUI) ToggleFocusMode() bool {
	g.SetFocusMode(!g.focusMode)
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *GameUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	if enabled {
		g.buildFocusLayout()
	} else {
		g.buildNormalLayout()
	}
	g.setFocus(g.board.Box)
	g.refreshStatus(g.ctrl.Board())
}

// IsFocusMode returns true if focus mode is enabled.
func (g *GameUI) IsFocusMode() bool {
	return g.focusMode
}

// CycleFocus moves keyboard focus board -> move list -> order button.
func (g *GameUI) CycleFocus() {
	if g.focusMode || g.app == nil {
		return
	}
	switch g.app.GetFocus() {
	case g.board.Box:
		g.setFocus(g.moves.List())
	case g.moves.List():
		g.setFocus(g.moves.OrderButton())
	default:
		g.setFocus(g.board.Box)
	}
}

func (g *GameUI) setFocus(p tview.Primitive) {
	if g.app != nil {
		g.app.SetFocus(p)
	}
}

// handleKey processes keys that work regardless of which panel has focus.
func (g *GameUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		g.CycleFocus()
		return nil
	case tcell.KeyEscape:
		if g.board.SelectedCell() >= 0 {
			g.board.ResetSelection()
			return nil
		}
		g.quit()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			g.quit()
			return nil
		case 's':
			g.ctrl.ToggleSortOrder()
			return nil
		case 'f':
			g.ToggleFocusMode()
			return nil
		case 't':
			if g.OnTheme != nil {
				g.OnTheme()
			}
			return nil
		}
	}
	return event
}

func (g *GameUI) quit() {
	g.log.Info("quit", "moves", g.ctrl.Len()-1)
	if g.OnQuit != nil {
		g.OnQuit()
	}
}

// buildNormalLayout shows status and board on the left, move list on the right.
func (g *GameUI) buildNormalLayout() {
	g.frame.Clear()

	w, h := g.board.GridSize()

	left := tview.NewFlex().SetDirection(tview.FlexRow)
	left.AddItem(g.status, 4, 0, false)
	left.AddItem(g.board.Box, h+2, 0, true)
	left.AddItem(nil, 0, 1, false)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(left, w+6, 0, true)
	boardRow.AddItem(g.moves.Flex(), 0, 1, false)

	g.frame.SetDirection(tview.FlexRow)
	g.frame.AddItem(boardRow, 0, 1, true)
	g.frame.AddItem(g.hint, 2, 0, false)
}

// buildFocusLayout shows only the centered board.
func (g *GameUI) buildFocusLayout() {
	g.frame.Clear()

	w, h := g.board.GridSize()

	g.frame.SetDirection(tview.FlexRow)
	g.frame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(g.board.Box, w, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	g.frame.AddItem(centerRow, h, 0, true)
	g.frame.AddItem(nil, 0, 1, false)
	g.frame.AddItem(g.hint, 1, 0, false)
}
