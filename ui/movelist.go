package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/game"
)

// MoveListUI shows every move of the history and lets the player jump back
// to any of them. The entry for the displayed move is inert.
type MoveListUI struct {
	flex     *tview.Flex
	list     *tview.List
	order    *tview.Button
	entries  []game.MoveEntry
	current  tcell.Color
	onJump   func(move int)
	onToggle func()
}

// NewMoveList creates the move list with its sort order button.
func NewMoveList(onJump func(move int), onToggle func()) *MoveListUI {
	ml := &MoveListUI{
		current:  MenuColors.Hint,
		onJump:   onJump,
		onToggle: onToggle,
	}

	ml.list = tview.NewList()
	ml.list.SetBorder(true)
	ml.list.SetTitle(" Moves ")
	ml.list.SetTitleAlign(tview.AlignLeft)
	stylePanel(ml.list.Box)
	ml.list.ShowSecondaryText(true)
	ml.list.SetHighlightFullLine(true)
	ml.list.SetMainTextColor(MenuColors.Label)
	ml.list.SetSecondaryTextColor(MenuColors.Hint)
	ml.list.SetSelectedTextColor(MenuColors.ButtonText)
	ml.list.SetSelectedBackgroundColor(MenuColors.ButtonFocus)
	ml.list.SetSelectedFocusOnly(true)

	ml.order = tview.NewButton("asc")
	ml.order.SetLabelColor(MenuColors.ButtonText)
	ml.order.SetBackgroundColor(MenuColors.ButtonBG)
	ml.order.SetLabelColorActivated(MenuColors.ButtonText)
	ml.order.SetBackgroundColorActivated(MenuColors.ButtonFocus)
	ml.order.SetSelectedFunc(func() {
		if ml.onToggle != nil {
			ml.onToggle()
		}
	})

	ml.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ml.list, 0, 1, true).
		AddItem(ml.order, 1, 0, false)

	return ml
}

// Flex returns the container holding the list and the order button.
func (ml *MoveListUI) Flex() *tview.Flex {
	return ml.flex
}

// List returns the underlying tview list.
func (ml *MoveListUI) List() *tview.List {
	return ml.list
}

// OrderButton returns the sort order toggle.
func (ml *MoveListUI) OrderButton() *tview.Button {
	return ml.order
}

// Entries returns the entries as currently displayed.
func (ml *MoveListUI) Entries() []game.MoveEntry {
	return ml.entries
}

// SetMoves replaces the list contents. Entries must already be in display
// order. The list cursor follows the current move.
func (ml *MoveListUI) SetMoves(entries []game.MoveEntry, ascending bool) {
	ml.entries = entries
	ml.list.Clear()

	cursor := 0
	for i, e := range entries {
		var selected func()
		label := e.Label
		if e.Current {
			cursor = i
			label = fmt.Sprintf("[#%06x]%s[-]", ml.current.Hex(), e.Label)
		} else {
			move := e.Move
			selected = func() {
				if ml.onJump != nil {
					ml.onJump(move)
				}
			}
		}
		ml.list.AddItem(label, moveDetail(e), 0, selected)
	}
	ml.list.SetCurrentItem(cursor)

	if ascending {
		ml.order.SetLabel("asc")
	} else {
		ml.order.SetLabel("desc")
	}
}

// SetCurrentColor changes the color used for the inert current entry.
func (ml *MoveListUI) SetCurrentColor(c tcell.Color) {
	if c.Hex() < 0 {
		return
	}
	ml.current = c
}

// moveDetail describes the mark placed by a move, e.g. "X at (1, 1)".
func moveDetail(e game.MoveEntry) string {
	if e.Move == 0 {
		return "  empty board"
	}
	return fmt.Sprintf("  %s at %s", e.Mark, e.Pos)
}
