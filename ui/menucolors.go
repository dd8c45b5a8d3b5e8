package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuColors defines the Nord-inspired color palette for the panels around the board.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	BorderFocus tcell.Color // Brighter blue for focused borders
	Title       tcell.Color // Bright white for title
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Winner      tcell.Color // Status line once the game is won
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(60),  // Muted blue-gray
	BorderFocus: tcell.PaletteColor(109), // Brighter blue
	Title:       tcell.PaletteColor(255), // Bright white
	Label:       tcell.PaletteColor(250), // Light gray
	Hint:        tcell.PaletteColor(245), // Dim gray
	Winner:      tcell.PaletteColor(179), // Gold
	ButtonBG:    tcell.PaletteColor(60),  // Nord blue
	ButtonFocus: tcell.PaletteColor(109), // Brighter blue
	ButtonText:  tcell.PaletteColor(255), // White
}

// stylePanel colors a bordered panel, brightening the border while it has focus.
func stylePanel(box *tview.Box) {
	box.SetBorderColor(MenuColors.Border)
	box.SetTitleColor(MenuColors.Title)
	box.SetFocusFunc(func() { box.SetBorderColor(MenuColors.BorderFocus) })
	box.SetBlurFunc(func() { box.SetBorderColor(MenuColors.Border) })
}
