package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/game"
	"tictactoe-local/types"
)

// ThemeUI lets the player pick the color of the winning line, with a live
// preview on a sample board.
type ThemeUI struct {
	flex       *tview.Flex
	colorList  *tview.List
	preview    *BoardUI
	cfg        *config.Config
	previewCfg config.Config
	onDone     func()
	log        *slog.Logger
}

// Highlight colors to choose from.
var highlightColors = []struct {
	code int
	name string
}{
	{160, "Red"},
	{196, "Bright Red"},
	{88, "Dark Red"},
	{202, "Orange"},
	{214, "Orange Gold"},
	{220, "Yellow"},
	{28, "Green"},
	{34, "Bright Green"},
	{24, "Dark Cyan"},
	{31, "Teal"},
	{61, "Slate Blue"},
	{97, "Purple"},
	{133, "Orchid"},
	{240, "Gray"},
}

// previewBoard is a finished game shown in the preview.
var previewBoard = types.Board{
	types.X, types.O, types.X,
	types.O, types.X, types.O,
	types.Empty, types.Empty, types.X,
}

// NewThemeUI creates the theme screen. onDone is called after a color is
// saved or the screen is dismissed.
func NewThemeUI(cfg *config.Config, logger *slog.Logger, onDone func()) *ThemeUI {
	if logger == nil {
		logger = slog.Default()
	}
	tu := &ThemeUI{
		cfg:        cfg,
		previewCfg: *cfg,
		onDone:     onDone,
		log:        logger.With("component", "theme"),
	}

	tu.colorList = tview.NewList()
	tu.colorList.SetBorder(true)
	tu.colorList.SetTitle(" Winning Line Color ")
	stylePanel(tu.colorList.Box)
	tu.colorList.ShowSecondaryText(false)
	for i, c := range highlightColors {
		tu.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}

	tu.preview = NewBoard(&tu.previewCfg)
	tu.preview.Box.SetBorder(true)
	tu.preview.Box.SetTitle(" Preview ")
	stylePanel(tu.preview.Box)
	tu.preview.SetBoard(game.Board{Squares: previewBoard})

	tu.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		tu.showPreview(index)
	})
	tu.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		tu.apply(index)
	})
	tu.colorList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			tu.done()
			return nil
		}
		return event
	})

	tu.flex = tview.NewFlex().
		AddItem(tu.colorList, 34, 0, true).
		AddItem(tu.preview.Box, 0, 1, false)

	tu.Reset()
	return tu
}

// Flex returns the flex container for this UI.
func (tu *ThemeUI) Flex() *tview.Flex {
	return tu.flex
}

// List returns the color list.
func (tu *ThemeUI) List() *tview.List {
	return tu.colorList
}

// Preview returns the preview board.
func (tu *ThemeUI) Preview() *BoardUI {
	return tu.preview
}

// Reset moves the list cursor to the saved color and resets the preview.
func (tu *ThemeUI) Reset() {
	tu.previewCfg = *tu.cfg
	tu.preview.SetConfig(&tu.previewCfg)
	for i, c := range highlightColors {
		if c.code == tu.cfg.Theme.Colors.Highlight {
			tu.colorList.SetCurrentItem(i)
			return
		}
	}
}

func (tu *ThemeUI) showPreview(index int) {
	if index < 0 || index >= len(highlightColors) {
		return
	}
	tu.previewCfg.Theme.Colors.Highlight = highlightColors[index].code
	tu.preview.SetConfig(&tu.previewCfg)
}

func (tu *ThemeUI) apply(index int) {
	if index < 0 || index >= len(highlightColors) {
		return
	}
	tu.cfg.SetHighlight(highlightColors[index].code)
	if err := tu.cfg.Save(); err != nil {
		tu.log.Error("save config", "err", err)
	} else {
		tu.log.Info("highlight color saved", "color", tu.cfg.Theme.Colors.Highlight, "path", tu.cfg.Path())
	}
	tu.done()
}

func (tu *ThemeUI) done() {
	if tu.onDone != nil {
		tu.onDone()
	}
}
