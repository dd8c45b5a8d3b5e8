package game

import (
	"fmt"
	"log/slog"

	"tictactoe-local/types"
)

// MoveEntry is one line of the move list.
type MoveEntry struct {
	Move    int    // index into the history, stable across sort orders
	Label   string // "Go to game start", "Go to move #n" or "You are at move #n"
	Current bool   // the entry for the displayed move; it is not a jump target
	Mark    types.Mark
	Pos     types.Pos // cell written by this move; meaningless for move 0
}

// Controller owns the game history, the pointer to the displayed move and
// the move-list sort order. It is the single source of truth for the UI.
type Controller struct {
	history   []types.Board
	current   int
	ascending bool
	onChange  func()
	log       *slog.Logger
}

// NewController creates a controller holding only the empty board.
func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		history:   []types.Board{{}},
		ascending: true,
		log:       logger.With("component", "game"),
	}
}

// OnChange registers a callback fired after every state transition.
func (c *Controller) OnChange(f func()) {
	c.onChange = f
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Play records next as the move after the current one. Snapshots after the
// current move are discarded first.
func (c *Controller) Play(next types.Board) {
	dropped := len(c.history) - (c.current + 1)
	c.history = append(c.history[:c.current+1:c.current+1], next)
	c.current = len(c.history) - 1
	c.log.Debug("move played", "move", c.current, "discarded", dropped)
	c.changed()
}

// JumpTo displays the given past move. History is left untouched; the next
// Play truncates from there. It returns false if move is out of range.
func (c *Controller) JumpTo(move int) bool {
	if move < 0 || move >= len(c.history) {
		c.log.Debug("jump out of range", "move", move, "len", len(c.history))
		return false
	}
	c.current = move
	c.log.Debug("jumped", "move", move)
	c.changed()
	return true
}

// ToggleSortOrder flips the display order of the move list.
func (c *Controller) ToggleSortOrder() {
	c.ascending = !c.ascending
	c.changed()
}

// SetAscending sets the display order of the move list.
func (c *Controller) SetAscending(asc bool) {
	if c.ascending == asc {
		return
	}
	c.ToggleSortOrder()
}

// Ascending returns true if the move list is shown oldest first.
func (c *Controller) Ascending() bool {
	return c.ascending
}

// CurrentMove returns the pointer into the history.
func (c *Controller) CurrentMove() int {
	return c.current
}

// Len returns the number of snapshots in the history.
func (c *Controller) Len() int {
	return len(c.history)
}

// Snapshot returns the board after the given move.
func (c *Controller) Snapshot(move int) types.Board {
	return c.history[move]
}

// History returns a copy of every stored snapshot.
func (c *Controller) History() []types.Board {
	return append([]types.Board(nil), c.history...)
}

// XIsNext returns true when X moves next at the current pointer.
func (c *Controller) XIsNext() bool {
	return c.current%2 == 0
}

// CurrentSquares returns the displayed snapshot.
func (c *Controller) CurrentSquares() types.Board {
	return c.history[c.current]
}

// Board builds the board view-model for the displayed snapshot, wired to Play.
func (c *Controller) Board() Board {
	return Board{
		Squares: c.CurrentSquares(),
		XIsNext: c.XIsNext(),
		OnPlay:  c.Play,
	}
}

// Moves returns the move list in display order.
func (c *Controller) Moves() []MoveEntry {
	entries := make([]MoveEntry, len(c.history))
	for move := range c.history {
		entry := MoveEntry{
			Move:    move,
			Label:   moveLabel(move, c.current),
			Current: move == c.current,
		}
		if move > 0 {
			entry.Pos, entry.Mark = placedAt(c.history[move-1], c.history[move])
		}
		entries[move] = entry
	}
	if !c.ascending {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries
}

func moveLabel(move, current int) string {
	switch {
	case move == 0:
		return "Go to game start"
	case move == current:
		return fmt.Sprintf("You are at move #%d", move)
	default:
		return fmt.Sprintf("Go to move #%d", move)
	}
}

// placedAt finds the cell that differs between two consecutive snapshots.
func placedAt(prev, next types.Board) (types.Pos, types.Mark) {
	for i := range next {
		if prev[i] != next[i] {
			return types.PosOf(i), next[i]
		}
	}
	return types.Pos{Row: -1, Col: -1}, types.Empty
}
