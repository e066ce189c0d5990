// Package controller maps user commands onto the board model.
//
// Every command performs at most one model mutation and, when the board
// changed, exactly one whole-document save. Commands that resolve to nothing
// (no focused card, a column index that no longer exists, a move past the
// edge) leave both the board and the store untouched.
package controller

import (
	"errors"

	"kanban-tui/internal/kanban/drag"
	"kanban-tui/internal/kanban/focus"
	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
	"kanban-tui/internal/logs"
)

// Store loads and saves the whole board
type Store interface {
	Load() (models.Board, error)
	Save(board models.Board) error
}

// Controller owns the board, the keyboard focus and the drag gesture
type Controller struct {
	store Store
	board models.Board
	focus focus.Focus
	drag  drag.Resolver
}

// New loads the board from store and focuses its first element
func New(store Store) (*Controller, error) {
	board, err := store.Load()
	if err != nil {
		return nil, err
	}
	return NewWithBoard(store, board), nil
}

// NewWithBoard wraps an already loaded board
func NewWithBoard(store Store, board models.Board) *Controller {
	board.Normalize()
	c := &Controller{store: store, board: board}
	c.focus = focus.Initial(focus.LayoutOf(c.board))
	return c
}

// Board returns a copy of the current board for rendering
func (c *Controller) Board() models.Board {
	return c.board.Clone()
}

// Focus returns the current focus
func (c *Controller) Focus() focus.Focus {
	return c.focus
}

// SetFocus focuses f if it addresses an existing element
func (c *Controller) SetFocus(f focus.Focus) bool {
	if !focus.LayoutOf(c.board).Valid(f) {
		return false
	}
	c.focus = f
	return true
}

// FocusedCard returns the focused card
func (c *Controller) FocusedCard() (models.Card, bool) {
	if c.focus.Kind != focus.Card || !focus.LayoutOf(c.board).Valid(c.focus) {
		return models.Card{}, false
	}
	return c.board.Columns[c.focus.Column].Cards[c.focus.Card], true
}

// FocusedColumn returns the index of the column holding focus, or -1
func (c *Controller) FocusedColumn() int {
	if !focus.LayoutOf(c.board).Valid(c.focus) {
		return -1
	}
	return c.focus.ColumnOf()
}

func (c *Controller) save() error {
	return c.store.Save(c.board)
}

func (c *Controller) refocusCard(id string) {
	if f, ok := focus.Locate(c.board, id); ok {
		c.focus = f
		return
	}
	c.clampFocus()
}

func (c *Controller) clampFocus() {
	c.focus = focus.Clamp(focus.LayoutOf(c.board), c.focus)
}

// ignoreOutOfRange turns a stale index into a silent no-op
func ignoreOutOfRange(op string, err error) error {
	if errors.Is(err, operations.ErrIndexOutOfRange) {
		logs.Logger.Debug("ignoring out of range command", "op", op, "err", err)
		return nil
	}
	return err
}
