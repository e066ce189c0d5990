package controller

import (
	"kanban-tui/internal/kanban/focus"
	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
	"kanban-tui/internal/logs"
)

// AddCard appends a card to the focused column, or the first column when
// nothing is focused. A board without columns gets the default columns first.
func (c *Controller) AddCard(label, description, details string) (models.Card, error) {
	column := c.FocusedColumn()
	if column < 0 {
		column = 0
	}
	card, _, err := c.AddCardTo(column, label, description, details)
	return card, err
}

// AddCardTo appends a card to the column at index. Returns false without
// saving when the column does not exist.
func (c *Controller) AddCardTo(column int, label, description, details string) (models.Card, bool, error) {
	if operations.EnsureColumns(&c.board) {
		logs.Logger.Info("board had no columns, restored defaults before adding card")
		column = 0
	}

	card, err := operations.AddCard(&c.board, column, label, description, details)
	if err != nil {
		return models.Card{}, false, ignoreOutOfRange("add card", err)
	}

	c.refocusCard(card.ID)
	logs.Logger.Info("card added", "id", card.ID, "column", column)
	return card, true, c.save()
}

// EditCard overwrites the focused card's fields
func (c *Controller) EditCard(label, description, details string) (bool, error) {
	card, ok := c.FocusedCard()
	if !ok {
		return false, nil
	}
	return c.EditCardRef(models.RefOf(card), label, description, details)
}

// EditCardRef overwrites the fields of the first card matching ref
func (c *Controller) EditCardRef(ref models.CardRef, label, description, details string) (bool, error) {
	if !operations.EditCard(&c.board, ref, label, description, details) {
		return false, nil
	}
	logs.Logger.Info("card edited", "ref", ref)
	return true, c.save()
}

// DeleteCard removes the focused card
func (c *Controller) DeleteCard() (bool, error) {
	card, ok := c.FocusedCard()
	if !ok {
		return false, nil
	}
	return c.DeleteCardRef(models.RefOf(card))
}

// DeleteCardRef removes the first card matching ref
func (c *Controller) DeleteCardRef(ref models.CardRef) (bool, error) {
	if !operations.DeleteCard(&c.board, ref) {
		return false, nil
	}
	c.clampFocus()
	logs.Logger.Info("card deleted", "ref", ref)
	return true, c.save()
}

// MoveCardLeft moves the focused card to the tail of the column on its left
func (c *Controller) MoveCardLeft() (bool, error) {
	return c.moveFocused(-1)
}

// MoveCardRight moves the focused card to the tail of the column on its right
func (c *Controller) MoveCardRight() (bool, error) {
	return c.moveFocused(1)
}

func (c *Controller) moveFocused(delta int) (bool, error) {
	card, ok := c.FocusedCard()
	if !ok {
		return false, nil
	}
	return c.MoveCardRef(models.RefOf(card), c.focus.Column, delta)
}

// MoveCardRef moves the first card matching ref from column from to column
// from+delta. Moves past either edge are ignored and not saved.
func (c *Controller) MoveCardRef(ref models.CardRef, from, delta int) (bool, error) {
	var movedID string
	if c.board.HasColumn(from) {
		for _, card := range c.board.Columns[from].Cards {
			if ref.Matches(card) {
				movedID = card.ID
				break
			}
		}
	}

	if !operations.MoveCard(&c.board, ref, from, delta) {
		return false, nil
	}

	c.refocusCard(movedID)
	logs.Logger.Info("card moved", "ref", ref, "from", from, "to", from+delta)
	return true, c.save()
}

// AddColumn appends a column and focuses it
func (c *Controller) AddColumn(title string) error {
	operations.AddColumn(&c.board, title)
	c.focus = focus.OnColumn(len(c.board.Columns) - 1)
	logs.Logger.Info("column added", "title", title)
	return c.save()
}

// RenameColumn renames the focused column
func (c *Controller) RenameColumn(title string) (bool, error) {
	return c.RenameColumnAt(c.FocusedColumn(), title)
}

// RenameColumnAt renames the column at index
func (c *Controller) RenameColumnAt(column int, title string) (bool, error) {
	if err := operations.RenameColumn(&c.board, column, title); err != nil {
		return false, ignoreOutOfRange("rename column", err)
	}
	logs.Logger.Info("column renamed", "column", column, "title", title)
	return true, c.save()
}

// DeleteColumn removes the focused column and its cards
func (c *Controller) DeleteColumn() (bool, error) {
	return c.DeleteColumnAt(c.FocusedColumn())
}

// DeleteColumnAt removes the column at index and its cards
func (c *Controller) DeleteColumnAt(column int) (bool, error) {
	if err := operations.DeleteColumn(&c.board, column); err != nil {
		return false, ignoreOutOfRange("delete column", err)
	}
	c.focus = focus.Clamp(focus.LayoutOf(c.board), focus.OnColumn(column))
	logs.Logger.Info("column deleted", "column", column)
	return true, c.save()
}

// ClearBoard resets the board to the default columns
func (c *Controller) ClearBoard() error {
	operations.ResetBoard(&c.board)
	c.focus = focus.Initial(focus.LayoutOf(c.board))
	logs.Logger.Info("board cleared")
	return c.save()
}

// ReplaceBoard swaps in a whole board, e.g. from a markdown import
func (c *Controller) ReplaceBoard(board models.Board) error {
	board = board.Clone()
	board.Normalize()
	operations.AssignMissingIDs(&board)
	c.board = board
	c.focus = focus.Initial(focus.LayoutOf(c.board))
	logs.Logger.Info("board replaced", "columns", len(board.Columns), "cards", board.TotalCards())
	return c.save()
}

// CardDetails returns the focused card for the details view
func (c *Controller) CardDetails() (models.Card, bool) {
	return c.FocusedCard()
}

// FocusUp moves focus to the card above
func (c *Controller) FocusUp() focus.Focus { return c.navigate(focus.Up) }

// FocusDown moves focus to the card below
func (c *Controller) FocusDown() focus.Focus { return c.navigate(focus.Down) }

// FocusLeft moves focus into the column on the left
func (c *Controller) FocusLeft() focus.Focus { return c.navigate(focus.Left) }

// FocusRight moves focus into the column on the right
func (c *Controller) FocusRight() focus.Focus { return c.navigate(focus.Right) }

func (c *Controller) navigate(dir focus.Direction) focus.Focus {
	c.focus = focus.Move(focus.LayoutOf(c.board), c.focus, dir)
	return c.focus
}
