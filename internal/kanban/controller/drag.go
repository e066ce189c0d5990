package controller

import (
	"kanban-tui/internal/kanban/drag"
	"kanban-tui/internal/kanban/focus"
	"kanban-tui/internal/logs"
)

// BeginDrag starts dragging the card at (column, card). The card is focused
// as well, like a click would.
func (c *Controller) BeginDrag(column, card int, pointer, origin drag.Point) bool {
	f := focus.OnCard(column, card)
	if !focus.LayoutOf(c.board).Valid(f) {
		return false
	}
	c.focus = f
	c.drag.Begin(c.board.Columns[column].Cards[card], column, pointer, origin)
	return true
}

// UpdateDrag follows the pointer during a drag
func (c *Controller) UpdateDrag(pointer drag.Point) {
	c.drag.Update(pointer)
}

// Dragging reports whether a drag is in progress
func (c *Controller) Dragging() bool {
	return c.drag.Dragging()
}

// DragState returns the dragged card's label and drawn position
func (c *Controller) DragState() (label string, position drag.Point, ok bool) {
	if !c.drag.Dragging() {
		return "", drag.Point{}, false
	}
	card, _ := c.drag.Card()
	return card.Label, c.drag.Position(), true
}

// CancelDrag abandons a drag without changes
func (c *Controller) CancelDrag() {
	c.drag.Cancel()
}

// EndDrag drops the card at pointer. The board is saved only when the card
// crossed into another column.
func (c *Controller) EndDrag(pointer drag.Point, columns []drag.Rect) (drag.Result, error) {
	result := c.drag.End(&c.board, pointer, columns)
	if !result.Moved {
		return result, nil
	}

	c.refocusCard(result.Card.ID)
	logs.Logger.Info("card dropped", "id", result.Card.ID, "from", result.From, "to", result.To)
	return result, c.save()
}
