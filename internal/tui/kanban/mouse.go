package kanban

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/kanban/drag"
	"kanban-tui/internal/kanban/focus"
)

// updateMouse handles clicks, wheel scrolling and card drag and drop.
// Pressing on a card focuses it and starts a drag; releasing over another
// column moves the card there.
func (m BoardModel) updateMouse(msg tea.MouseMsg) (BoardModel, tea.Cmd) {
	p := drag.Point{X: msg.X, Y: msg.Y}
	g := m.geometry()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if col := g.columnAt(p); col >= 0 {
			m.vOffsets[col] = max(m.vOffsets[col]-1, 0)
		}
		return m, nil

	case msg.Button == tea.MouseButtonWheelDown:
		if col := g.columnAt(p); col >= 0 {
			m.vOffsets[col]++
			m.syncScroll()
		}
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.message = ""
		m.err = nil

		col, card, ok := g.cardAt(p)
		switch {
		case ok:
			if m.ctl.BeginDrag(col, card.index, p, card.rect.Origin()) {
				m.hover = col
			}
		case col >= 0:
			m.focusColumn(col)
		}

	case msg.Action == tea.MouseActionMotion:
		if m.ctl.Dragging() {
			m.ctl.UpdateDrag(p)
			m.hover = g.columnAt(p)
		}

	case msg.Action == tea.MouseActionRelease:
		if !m.ctl.Dragging() {
			return m, nil
		}
		result, err := m.ctl.EndDrag(p, g.columnRects())
		m.hover = -1
		if m.commit(result.Moved, err) {
			m.message = fmt.Sprintf("Moved to %s", m.ctl.Board().Columns[result.To].Title)
		}
	}

	m.syncScroll()
	return m, nil
}

// focusColumn focuses the first visible card of a column, or its anchor
func (m *BoardModel) focusColumn(col int) {
	board := m.ctl.Board()
	if len(board.Columns[col].Cards) == 0 {
		m.ctl.SetFocus(focus.OnColumn(col))
		return
	}
	m.ctl.SetFocus(focus.OnCard(col, min(m.vOffsets[col], len(board.Columns[col].Cards)-1)))
}
