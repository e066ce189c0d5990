package kanban

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kanban-tui/internal/kanban/focus"
	"kanban-tui/internal/tui/shared"
	"kanban-tui/internal/tui/theme"
)

func (m BoardModel) View() string {
	switch m.mode {
	case boardModeCardDialog:
		return shared.PlaceModal(m.cardDialog.View(), m.width, m.height)
	case boardModeColumnDialog:
		return shared.PlaceModal(m.textInput.View(), m.width, m.height)
	case boardModeConfirm:
		return shared.PlaceModal(m.confirm.View(), m.width, m.height)
	case boardModeDetails:
		return m.renderDetails()
	}

	var s strings.Builder

	// Header
	board := m.ctl.Board()
	header := fmt.Sprintf("%s · %d card(s)", filepath.Base(m.boardPath), board.TotalCards())
	s.WriteString(titleStyle.Render("Kanban"))
	s.WriteString(pathStyle.Render(shared.Truncate(header, max(m.width-10, 0))))
	s.WriteString("\n\n")

	// Columns
	g := m.geometry()
	if len(g.columns) == 0 {
		empty := lipgloss.NewStyle().Height(g.columnHeight).Padding(0, indicatorWidth).
			Render(pathStyle.Render("No columns. Press c to add one, or a to add a card to the default columns."))
		s.WriteString(empty)
	} else {
		views := make([]string, 0, len(g.columns)+2)
		views = append(views, m.renderScrollIndicator(g.start > 0, "◀", g.columnHeight))
		for _, slot := range g.columns {
			views = append(views, m.renderColumn(slot, g.columnHeight))
		}
		views = append(views, m.renderScrollIndicator(g.end < g.total, "▶", g.columnHeight))
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	s.WriteString("\n")

	// Status message, error or drag state
	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.ctl.Dragging():
		label, _, _ := m.ctl.DragState()
		target := "(release over a column)"
		if m.hover >= 0 && m.hover < len(board.Columns) {
			target = "→ " + board.Columns[m.hover].Title
		}
		s.WriteString(warningStyle.Render(fmt.Sprintf("Dragging %q %s", label, target)))
	case m.message != "":
		s.WriteString(successStyle.Render(m.message))
	}
	s.WriteString("\n")

	// Help
	helpText := "hjkl: navigate • H/L: move card • a: add • e: edit • i: details • d: delete • c/r/x: add/rename/delete column • ?: help • q: quit"
	if m.ctl.Dragging() {
		helpText = "release over a column to drop • esc: cancel"
	}
	s.WriteString(helpStyle.Render(shared.Truncate(helpText, max(m.width-2, 0))))

	return s.String()
}

func (m BoardModel) renderColumn(slot columnSlot, height int) string {
	board := m.ctl.Board()
	col := board.Columns[slot.index]
	f := m.ctl.Focus()
	selected := f.Kind != focus.None && f.ColumnOf() == slot.index
	area := cardAreaHeight(height)

	var lines []string

	// Column title
	colTitleStyle := columnTitleStyle
	if selected {
		colTitleStyle = selectedColumnTitleStyle
	}
	title := fmt.Sprintf("%s (%d)", col.Title, len(col.Cards))
	lines = append(lines, colTitleStyle.Render(shared.Truncate(title, columnWidth-2*columnPaddingHorizontal)))

	// Top scroll indicator (always reserve space)
	if slot.above > 0 {
		lines = append(lines, scrollIndicatorStyle.Render(fmt.Sprintf("▲ +%d above", slot.above)))
	} else {
		lines = append(lines, "")
	}

	// Cards, padded to the card area
	var cardLines []string
	if len(col.Cards) == 0 {
		cardLines = append(cardLines, cardPreviewStyle.Render("(empty)"))
	}
	for _, c := range slot.cards {
		cardLines = append(cardLines, strings.Split(m.renderCard(slot.index, c), "\n")...)
		cardLines = append(cardLines, "")
	}
	for len(cardLines) < area {
		cardLines = append(cardLines, "")
	}
	lines = append(lines, cardLines[:area]...)

	// Bottom scroll indicator
	if slot.below > 0 {
		lines = append(lines, scrollIndicatorStyle.Render(fmt.Sprintf("▼ +%d below", slot.below)))
	} else {
		lines = append(lines, "")
	}

	style := columnStyle
	switch {
	case m.ctl.Dragging() && slot.index == m.hover:
		style = dropTargetColumnStyle
	case selected:
		style = selectedColumnStyle
	}

	return style.Height(height - 2*columnBorderWidth).Render(strings.Join(lines, "\n"))
}

func (m BoardModel) renderCard(colIndex int, slot cardSlot) string {
	card := slot.card

	title := card.Label
	width := cardTextWidth
	mark := ""
	if card.Details != "" {
		mark = " " + cardDetailsMarkStyle.Render("≡")
		width -= 2
	}

	f := m.ctl.Focus()
	isSelected := f.Kind == focus.Card && f.Column == colIndex && f.Card == slot.index

	tStyle := cardTitleStyle
	if isSelected {
		tStyle = tStyle.Background(theme.Surface)
	}
	lines := []string{tStyle.Render(shared.Truncate(title, width)) + mark}

	if !isBlank(card.Description) {
		lines = append(lines, cardPreviewStyle.Render(shared.Truncate(card.Description, cardTextWidth)))
	}

	style := cardStyle
	if dragged, source := m.draggedCard(); dragged == card.ID && source == colIndex {
		style = draggedCardStyle
	} else if isSelected {
		style = selectedCardStyle
	}

	return style.Render(strings.Join(lines, "\n"))
}

// draggedCard returns the dragged card's ID and source column, if any
func (m BoardModel) draggedCard() (string, int) {
	if !m.ctl.Dragging() {
		return "", -1
	}
	f := m.ctl.Focus()
	card, ok := m.ctl.FocusedCard()
	if !ok {
		return "", -1
	}
	return card.ID, f.Column
}

// renderScrollIndicator renders ◀ and ▶ indicators for horizontal scrolling
func (m BoardModel) renderScrollIndicator(show bool, symbol string, height int) string {
	indicator := " "
	if show {
		indicator = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render(symbol)
	}
	return lipgloss.NewStyle().
		Width(indicatorWidth).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(indicator)
}
