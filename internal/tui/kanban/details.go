package kanban

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/logs"
	"kanban-tui/internal/tui/shared"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

func (m BoardModel) updateDetails(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "i", " ", "enter":
		m.mode = boardModeNormal

	case "e":
		m.mode = boardModeNormal
		return m.openCardDialog(true)

	case "y":
		text := m.details.Details
		if text == "" {
			text = m.details.Label
			if m.details.Description != "" {
				text += "\n" + m.details.Description
			}
		}
		if err := writeClipboard(text); err != nil {
			logs.Logger.Warn("clipboard unavailable", "err", err)
			m.err = err
		} else {
			m.message = "Copied to clipboard"
		}
	}

	return m, nil
}

func (m BoardModel) renderDetails() string {
	card := m.details
	column := ""
	if f := m.ctl.Focus(); f.ColumnOf() >= 0 {
		column = m.ctl.Board().Columns[f.ColumnOf()].Title
	}

	var b strings.Builder
	b.WriteString(detailsLabelStyle.Render(card.Label) + "\n")
	if column != "" {
		b.WriteString(detailsColumnStyle.Render(column) + "\n")
	}
	if card.Description != "" {
		b.WriteString("\n" + detailsBodyStyle.Render(card.Description) + "\n")
	}
	if card.Details != "" {
		b.WriteString("\n" + detailsBodyStyle.Render(card.Details) + "\n")
	} else {
		b.WriteString("\n" + pathStyle.Render("(no details)") + "\n")
	}

	box := detailsBoxStyle.Render(strings.TrimRight(b.String(), "\n"))

	var status string
	if m.err != nil {
		status = errorStyle.Render("Error: " + m.err.Error())
	} else if m.message != "" {
		status = successStyle.Render(m.message)
	}
	hints := status + "\n" + helpStyle.Render("y: copy details • e: edit • esc: close")

	return shared.CenterWithBottomHints(shared.PlaceModal(box, m.width, 0), hints, m.height)
}
