package kanban

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/tui/shared"
)

// confirmDialog asks before a destructive board command. Cancel starts out
// selected, so enter alone never removes anything.
type confirmDialog struct {
	action  pendingAction
	title   string
	subject string   // card label, column title or board summary
	notes   []string // what goes with it
	verb    string
	yes     bool // confirm button selected
}

// confirmResultMsg carries the action back so a stale dialog cannot apply
// a different one
type confirmResultMsg struct {
	action    pendingAction
	confirmed bool
}

func newDeleteCardConfirm(card models.Card) *confirmDialog {
	d := &confirmDialog{
		action:  actionDeleteCard,
		title:   "Delete card",
		subject: card.Label,
		verb:    "Delete",
	}
	if card.Description != "" {
		d.notes = append(d.notes, card.Description)
	}
	if strings.TrimSpace(card.Details) != "" {
		d.notes = append(d.notes, "Its details are deleted too.")
	}
	return d
}

func newDeleteColumnConfirm(column models.Column) *confirmDialog {
	d := &confirmDialog{
		action:  actionDeleteColumn,
		title:   "Delete column",
		subject: column.Title,
		verb:    "Delete",
	}
	if n := len(column.Cards); n > 0 {
		d.notes = append(d.notes, fmt.Sprintf("%d card(s) are deleted with it.", n))
	} else {
		d.notes = append(d.notes, "The column is empty.")
	}
	return d
}

func newClearBoardConfirm(board models.Board) *confirmDialog {
	return &confirmDialog{
		action:  actionClearBoard,
		title:   "Clear board",
		subject: fmt.Sprintf("%d column(s), %d card(s)", len(board.Columns), board.TotalCards()),
		notes:   []string{"Every card is removed and the default columns are restored."},
		verb:    "Clear",
	}
}

func (d *confirmDialog) result(confirmed bool) tea.Cmd {
	action := d.action
	return func() tea.Msg {
		return confirmResultMsg{action: action, confirmed: confirmed}
	}
}

// Update handles keys: y confirms, n/esc/q cancel, arrows pick a button and
// enter applies the selected one
func (d *confirmDialog) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		return d.result(true)
	case "n", "esc", "q":
		return d.result(false)
	case "left", "right", "h", "l", "tab", "shift+tab":
		d.yes = !d.yes
	case "enter":
		return d.result(d.yes)
	}
	return nil
}

func (d *confirmDialog) View() string {
	inner := dialogWidth - 6

	var s strings.Builder
	s.WriteString(confirmTitleStyle.Render(d.title))
	s.WriteString("\n\n")
	s.WriteString(confirmSubjectStyle.Render(shared.Truncate(d.subject, inner)))
	s.WriteString("\n")
	for _, note := range d.notes {
		s.WriteString(confirmNoteStyle.Render(shared.Truncate(note, inner)))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	cancel, confirm := confirmButtonStyle, confirmButtonStyle
	if d.yes {
		confirm = confirmDangerButtonStyle
	} else {
		cancel = confirmSelectedButtonStyle
	}
	s.WriteString(cancel.Render("Cancel"))
	s.WriteString("  ")
	s.WriteString(confirm.Render(d.verb))
	s.WriteString("\n\n")
	s.WriteString(confirmHelpStyle.Render(fmt.Sprintf("y %s · n/esc cancel · ←/→ choose", strings.ToLower(d.verb))))

	return confirmBoxStyle.Render(s.String())
}
