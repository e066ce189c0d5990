package kanban

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
	"kanban-tui/internal/tui/theme"
)

const (
	fieldLabel = iota
	fieldDescription
	fieldDetails
	fieldCount
)

// cardDialogResultMsg is sent when the card dialog is saved or cancelled.
// Saving with an empty title counts as cancelling.
type cardDialogResultMsg struct {
	label       string
	description string
	details     string
	editing     bool
	cancelled   bool
}

// CardDialogModel edits a card's title, description and details
type CardDialogModel struct {
	editing     bool
	label       textinput.Model
	description textinput.Model
	details     textarea.Model
	active      int
	err         string
}

// NewCardDialog opens a dialog prefilled with card when editing
func NewCardDialog(editing bool, card models.Card) *CardDialogModel {
	inputWidth := dialogWidth - 8

	label := textinput.New()
	label.Placeholder = "title"
	label.CharLimit = 256
	label.Width = inputWidth
	label.SetValue(card.Label)
	label.Focus()

	description := textinput.New()
	description.Placeholder = "one line summary"
	description.CharLimit = 512
	description.Width = inputWidth
	description.SetValue(card.Description)

	details := textarea.New()
	details.Placeholder = "notes, checklists, links..."
	details.ShowLineNumbers = false
	details.CharLimit = 0
	details.SetWidth(inputWidth)
	details.SetHeight(6)
	details.SetValue(card.Details)

	return &CardDialogModel{
		editing:     editing,
		label:       label,
		description: description,
		details:     details,
	}
}

func (m *CardDialogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys: tab/shift+tab cycle fields, ctrl+s saves from any
// field, enter saves from the single-line fields, esc cancels.
func (m *CardDialogModel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			editing := m.editing
			return func() tea.Msg {
				return cardDialogResultMsg{editing: editing, cancelled: true}
			}
		case "tab":
			return m.setActive((m.active + 1) % fieldCount)
		case "shift+tab":
			return m.setActive((m.active + fieldCount - 1) % fieldCount)
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.active != fieldDetails {
				return m.submit()
			}
		}
		m.err = ""
	}

	var cmd tea.Cmd
	switch m.active {
	case fieldLabel:
		m.label, cmd = m.label.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldDetails:
		m.details, cmd = m.details.Update(msg)
	}
	return cmd
}

func (m *CardDialogModel) setActive(field int) tea.Cmd {
	m.active = field
	m.label.Blur()
	m.description.Blur()
	m.details.Blur()

	switch field {
	case fieldLabel:
		return m.label.Focus()
	case fieldDescription:
		return m.description.Focus()
	default:
		return m.details.Focus()
	}
}

func (m *CardDialogModel) submit() tea.Cmd {
	result := cardDialogResultMsg{
		description: strings.TrimSpace(m.description.Value()),
		details:     strings.TrimRight(m.details.Value(), " \n"),
		editing:     m.editing,
	}

	if isBlank(m.label.Value()) {
		result.cancelled = true
	} else {
		label, err := operations.ValidateLabel(m.label.Value())
		if err != nil {
			m.err = err.Error()
			return nil
		}
		result.label = label
	}

	return func() tea.Msg { return result }
}

func (m *CardDialogModel) View() string {
	title := "New card"
	if m.editing {
		title = "Edit card"
	}

	fieldTitle := func(field int, name string) string {
		if field == m.active {
			return dialogActiveStyle.Render("▸ " + name)
		}
		return dialogLabelStyle.Render("  " + name)
	}

	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(title) + "\n\n")
	b.WriteString(fieldTitle(fieldLabel, "Title") + "\n")
	b.WriteString(m.label.View() + "\n\n")
	b.WriteString(fieldTitle(fieldDescription, "Description") + "\n")
	b.WriteString(m.description.View() + "\n\n")
	b.WriteString(fieldTitle(fieldDetails, "Details") + "\n")
	b.WriteString(m.details.View() + "\n")

	if m.err != "" {
		b.WriteString("\n" + theme.Error.Render("Error: "+m.err) + "\n")
	}

	b.WriteString("\n" + theme.ModalHelp.Render("[tab] next field  [ctrl+s] save  [enter] save (title/description)  [esc] cancel"))

	return theme.ModalBox.Width(dialogWidth).Render(b.String())
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
