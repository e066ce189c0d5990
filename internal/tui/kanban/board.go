package kanban

import (
	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/focus"
	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
	"kanban-tui/internal/logs"
	"kanban-tui/internal/tui/shared"
)

type boardMode int

const (
	boardModeNormal boardMode = iota
	boardModeCardDialog
	boardModeColumnDialog
	boardModeConfirm
	boardModeDetails
)

// pendingAction is what a confirmation or column dialog applies on success
type pendingAction int

const (
	actionNone pendingAction = iota
	actionDeleteCard
	actionDeleteColumn
	actionClearBoard
	actionAddColumn
	actionRenameColumn
)

type BoardModel struct {
	ctl        *controller.Controller
	boardPath  string
	mouse      bool
	mode       boardMode
	pending    pendingAction
	width      int
	height     int
	err        error
	message    string
	cardDialog *CardDialogModel
	textInput  *shared.TextInputModel
	confirm    *confirmDialog
	details    models.Card
	hover      int   // column under the pointer while dragging, or -1
	vOffsets   []int // first visible card per column
	hOffset    int   // first visible column
}

func NewBoardModel(ctl *controller.Controller, boardPath string, mouse bool) BoardModel {
	m := BoardModel{
		ctl:       ctl,
		boardPath: boardPath,
		mouse:     mouse,
		hover:     -1,
	}
	m.syncScroll()
	return m
}

// SetSize updates the view dimensions
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.syncScroll()
}

// IsModal returns true while a dialog, confirmation or details view is open
func (m BoardModel) IsModal() bool {
	return m.mode != boardModeNormal || m.ctl.Dragging()
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles board events as a child view
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case cardDialogResultMsg:
		return m.applyCardDialog(msg)

	case shared.TextInputResultMsg:
		return m.applyColumnDialog(msg)

	case confirmResultMsg:
		return m.applyConfirmation(msg)

	case tea.MouseMsg:
		if !m.mouse || m.mode != boardModeNormal {
			return m, nil
		}
		return m.updateMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case boardModeNormal:
			return m.updateNormal(msg)
		case boardModeCardDialog:
			return m, m.cardDialog.Update(msg)
		case boardModeColumnDialog:
			return m, m.textInput.Update(msg)
		case boardModeConfirm:
			return m, m.confirm.Update(msg)
		case boardModeDetails:
			return m.updateDetails(msg)
		}
	}

	// Cursor blink and other ticks go to the open input
	switch m.mode {
	case boardModeCardDialog:
		return m, m.cardDialog.Update(msg)
	case boardModeColumnDialog:
		return m, m.textInput.Update(msg)
	}

	return m, nil
}

func (m BoardModel) updateNormal(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	m.message = ""
	m.err = nil

	if m.ctl.Dragging() {
		if msg.String() == "esc" {
			m.ctl.CancelDrag()
			m.hover = -1
			m.message = "Drag cancelled"
		}
		return m, nil
	}

	switch msg.String() {
	case "k", "up":
		m.ctl.FocusUp()
	case "j", "down":
		m.ctl.FocusDown()
	case "h", "left":
		m.ctl.FocusLeft()
	case "l", "right":
		m.ctl.FocusRight()

	case "H", "shift+left":
		if m.commit(m.ctl.MoveCardLeft()) {
			m.message = "Card moved"
		}
	case "L", "shift+right":
		if m.commit(m.ctl.MoveCardRight()) {
			m.message = "Card moved"
		}

	case "a", "n":
		return m.openCardDialog(false)

	case "e", "enter":
		if _, ok := m.ctl.FocusedCard(); ok {
			return m.openCardDialog(true)
		}

	case "i", " ":
		if card, ok := m.ctl.CardDetails(); ok {
			m.details = card
			m.mode = boardModeDetails
		}

	case "d", "D":
		if card, ok := m.ctl.FocusedCard(); ok {
			m.openConfirm(newDeleteCardConfirm(card))
		}

	case "c":
		return m.openColumnDialog(actionAddColumn, "")

	case "r":
		if col := m.ctl.FocusedColumn(); col >= 0 {
			return m.openColumnDialog(actionRenameColumn, m.ctl.Board().Columns[col].Title)
		}

	case "x":
		if col := m.ctl.FocusedColumn(); col >= 0 {
			m.openConfirm(newDeleteColumnConfirm(m.ctl.Board().Columns[col]))
		}

	case "X", "ctrl+x":
		m.openConfirm(newClearBoardConfirm(m.ctl.Board()))
	}

	m.syncScroll()
	return m, nil
}

// commit records a failed save in the status line and reports whether the
// command changed the board
func (m *BoardModel) commit(changed bool, err error) bool {
	if err != nil {
		logs.Logger.Error("saving board failed", "path", m.boardPath, "err", err)
		m.err = err
		return false
	}
	return changed
}

func (m *BoardModel) openConfirm(d *confirmDialog) {
	m.confirm = d
	m.mode = boardModeConfirm
}

func (m BoardModel) applyConfirmation(msg confirmResultMsg) (BoardModel, tea.Cmd) {
	if m.confirm == nil || m.confirm.action != msg.action {
		return m, nil
	}
	m.mode = boardModeNormal
	m.confirm = nil

	if !msg.confirmed {
		return m, nil
	}

	switch msg.action {
	case actionDeleteCard:
		if m.commit(m.ctl.DeleteCard()) {
			m.message = "Card deleted"
		}
	case actionDeleteColumn:
		if m.commit(m.ctl.DeleteColumn()) {
			m.message = "Column deleted"
		}
	case actionClearBoard:
		if m.commit(true, m.ctl.ClearBoard()) {
			m.message = "Board cleared"
		}
	}

	m.syncScroll()
	return m, nil
}

func (m BoardModel) openColumnDialog(action pendingAction, current string) (BoardModel, tea.Cmd) {
	title := "New column"
	if action == actionRenameColumn {
		title = "Rename column"
	}

	m.textInput = shared.NewTextInput(title, "Title", "column title", validateOptionalColumnTitle)
	m.textInput.SetWidth(dialogWidth)
	m.textInput.SetValue(current)
	m.pending = action
	m.mode = boardModeColumnDialog
	return m, m.textInput.Input.Focus()
}

// validateOptionalColumnTitle accepts an empty title, which cancels the dialog
func validateOptionalColumnTitle(title string) error {
	if isBlank(title) {
		return nil
	}
	_, err := operations.ValidateColumnTitle(title)
	return err
}

func (m BoardModel) applyColumnDialog(msg shared.TextInputResultMsg) (BoardModel, tea.Cmd) {
	action := m.pending
	m.mode = boardModeNormal
	m.pending = actionNone
	m.textInput = nil

	if msg.Cancelled || isBlank(msg.Value) {
		return m, nil
	}

	title, err := operations.ValidateColumnTitle(msg.Value)
	if err != nil {
		m.err = err
		return m, nil
	}

	switch action {
	case actionAddColumn:
		if m.commit(true, m.ctl.AddColumn(title)) {
			m.message = "Column added"
		}
	case actionRenameColumn:
		if m.commit(m.ctl.RenameColumn(title)) {
			m.message = "Column renamed"
		}
	}

	m.syncScroll()
	return m, nil
}

func (m BoardModel) openCardDialog(editing bool) (BoardModel, tea.Cmd) {
	var card models.Card
	if editing {
		card, _ = m.ctl.FocusedCard()
	}
	m.cardDialog = NewCardDialog(editing, card)
	m.mode = boardModeCardDialog
	return m, m.cardDialog.Init()
}

func (m BoardModel) applyCardDialog(msg cardDialogResultMsg) (BoardModel, tea.Cmd) {
	m.mode = boardModeNormal
	m.cardDialog = nil

	if msg.cancelled {
		return m, nil
	}

	if msg.editing {
		if m.commit(m.ctl.EditCard(msg.label, msg.description, msg.details)) {
			m.message = "Card updated"
		}
	} else {
		_, err := m.ctl.AddCard(msg.label, msg.description, msg.details)
		if m.commit(true, err) {
			m.message = "Card added"
		}
	}

	m.syncScroll()
	return m, nil
}

// syncScroll keeps the focused column and card inside the viewport
func (m *BoardModel) syncScroll() {
	board := m.ctl.Board()
	if len(m.vOffsets) != len(board.Columns) {
		offsets := make([]int, len(board.Columns))
		copy(offsets, m.vOffsets)
		m.vOffsets = offsets
	}

	f := m.ctl.Focus()
	column := f.ColumnOf()
	m.hOffset = ensureColumnVisible(m.width, m.hOffset, column, len(board.Columns))

	if f.Kind == focus.Card {
		area := cardAreaHeight(columnHeightFor(m.height))
		cards := board.Columns[f.Column].Cards
		m.vOffsets[f.Column] = ensureCardVisible(cards, m.vOffsets[f.Column], f.Card, area)
	}
	for i, col := range board.Columns {
		m.vOffsets[i] = min(m.vOffsets[i], max(len(col.Cards)-1, 0))
	}
}

func (m BoardModel) geometry() geometry {
	return computeGeometry(m.ctl.Board(), m.width, m.height, m.hOffset, m.vOffsets)
}
