package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kanban-tui/internal/config"
	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/logs"
	kanbanview "kanban-tui/internal/tui/kanban"
	"kanban-tui/internal/tui/shared"
)

// statusBarHeight is the border line plus the hint line
const statusBarHeight = 2

// AppModel is the root model: it owns the window size, the help overlay and
// the global quit keys, and forwards everything else to the board view.
type AppModel struct {
	cfg       *config.Config
	boardView kanbanview.BoardModel
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, ctl *controller.Controller) AppModel {
	return AppModel{
		cfg:       cfg,
		boardView: kanbanview.NewBoardModel(ctl, cfg.BoardFile, cfg.Mouse),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.boardView.SetSize(msg.Width, msg.Height-statusBarHeight)
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Dialogs and drags get every key
		if !m.boardView.IsModal() {
			switch msg.String() {
			case "q":
				logs.Logger.Info("quitting")
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.boardView, cmd = m.boardView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup("Kanban - Keyboard Shortcuts", kanbanview.HelpSections(), m.width, m.height)
	}

	content := m.boardView.View()

	statusText := m.cfg.BoardFile + " | ?: help | q: quit"
	if !m.cfg.Mouse {
		statusText += " | mouse off"
	}
	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(shared.Truncate(statusText, m.width)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}
