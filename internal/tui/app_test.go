package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/config"
	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/models"
)

type nopStore struct{}

func (nopStore) Load() (models.Board, error) { return models.DefaultBoard(), nil }
func (nopStore) Save(models.Board) error     { return nil }

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	ctl, err := controller.New(nopStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := &config.Config{BoardFile: "/tmp/board.json", Mouse: true}
	model, _ := NewAppModel(cfg, ctl).Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	return model.(AppModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_LoadingUntilSized(t *testing.T) {
	ctl, _ := controller.New(nopStore{})
	app := NewAppModel(&config.Config{}, ctl)
	if app.View() != "Loading..." {
		t.Errorf("expected loading view, got %q", app.View())
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runes("?"))
	app = model.(AppModel)
	if !app.showHelp || !strings.Contains(app.View(), "Keyboard Shortcuts") {
		t.Fatal("expected help overlay")
	}

	model, _ = app.Update(runes("x"))
	app = model.(AppModel)
	if app.showHelp {
		t.Error("expected any key to close help")
	}
}

func TestApp_QuitKeys(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command for ctrl+c")
	}
}

func TestApp_QuitKeyGoesToOpenDialog(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runes("a"))
	app = model.(AppModel)
	model, _ = app.Update(runes("q"))
	app = model.(AppModel)

	if !app.boardView.IsModal() {
		t.Error("expected the card dialog to stay open")
	}
}
