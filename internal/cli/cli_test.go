package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/fs"
	"kanban-tui/internal/kanban/models"
)

// setup returns a controller over a fresh board file and captures output
func setup(t *testing.T) (*controller.Controller, *fs.Store, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	store := fs.NewStore(filepath.Join(t.TempDir(), "board.json"))
	ctl, err := controller.New(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })

	return ctl, store, &out, &errOut
}

func onDisk(t *testing.T, store *fs.Store) models.Board {
	t.Helper()
	board, err := fs.ReadBoard(store.Path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	return board
}

func TestRun_Usage(t *testing.T) {
	ctl, _, out, _ := setup(t)

	if code := Run(nil, ctl); code != 1 {
		t.Errorf("expected exit 1 without args, got %d", code)
	}
	if code := Run([]string{"help"}, ctl); code != 0 {
		t.Errorf("expected exit 0 for help, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage: kanban") {
		t.Errorf("expected usage text, got %q", out.String())
	}
	if code := Run([]string{"nope"}, ctl); code != 1 {
		t.Errorf("expected exit 1 for unknown command, got %d", code)
	}
}

func TestCardAdd(t *testing.T) {
	ctl, store, out, _ := setup(t)

	code := Run([]string{"card", "add", "-c", "progress", "-d", "crash on start", "Fix", "bug"}, ctl)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	board := onDisk(t, store)
	cards := board.Columns[1].Cards
	if len(cards) != 1 || cards[0].Label != "Fix bug" || cards[0].Description != "crash on start" {
		t.Errorf("expected card in In Progress, got %+v", board)
	}
	if !strings.Contains(out.String(), cards[0].ID) {
		t.Errorf("expected ID in output, got %q", out.String())
	}
}

func TestCardAdd_EmptyLabel(t *testing.T) {
	ctl, store, _, errOut := setup(t)

	if code := Run([]string{"card", "add", "  "}, ctl); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "cannot be empty") {
		t.Errorf("expected validation error, got %q", errOut.String())
	}
	if onDisk(t, store).TotalCards() != 0 {
		t.Error("expected no card to be added")
	}
}

func TestCardMoveEditDelete(t *testing.T) {
	ctl, store, _, _ := setup(t)
	card, _, _ := ctl.AddCardTo(0, "Task", "desc", "details")
	prefix := card.ID[:8]

	if code := Run([]string{"card", "move", prefix, "Done"}, ctl); code != 0 {
		t.Fatalf("move: expected exit 0, got %d", code)
	}
	moved := onDisk(t, store).Columns[2].Cards
	if len(moved) != 1 || moved[0] != card {
		t.Errorf("expected card moved intact to Done, got %+v", moved)
	}

	if code := Run([]string{"card", "edit", "-l", "Renamed", prefix}, ctl); code != 0 {
		t.Fatalf("edit: expected exit 0, got %d", code)
	}
	edited := onDisk(t, store).Columns[2].Cards[0]
	if edited.Label != "Renamed" || edited.Description != "desc" || edited.Details != "details" {
		t.Errorf("expected only the label to change, got %+v", edited)
	}

	if code := Run([]string{"card", "delete", card.ID}, ctl); code != 0 {
		t.Fatalf("delete: expected exit 0, got %d", code)
	}
	if onDisk(t, store).TotalCards() != 0 {
		t.Error("expected card to be deleted")
	}
}

func TestCardShow_UnknownID(t *testing.T) {
	ctl, _, _, errOut := setup(t)

	if code := Run([]string{"card", "show", "deadbeef"}, ctl); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "no card found") {
		t.Errorf("expected not found error, got %q", errOut.String())
	}
}

func TestColumnCommands(t *testing.T) {
	ctl, store, _, _ := setup(t)

	if code := Run([]string{"column", "add", "Review"}, ctl); code != 0 {
		t.Fatalf("add: expected exit 0, got %d", code)
	}
	if code := Run([]string{"column", "rename", "3", "QA"}, ctl); code != 0 {
		t.Fatalf("rename: expected exit 0, got %d", code)
	}
	if got := onDisk(t, store).Columns[3].Title; got != "QA" {
		t.Errorf("expected QA, got %q", got)
	}
	if code := Run([]string{"column", "delete", "qa"}, ctl); code != 0 {
		t.Fatalf("delete: expected exit 0, got %d", code)
	}
	if n := len(onDisk(t, store).Columns); n != 3 {
		t.Errorf("expected 3 columns, got %d", n)
	}
	if code := Run([]string{"column", "delete", "9"}, ctl); code != 1 {
		t.Errorf("expected exit 1 for missing column, got %d", code)
	}
}

func TestBoardClear_RequiresYes(t *testing.T) {
	ctl, store, _, _ := setup(t)
	ctl.AddCardTo(0, "Task", "", "")

	if code := Run([]string{"board", "clear"}, ctl); code != 1 {
		t.Errorf("expected exit 1 without --yes, got %d", code)
	}
	if onDisk(t, store).TotalCards() != 1 {
		t.Error("board was cleared without confirmation")
	}

	if code := Run([]string{"board", "clear", "--yes"}, ctl); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if onDisk(t, store).TotalCards() != 0 {
		t.Error("expected empty board")
	}
}

func TestBoardShow(t *testing.T) {
	ctl, _, out, _ := setup(t)
	ctl.AddCardTo(1, "Write docs", "first line\nsecond", "")

	if code := Run([]string{"board"}, ctl); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, want := range []string{"1. In Progress (1)", "Write docs - first line...", "3 column(s), 1 card(s)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestExportImport(t *testing.T) {
	ctl, store, _, _ := setup(t)
	ctl.AddCardTo(0, "Task", "desc", "notes")
	mdPath := filepath.Join(t.TempDir(), "board.md")

	if code := Run([]string{"export", mdPath}, ctl); code != 0 {
		t.Fatalf("export: expected exit 0, got %d", code)
	}
	exported := onDisk(t, store)

	ctl.ClearBoard()
	if code := Run([]string{"import", mdPath}, ctl); code != 1 {
		t.Errorf("expected exit 1 without --yes, got %d", code)
	}
	if code := Run([]string{"import", "--yes", mdPath}, ctl); code != 0 {
		t.Fatalf("import: expected exit 0, got %d", code)
	}

	imported := onDisk(t, store)
	if imported.Columns[0].Cards[0] != exported.Columns[0].Cards[0] {
		t.Errorf("expected %+v, got %+v", exported.Columns[0].Cards[0], imported.Columns[0].Cards[0])
	}
}

func TestImport_MissingFile(t *testing.T) {
	ctl, _, _, _ := setup(t)

	if code := Run([]string{"import", "--yes", filepath.Join(os.TempDir(), "does-not-exist.md")}, ctl); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
}

func TestResolveColumn(t *testing.T) {
	board := models.DefaultBoard()

	tests := []struct {
		arg      string
		expected int
		wantErr  bool
	}{
		{"0", 0, false},
		{"2", 2, false},
		{"3", -1, true},
		{"Done", 2, false},
		{"done", 2, false},
		{"inq", 0, false},
		{"zzz", -1, true},
		{"", -1, true},
	}

	for _, tt := range tests {
		got, err := resolveColumn(board, tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveColumn(%q): unexpected error state %v", tt.arg, err)
		}
		if got != tt.expected {
			t.Errorf("resolveColumn(%q): expected %d, got %d", tt.arg, tt.expected, got)
		}
	}
}

func TestFindCardByPartialID(t *testing.T) {
	board := models.Board{Columns: []models.Column{
		{Title: "A", Cards: []models.Card{{ID: "abcd1111", Label: "one"}, {ID: "abcd2222", Label: "two"}}},
		{Title: "B", Cards: []models.Card{{ID: "ffff0000", Label: "three"}}},
	}}

	if col, card, err := findCardByPartialID(board, "ffff"); err != nil || col != 1 || card.Label != "three" {
		t.Errorf("expected card three in column 1, got %d %+v %v", col, card, err)
	}
	if _, _, err := findCardByPartialID(board, "abcd"); err == nil {
		t.Error("expected ambiguous prefix error")
	}
	if _, _, err := findCardByPartialID(board, "abc"); err == nil {
		t.Error("expected short prefix to be rejected")
	}
}
