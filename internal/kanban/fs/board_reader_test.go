package fs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"kanban-tui/internal/kanban/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "board.json"))
}

func TestLoad_MissingFileWritesDefault(t *testing.T) {
	store := testStore(t)

	board, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(board, models.DefaultBoard()) {
		t.Errorf("expected default board, got %+v", board)
	}

	onDisk, err := ReadBoard(store.Path)
	if err != nil {
		t.Fatalf("expected default board to be written: %v", err)
	}
	if !reflect.DeepEqual(onDisk, models.DefaultBoard()) {
		t.Errorf("expected default board on disk, got %+v", onDisk)
	}
}

func TestLoad_MissingDirectoryIsCreated(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "board.json"))

	if _, err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(store.Path); err != nil {
		t.Errorf("expected board file to exist: %v", err)
	}
}

func TestLoad_CorruptFileIsNotOverwritten(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"truncated json", `{"columns": [{"title": "A", "cards": [`},
		{"not json", "hello"},
		{"columns not a list", `{"columns": 5}`},
		{"missing columns", `{"lanes": []}`},
		{"card without label", `{"columns": [{"title": "A", "cards": [{"description": "x"}]}]}`},
		{"title wrong type", `{"columns": [{"title": 3, "cards": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStore(t)
			if err := os.WriteFile(store.Path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			board, err := store.Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(board, models.DefaultBoard()) {
				t.Errorf("expected default board, got %+v", board)
			}

			after, _ := os.ReadFile(store.Path)
			if string(after) != tt.content {
				t.Errorf("corrupt file was modified: %q", string(after))
			}
		})
	}
}

func TestDecodeBoard_CorruptIsSentinel(t *testing.T) {
	_, err := DecodeBoard([]byte("{"))
	if !errors.Is(err, ErrStorageCorrupt) {
		t.Errorf("expected ErrStorageCorrupt, got %v", err)
	}
}

func TestLoad_LegacyDocumentGetsIDs(t *testing.T) {
	store := testStore(t)
	legacy := `{
    "columns": [
        {"title": "Input Queue", "cards": [{"label": "Old", "description": "card"}]},
        {"title": "Done", "cards": []}
    ]
}`
	if err := os.WriteFile(store.Path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	board, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	card := board.Columns[0].Cards[0]
	if card.ID == "" {
		t.Error("expected legacy card to receive an ID")
	}
	if card.Label != "Old" || card.Description != "card" || card.Details != "" {
		t.Errorf("unexpected card: %+v", card)
	}

	// Load never writes an existing document back
	after, _ := os.ReadFile(store.Path)
	if string(after) != legacy {
		t.Error("legacy file was rewritten on load")
	}
}

func TestLoad_UnreadablePathReturnsError(t *testing.T) {
	// A directory in place of the board file is neither missing nor corrupt
	dir := t.TempDir()
	store := NewStore(dir)

	if _, err := store.Load(); err == nil {
		t.Error("expected an error reading a directory")
	}
}
