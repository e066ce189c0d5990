package operations

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"kanban-tui/internal/kanban/models"
)

func TestAddColumn_Appends(t *testing.T) {
	board := models.Board{Columns: []models.Column{}}

	AddColumn(&board, "A")
	AddColumn(&board, "A")

	if len(board.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(board.Columns))
	}
	if board.Columns[1].Title != "A" {
		t.Errorf("expected duplicate title to be accepted, got %q", board.Columns[1].Title)
	}
	if board.Columns[1].Cards == nil {
		t.Error("expected non-nil card slice")
	}
}

func TestDeleteColumn_RemovesCards(t *testing.T) {
	board := boardWith(column("A", "one"), column("B", "two", "three"), column("C"))

	if err := DeleteColumn(&board, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(board.Columns))
	}
	if board.Columns[1].Title != "C" {
		t.Errorf("expected C to shift left, got %q", board.Columns[1].Title)
	}
	if board.TotalCards() != 1 {
		t.Errorf("expected deleted column's cards to be gone, %d cards remain", board.TotalCards())
	}
}

func TestDeleteColumn_OutOfRange(t *testing.T) {
	board := boardWith(column("A"))
	before := board.Clone()

	for _, idx := range []int{-1, 1} {
		if err := DeleteColumn(&board, idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if !reflect.DeepEqual(board, before) {
		t.Error("board changed after rejected delete")
	}
}

func TestRenameColumn_ByIndexWithDuplicateTitles(t *testing.T) {
	board := boardWith(column("Same"), column("Same"))

	if err := RenameColumn(&board, 1, "Second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if board.Columns[0].Title != "Same" || board.Columns[1].Title != "Second" {
		t.Errorf("expected only the indexed column renamed, got %q / %q", board.Columns[0].Title, board.Columns[1].Title)
	}
}

func TestRenameColumn_OutOfRange(t *testing.T) {
	board := boardWith(column("A"))
	if err := RenameColumn(&board, 4, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestEnsureColumns(t *testing.T) {
	board := models.Board{}
	if !EnsureColumns(&board) {
		t.Error("expected default columns to be installed")
	}
	if len(board.Columns) != 3 {
		t.Errorf("expected 3 columns, got %d", len(board.Columns))
	}

	if EnsureColumns(&board) {
		t.Error("expected no change on a board with columns")
	}
}

func TestResetBoard(t *testing.T) {
	board := boardWith(column("X", "a", "b"))
	ResetBoard(&board)

	if !reflect.DeepEqual(board, models.DefaultBoard()) {
		t.Errorf("expected default board, got %+v", board)
	}
}

func TestValidateColumnTitle(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"  Review  ", "Review", false},
		{"", "", true},
		{"   ", "", true},
		{strings.Repeat("x", 50), strings.Repeat("x", 50), false},
		{strings.Repeat("x", 51), "", true},
		{strings.Repeat("ü", 50), strings.Repeat("ü", 50), false},
	}

	for _, tt := range tests {
		got, err := ValidateColumnTitle(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateColumnTitle(%q): expected error=%v, got %v", tt.input, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("ValidateColumnTitle(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestValidateLabel(t *testing.T) {
	if _, err := ValidateLabel(" "); err == nil {
		t.Error("expected error for blank label")
	}
	got, err := ValidateLabel(" Fix bug ")
	if err != nil || got != "Fix bug" {
		t.Errorf("expected \"Fix bug\", got %q (%v)", got, err)
	}
}
