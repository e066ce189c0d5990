package drag

import (
	"reflect"
	"testing"

	"kanban-tui/internal/kanban/models"
)

// three columns, 20 cells wide, side by side
var columnRects = []Rect{
	{X: 0, Y: 2, W: 20, H: 30},
	{X: 20, Y: 2, W: 20, H: 30},
	{X: 40, Y: 2, W: 20, H: 30},
}

func testBoard() models.Board {
	return models.Board{Columns: []models.Column{
		{Title: "A", Cards: []models.Card{
			{ID: "1", Label: "one"},
			{ID: "2", Label: "two"},
		}},
		{Title: "B", Cards: []models.Card{}},
		{Title: "C", Cards: []models.Card{{ID: "3", Label: "three"}}},
	}}
}

func TestEnd_MovesAcrossColumns(t *testing.T) {
	board := testBoard()
	var r Resolver

	r.Begin(board.Columns[0].Cards[0], 0, Point{X: 5, Y: 6}, Point{X: 2, Y: 5})
	r.Update(Point{X: 30, Y: 10})
	result := r.End(&board, Point{X: 45, Y: 10}, columnRects)

	if !result.Moved || result.From != 0 || result.To != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(board.Columns[0].Cards) != 1 || board.Columns[0].Cards[0].ID != "2" {
		t.Errorf("expected card removed from column 0, got %+v", board.Columns[0].Cards)
	}
	last := board.Columns[2].Cards[len(board.Columns[2].Cards)-1]
	if last.ID != "1" {
		t.Errorf("expected card at tail of column 2, got %+v", board.Columns[2].Cards)
	}
	if r.Dragging() {
		t.Error("expected resolver to be idle after End")
	}
}

func TestEnd_OutsideAllColumnsIsNoOp(t *testing.T) {
	board := testBoard()
	before := board.Clone()
	var r Resolver

	r.Begin(board.Columns[0].Cards[0], 0, Point{X: 5, Y: 6}, Point{X: 2, Y: 5})
	result := r.End(&board, Point{X: 100, Y: 100}, columnRects)

	if result.Moved || result.Target {
		t.Errorf("expected no target, got %+v", result)
	}
	if !reflect.DeepEqual(board, before) {
		t.Error("board changed after drop outside columns")
	}
}

func TestEnd_SameColumnIsNoOp(t *testing.T) {
	board := testBoard()
	before := board.Clone()
	var r Resolver

	r.Begin(board.Columns[0].Cards[0], 0, Point{X: 5, Y: 6}, Point{X: 2, Y: 5})
	result := r.End(&board, Point{X: 10, Y: 20}, columnRects)

	if result.Moved {
		t.Errorf("expected no move, got %+v", result)
	}
	if !result.Target || result.To != 0 {
		t.Errorf("expected source column as target, got %+v", result)
	}
	if !reflect.DeepEqual(board, before) {
		t.Error("board changed after drop on source column")
	}
}

func TestEnd_WithoutBeginIsNoOp(t *testing.T) {
	board := testBoard()
	before := board.Clone()
	var r Resolver

	result := r.End(&board, Point{X: 45, Y: 10}, columnRects)
	if result.Moved {
		t.Error("expected no move without an active drag")
	}
	if !reflect.DeepEqual(board, before) {
		t.Error("board changed")
	}
}

func TestUpdate_TracksPointerOffset(t *testing.T) {
	var r Resolver
	r.Begin(models.Card{ID: "1"}, 0, Point{X: 5, Y: 6}, Point{X: 2, Y: 5})

	if r.Position() != (Point{X: 2, Y: 5}) {
		t.Errorf("expected initial position at card origin, got %+v", r.Position())
	}

	r.Update(Point{X: 15, Y: 16})
	if r.Position() != (Point{X: 12, Y: 15}) {
		t.Errorf("expected position to keep pointer offset, got %+v", r.Position())
	}
}

func TestUpdate_IdleIgnored(t *testing.T) {
	var r Resolver
	r.Update(Point{X: 9, Y: 9})
	if r.Position() != (Point{}) {
		t.Errorf("expected idle update to be ignored, got %+v", r.Position())
	}
}

func TestCancel(t *testing.T) {
	board := testBoard()
	before := board.Clone()
	var r Resolver

	r.Begin(board.Columns[0].Cards[0], 0, Point{}, Point{})
	r.Cancel()
	if r.Dragging() {
		t.Error("expected idle after cancel")
	}
	r.End(&board, Point{X: 45, Y: 10}, columnRects)
	if !reflect.DeepEqual(board, before) {
		t.Error("board changed after cancelled drag")
	}
}

func TestTargetColumn_FirstMatchWins(t *testing.T) {
	overlapping := []Rect{
		{X: 0, Y: 0, W: 30, H: 10},
		{X: 20, Y: 0, W: 30, H: 10},
	}
	if got := TargetColumn(Point{X: 25, Y: 5}, overlapping); got != 0 {
		t.Errorf("expected first rect, got %d", got)
	}
	if got := TargetColumn(Point{X: 35, Y: 5}, overlapping); got != 1 {
		t.Errorf("expected second rect, got %d", got)
	}
	if got := TargetColumn(Point{X: 35, Y: 10}, overlapping); got != -1 {
		t.Errorf("expected no rect on bottom edge, got %d", got)
	}
}

func TestEnd_IdentityFallbackForCardsWithoutID(t *testing.T) {
	board := models.Board{Columns: []models.Column{
		{Title: "A", Cards: []models.Card{{Label: "legacy", Description: "d"}}},
		{Title: "B", Cards: []models.Card{}},
	}}
	var r Resolver

	r.Begin(board.Columns[0].Cards[0], 0, Point{}, Point{})
	result := r.End(&board, Point{X: 25, Y: 5}, columnRects[:2])

	if !result.Moved {
		t.Fatalf("expected move, got %+v", result)
	}
	if len(board.Columns[1].Cards) != 1 || board.Columns[1].Cards[0].Label != "legacy" {
		t.Errorf("unexpected target column: %+v", board.Columns[1].Cards)
	}
}
