// Package drag resolves pointer drag gestures into card moves.
package drag

import (
	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
)

// Point is a screen cell position
type Point struct {
	X, Y int
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is a screen region; X/Y is the top-left cell
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Origin returns the top-left cell of r
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

type state int

const (
	idle state = iota
	dragging
)

// Result describes how a drag ended
type Result struct {
	Card   models.Card
	From   int
	To     int
	Moved  bool
	Target bool // false when released outside every column
}

// Resolver tracks one drag gesture: Idle -> Dragging -> Idle
type Resolver struct {
	state  state
	card   models.Card
	source int
	offset Point
	visual Point
}

// Dragging reports whether a gesture is in progress
func (r *Resolver) Dragging() bool {
	return r.state == dragging
}

// Card returns the dragged card and its source column
func (r *Resolver) Card() (models.Card, int) {
	return r.card, r.source
}

// Position returns where the dragged card should be drawn
func (r *Resolver) Position() Point {
	return r.visual
}

// Begin starts dragging card from column source. origin is where the card is
// drawn; the pointer-to-card offset is kept so the card follows the pointer
// without jumping.
func (r *Resolver) Begin(card models.Card, source int, pointer, origin Point) {
	r.state = dragging
	r.card = card
	r.source = source
	r.offset = pointer.Sub(origin)
	r.visual = origin
}

// Update moves the card's drawn position with the pointer
func (r *Resolver) Update(pointer Point) {
	if r.state != dragging {
		return
	}
	r.visual = pointer.Sub(r.offset)
}

// Cancel abandons the gesture without touching the board
func (r *Resolver) Cancel() {
	*r = Resolver{}
}

// End finishes the gesture. The target is the first column rect, left to
// right, containing pointer. The card is moved to the tail of the target only
// when the target differs from the source column; otherwise the board is left
// untouched and the card snaps back.
func (r *Resolver) End(board *models.Board, pointer Point, columns []Rect) Result {
	if r.state != dragging {
		return Result{}
	}
	card, source := r.card, r.source
	r.Cancel()

	result := Result{Card: card, From: source, To: source}

	target := TargetColumn(pointer, columns)
	if target < 0 {
		return result
	}
	result.Target = true
	result.To = target

	if target == source {
		return result
	}

	result.Moved = operations.MoveCard(board, models.RefOf(card), source, target-source)
	if !result.Moved {
		result.To = source
	}
	return result
}

// TargetColumn returns the index of the first rect containing p, or -1
func TargetColumn(p Point, columns []Rect) int {
	for i, rect := range columns {
		if rect.Contains(p) {
			return i
		}
	}
	return -1
}
