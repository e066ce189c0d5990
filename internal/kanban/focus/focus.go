// Package focus computes keyboard focus movement over a board layout.
//
// A layout is the number of cards in each column. Focus is either a card
// (column + card index), an empty-column anchor, or nothing. Focus is never
// persisted: after a mutation the caller re-points it with Locate or Clamp.
package focus

import "kanban-tui/internal/kanban/models"

// Kind says what currently holds focus
type Kind int

const (
	None Kind = iota
	Card
	Column
)

// Direction is a navigation key
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Focus identifies the focused element. Card is only meaningful for Kind Card.
type Focus struct {
	Kind   Kind
	Column int
	Card   int
}

// Layout is the card count of each column, left to right
type Layout []int

// LayoutOf returns the layout of a board
func LayoutOf(board models.Board) Layout {
	return Layout(board.CardCounts())
}

// OnCard returns a card focus
func OnCard(column, card int) Focus {
	return Focus{Kind: Card, Column: column, Card: card}
}

// OnColumn returns a column-anchor focus
func OnColumn(column int) Focus {
	return Focus{Kind: Column, Column: column}
}

// Valid reports whether f addresses an element that exists in the layout.
// A column anchor is only valid on an empty column.
func (l Layout) Valid(f Focus) bool {
	switch f.Kind {
	case Card:
		return f.Column >= 0 && f.Column < len(l) && f.Card >= 0 && f.Card < l[f.Column]
	case Column:
		return f.Column >= 0 && f.Column < len(l) && l[f.Column] == 0
	}
	return false
}

// Move returns the focus after pressing dir. Invalid or unfocused input and
// moves past an edge leave the focus unchanged.
func Move(l Layout, f Focus, dir Direction) Focus {
	if !l.Valid(f) {
		return f
	}

	switch dir {
	case Up:
		if f.Kind == Card && f.Card > 0 {
			return OnCard(f.Column, f.Card-1)
		}
	case Down:
		if f.Kind == Card && f.Card < l[f.Column]-1 {
			return OnCard(f.Column, f.Card+1)
		}
	case Left:
		if f.Column > 0 {
			return enterColumn(l, f.Column-1)
		}
	case Right:
		if f.Column < len(l)-1 {
			return enterColumn(l, f.Column+1)
		}
	}

	return f
}

// enterColumn focuses the first card of a column, or its anchor when empty
func enterColumn(l Layout, column int) Focus {
	if l[column] > 0 {
		return OnCard(column, 0)
	}
	return OnColumn(column)
}

// Initial returns the starting focus: the first column's first card or anchor
func Initial(l Layout) Focus {
	if len(l) == 0 {
		return Focus{}
	}
	return enterColumn(l, 0)
}

// Locate returns the focus of the card with the given ID
func Locate(board models.Board, id string) (Focus, bool) {
	for i, col := range board.Columns {
		for j, card := range col.Cards {
			if card.ID == id {
				return OnCard(i, j), true
			}
		}
	}
	return Focus{}, false
}

// Clamp re-points a focus that may have gone stale after cards or columns
// were removed: the same slot if it still exists, else the nearest card in
// the same column, else that column's anchor. An anchor left on a column that
// now holds cards moves to its first card. The column index is clamped to the
// last column first.
func Clamp(l Layout, f Focus) Focus {
	if l.Valid(f) {
		return f
	}
	if len(l) == 0 {
		return Focus{}
	}
	if f.Kind == None {
		return Initial(l)
	}

	column := min(max(f.Column, 0), len(l)-1)
	if f.Kind == Column || l[column] == 0 {
		return enterColumn(l, column)
	}
	return OnCard(column, min(max(f.Card, 0), l[column]-1))
}

// ColumnOf returns the column that holds focus, or -1 without focus
func (f Focus) ColumnOf() int {
	if f.Kind == None {
		return -1
	}
	return f.Column
}
