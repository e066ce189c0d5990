package models

// Default column titles for a fresh board
var DefaultColumnTitles = []string{"Input Queue", "In Progress", "Done"}

// Board represents a kanban board: an ordered list of columns, left to right
type Board struct {
	Columns []Column `json:"columns"`
}

// Column represents a titled lane holding an ordered list of cards
type Column struct {
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// DefaultBoard returns the three-column board used for new and corrupt stores
func DefaultBoard() Board {
	columns := make([]Column, 0, len(DefaultColumnTitles))
	for _, title := range DefaultColumnTitles {
		columns = append(columns, Column{Title: title, Cards: []Card{}})
	}
	return Board{Columns: columns}
}

// HasColumn reports whether index addresses an existing column
func (b *Board) HasColumn(index int) bool {
	return index >= 0 && index < len(b.Columns)
}

// GetColumnIndex returns the index of the first column with the given title
func (b *Board) GetColumnIndex(title string) int {
	for i := range b.Columns {
		if b.Columns[i].Title == title {
			return i
		}
	}
	return -1
}

// CardCounts returns the number of cards in each column, in column order
func (b Board) CardCounts() []int {
	counts := make([]int, len(b.Columns))
	for i, col := range b.Columns {
		counts[i] = len(col.Cards)
	}
	return counts
}

// TotalCards returns the number of cards across all columns
func (b Board) TotalCards() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.Cards)
	}
	return total
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := Board{Columns: make([]Column, len(b.Columns))}
	for i, col := range b.Columns {
		cards := make([]Card, len(col.Cards))
		copy(cards, col.Cards)
		out.Columns[i] = Column{Title: col.Title, Cards: cards}
	}
	return out
}

// Normalize replaces nil slices with empty ones so a board encodes as
// `"columns": []` / `"cards": []` and compares equal after a round trip.
func (b *Board) Normalize() {
	if b.Columns == nil {
		b.Columns = []Column{}
	}
	for i := range b.Columns {
		if b.Columns[i].Cards == nil {
			b.Columns[i].Cards = []Card{}
		}
	}
}
