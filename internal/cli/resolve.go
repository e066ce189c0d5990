package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"kanban-tui/internal/kanban/models"
)

// resolveColumn finds a column by index, exact title, case-insensitive
// title, then best fuzzy match.
func resolveColumn(board models.Board, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return -1, fmt.Errorf("column required")
	}

	if index, err := strconv.Atoi(arg); err == nil {
		if !board.HasColumn(index) {
			return -1, fmt.Errorf("no column at index %d (board has %d columns)", index, len(board.Columns))
		}
		return index, nil
	}

	if index := board.GetColumnIndex(arg); index >= 0 {
		return index, nil
	}

	titles := make([]string, len(board.Columns))
	for i, col := range board.Columns {
		if strings.EqualFold(col.Title, arg) {
			return i, nil
		}
		titles[i] = col.Title
	}

	matches := fuzzy.Find(arg, titles)
	if len(matches) == 0 {
		return -1, fmt.Errorf("no column matches %q", arg)
	}
	return matches[0].Index, nil
}

// findCardByPartialID finds a card by full ID or an unambiguous prefix of
// at least 4 characters.
func findCardByPartialID(board models.Board, partialID string) (col int, card models.Card, err error) {
	type hit struct {
		col  int
		card models.Card
	}
	var matches []hit

	for i, column := range board.Columns {
		for _, c := range column.Cards {
			if c.ID == partialID {
				return i, c, nil
			}
			if len(partialID) >= 4 && strings.HasPrefix(c.ID, partialID) {
				matches = append(matches, hit{i, c})
			}
		}
	}

	if len(matches) == 0 {
		return -1, models.Card{}, fmt.Errorf("no card found with ID: %s", partialID)
	}
	if len(matches) > 1 {
		return -1, models.Card{}, fmt.Errorf("multiple cards match ID '%s', please be more specific", partialID)
	}

	return matches[0].col, matches[0].card, nil
}
