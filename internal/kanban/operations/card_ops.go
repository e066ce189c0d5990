package operations

import (
	"kanban-tui/internal/kanban/models"
)

// FindCard returns the column and card index of the first card matching ref,
// scanning columns left to right.
func FindCard(board *models.Board, ref models.CardRef) (colIndex, cardIndex int, ok bool) {
	for i, col := range board.Columns {
		if j := findInColumn(col, ref); j >= 0 {
			return i, j, true
		}
	}
	return -1, -1, false
}

func findInColumn(col models.Column, ref models.CardRef) int {
	for j, card := range col.Cards {
		if ref.Matches(card) {
			return j
		}
	}
	return -1
}

// AddCard appends a new card to the end of the column at columnIndex
func AddCard(board *models.Board, columnIndex int, label, description, details string) (models.Card, error) {
	if err := checkColumn(board, columnIndex); err != nil {
		return models.Card{}, err
	}

	card := models.NewCard(label, description, details)
	column := &board.Columns[columnIndex]
	column.Cards = append(column.Cards, card)

	return card, nil
}

// DeleteCard removes the first card matching ref. Returns false when no card
// matched and the board is unchanged.
func DeleteCard(board *models.Board, ref models.CardRef) bool {
	colIndex, cardIndex, ok := FindCard(board, ref)
	if !ok {
		return false
	}

	column := &board.Columns[colIndex]
	column.Cards = append(column.Cards[:cardIndex], column.Cards[cardIndex+1:]...)
	return true
}

// MoveCard moves the first card matching ref out of column fromColIndex and
// appends it to column fromColIndex+delta. It is a no-op returning false when
// either column does not exist or the card is not in the source column.
func MoveCard(board *models.Board, ref models.CardRef, fromColIndex, delta int) bool {
	toColIndex := fromColIndex + delta
	if !board.HasColumn(fromColIndex) || !board.HasColumn(toColIndex) {
		return false
	}
	if delta == 0 {
		return false
	}

	fromCol := &board.Columns[fromColIndex]
	cardIndex := findInColumn(*fromCol, ref)
	if cardIndex < 0 {
		return false
	}

	card := fromCol.Cards[cardIndex]
	fromCol.Cards = append(fromCol.Cards[:cardIndex], fromCol.Cards[cardIndex+1:]...)

	toCol := &board.Columns[toColIndex]
	toCol.Cards = append(toCol.Cards, card)

	return true
}

// EditCard overwrites the fields of the first card matching ref in place.
// The card keeps its position and ID.
func EditCard(board *models.Board, ref models.CardRef, label, description, details string) bool {
	colIndex, cardIndex, ok := FindCard(board, ref)
	if !ok {
		return false
	}

	card := &board.Columns[colIndex].Cards[cardIndex]
	card.Label = label
	card.Description = description
	card.Details = details
	return true
}

// AssignMissingIDs gives every card without an ID a fresh one. Used when
// loading documents written before cards carried IDs.
func AssignMissingIDs(board *models.Board) int {
	assigned := 0
	for i := range board.Columns {
		for j := range board.Columns[i].Cards {
			if board.Columns[i].Cards[j].ID == "" {
				board.Columns[i].Cards[j].ID = models.NewCardID()
				assigned++
			}
		}
	}
	return assigned
}
