package operations

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"kanban-tui/internal/kanban/models"
)

// ErrIndexOutOfRange is returned by index-addressed operations on a column
// that does not exist.
var ErrIndexOutOfRange = errors.New("column index out of range")

const (
	maxColumnTitleLength = 50
	maxLabelLength       = 120
)

func checkColumn(board *models.Board, columnIndex int) error {
	if !board.HasColumn(columnIndex) {
		return fmt.Errorf("%w: %d (board has %d columns)", ErrIndexOutOfRange, columnIndex, len(board.Columns))
	}
	return nil
}

// AddColumn appends an empty column
func AddColumn(board *models.Board, title string) {
	board.Columns = append(board.Columns, models.Column{
		Title: title,
		Cards: []models.Card{},
	})
}

// DeleteColumn removes a column together with its cards
func DeleteColumn(board *models.Board, columnIndex int) error {
	if err := checkColumn(board, columnIndex); err != nil {
		return err
	}

	board.Columns = append(board.Columns[:columnIndex], board.Columns[columnIndex+1:]...)
	return nil
}

// RenameColumn sets the title of the column at columnIndex. Titles are not
// required to be unique.
func RenameColumn(board *models.Board, columnIndex int, newTitle string) error {
	if err := checkColumn(board, columnIndex); err != nil {
		return err
	}

	board.Columns[columnIndex].Title = newTitle
	return nil
}

// ResetBoard replaces every column with the default board
func ResetBoard(board *models.Board) {
	*board = models.DefaultBoard()
}

// EnsureColumns installs the default columns when the board has none, so a
// new card is never left without a column. Returns true if it did.
func EnsureColumns(board *models.Board) bool {
	if len(board.Columns) > 0 {
		return false
	}
	ResetBoard(board)
	return true
}

// ValidateColumnTitle checks if column title is valid (trim, length check)
func ValidateColumnTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return "", fmt.Errorf("column title cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > maxColumnTitleLength {
		return "", fmt.Errorf("column title too long (max %d characters)", maxColumnTitleLength)
	}

	return trimmed, nil
}

// ValidateLabel checks if a card label is valid (trim, length check)
func ValidateLabel(label string) (string, error) {
	trimmed := strings.TrimSpace(label)

	if trimmed == "" {
		return "", fmt.Errorf("card title cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > maxLabelLength {
		return "", fmt.Errorf("card title too long (max %d characters)", maxLabelLength)
	}

	return trimmed, nil
}
