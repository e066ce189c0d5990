package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
	"kanban-tui/internal/logs"
)

// ErrStorageCorrupt marks a board document that could not be parsed or does
// not match the board schema.
var ErrStorageCorrupt = errors.New("board file is corrupt")

// Store persists a whole board as a single JSON document
type Store struct {
	Path string
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the board from disk.
//
// A missing file is replaced by the default board, which is written out. A
// corrupt file yields the default board but is left untouched on disk; only
// the next committed mutation overwrites it.
func (s *Store) Load() (models.Board, error) {
	board, err := ReadBoard(s.Path)
	switch {
	case err == nil:
		if n := operations.AssignMissingIDs(&board); n > 0 {
			logs.Logger.Info("assigned ids to legacy cards", "count", n, "path", s.Path)
		}
		return board, nil

	case errors.Is(err, os.ErrNotExist):
		logs.Logger.Info("no board file, creating default", "path", s.Path)
		board = models.DefaultBoard()
		if err := s.Save(board); err != nil {
			return board, err
		}
		return board, nil

	case errors.Is(err, ErrStorageCorrupt):
		logs.Logger.Warn("board file is corrupt, using default board", "path", s.Path, "err", err)
		return models.DefaultBoard(), nil

	default:
		return models.Board{}, err
	}
}

// ReadBoard reads and decodes the board document at path
func ReadBoard(path string) (models.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Board{}, fmt.Errorf("read board: %w", err)
	}
	return DecodeBoard(data)
}

// DecodeBoard parses a board document. Any parse or schema failure is
// reported as ErrStorageCorrupt.
func DecodeBoard(data []byte) (models.Board, error) {
	if err := validateDocument(data); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}

	var board models.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}

	board.Normalize()
	return board, nil
}
