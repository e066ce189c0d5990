package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/logs"
)

// Save overwrites the board file with the whole board
func (s *Store) Save(board models.Board) error {
	if err := WriteBoard(s.Path, board); err != nil {
		logs.Logger.Error("failed to save board", "path", s.Path, "err", err)
		return err
	}
	logs.Logger.Debug("board saved", "path", s.Path, "columns", len(board.Columns), "cards", board.TotalCards())
	return nil
}

// EncodeBoard renders the board document
func EncodeBoard(board models.Board) ([]byte, error) {
	out := board.Clone()
	out.Normalize()

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteBoard writes the board document to path. The file is replaced in one
// rename so readers never observe a partial document. An existing file keeps
// its permissions.
func WriteBoard(path string, board models.Board) error {
	data, err := EncodeBoard(board)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create board dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".kanban-board-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write board: %w", err)
	}
	if err := os.Chmod(tmpPath, boardFileMode(path)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write board: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace board: %w", err)
	}

	return nil
}

// boardFileMode returns the permissions of the file at path, or 0644 when
// there is none yet
func boardFileMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}
