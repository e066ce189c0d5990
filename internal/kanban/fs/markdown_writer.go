package fs

import (
	"bytes"
	"os"
	"strings"

	"kanban-tui/internal/kanban/models"

	"gopkg.in/yaml.v3"
)

// cardMeta is the YAML block written under each card heading
type cardMeta struct {
	ID          string `yaml:"id,omitempty"`
	Label       string `yaml:"label,omitempty"`
	Description string `yaml:"description,omitempty"`
	Details     string `yaml:"details,omitempty"`
}

// columnMeta follows a column heading whose title the heading cannot hold
type columnMeta struct {
	Title string `yaml:"title"`
}

// MarshalMarkdown renders the board as a markdown document: one H2 per
// column, one H3 per card followed by a fenced yaml block with its fields.
// A column title that would not survive as heading text also gets a yaml
// block with the exact title.
func MarshalMarkdown(board models.Board) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Kanban\n\n")

	for _, column := range board.Columns {
		buf.WriteString("## ")
		buf.WriteString(singleLine(column.Title))
		buf.WriteString("\n\n")

		if !headingSafe(column.Title) {
			yamlBytes, err := yaml.Marshal(columnMeta{Title: column.Title})
			if err != nil {
				return nil, err
			}
			writeYAMLBlock(&buf, yamlBytes)
		}

		for _, card := range column.Cards {
			buf.WriteString("### ")
			buf.WriteString(singleLine(card.Label))
			buf.WriteString("\n\n")

			yamlBytes, err := yaml.Marshal(cardMeta{
				ID:          card.ID,
				Label:       card.Label,
				Description: card.Description,
				Details:     card.Details,
			})
			if err != nil {
				return nil, err
			}

			writeYAMLBlock(&buf, yamlBytes)
		}
	}

	return buf.Bytes(), nil
}

// ExportMarkdown writes the markdown rendering of board to path
func ExportMarkdown(path string, board models.Board) error {
	data, err := MarshalMarkdown(board)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeYAMLBlock(buf *bytes.Buffer, body []byte) {
	fence := codeFence(body)
	buf.WriteString(fence)
	buf.WriteString("yaml\n")
	buf.Write(body)
	buf.WriteString(fence)
	buf.WriteString("\n\n")
}

// headingSafe reports whether title reads back unchanged from an ATX heading
func headingSafe(title string) bool {
	if title == "" {
		return true
	}
	return title == strings.TrimSpace(singleLine(title)) && !strings.HasSuffix(title, "#")
}

// codeFence returns a backtick fence longer than any backtick run in body
func codeFence(body []byte) string {
	longest, run := 0, 0
	for _, b := range body {
		if b == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
