package fs

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ImportMarkdown reads a markdown board from path
func ImportMarkdown(path string) (models.Board, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.Board{}, err
	}
	return ParseMarkdown(content)
}

// ParseMarkdown parses a markdown board. H2 headings start columns; H3
// headings start cards, optionally followed by a fenced yaml block with the
// card's fields or a paragraph used as its description. A yaml block right
// after a column heading carries the column's exact title. Plain list items
// under a column become cards too, so hand-written lists import cleanly.
func ParseMarkdown(content []byte) (models.Board, error) {
	board := models.Board{Columns: []models.Column{}}

	reader := text.NewReader(content)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var currentColumn *models.Column
	var currentCard *models.Card

	flushCard := func() {
		if currentCard != nil && currentColumn != nil {
			currentColumn.Cards = append(currentColumn.Cards, *currentCard)
		}
		currentCard = nil
	}
	flushColumn := func() {
		flushCard()
		if currentColumn != nil {
			board.Columns = append(board.Columns, *currentColumn)
		}
		currentColumn = nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			headingText := rawLines(node, content)

			switch node.Level {
			case 2:
				flushColumn()
				currentColumn = &models.Column{
					Title: headingText,
					Cards: []models.Card{},
				}
			case 3:
				if currentColumn == nil {
					return models.Board{}, fmt.Errorf("card %q appears before any column", headingText)
				}
				flushCard()
				currentCard = &models.Card{Label: headingText}
			}

		case *ast.FencedCodeBlock:
			if string(node.Language(content)) != "yaml" {
				continue
			}
			if heading, ok := node.PreviousSibling().(*ast.Heading); ok && heading.Level == 2 && currentColumn != nil {
				var meta columnMeta
				if err := yaml.Unmarshal([]byte(codeLines(node, content)), &meta); err != nil {
					return models.Board{}, fmt.Errorf("column %q: %w", currentColumn.Title, err)
				}
				currentColumn.Title = meta.Title
				continue
			}
			if currentCard == nil {
				continue
			}
			var meta cardMeta
			if err := yaml.Unmarshal([]byte(codeLines(node, content)), &meta); err != nil {
				return models.Board{}, fmt.Errorf("card %q: %w", currentCard.Label, err)
			}
			currentCard.ID = meta.ID
			if meta.Label != "" {
				currentCard.Label = meta.Label
			}
			currentCard.Description = meta.Description
			currentCard.Details = meta.Details

		case *ast.Paragraph:
			if currentCard != nil && currentCard.Description == "" {
				currentCard.Description = rawLines(node, content)
			}

		case *ast.List:
			if currentColumn == nil {
				continue
			}
			flushCard()
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				block := item.FirstChild()
				if block == nil {
					continue
				}
				label := rawLines(block, content)
				if label == "" {
					continue
				}
				currentColumn.Cards = append(currentColumn.Cards, models.Card{Label: label})
			}
		}
	}
	flushColumn()

	operations.AssignMissingIDs(&board)
	return board, nil
}

// rawLines returns the source text of a block node, lines joined by newlines
func rawLines(n ast.Node, source []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(source))))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// codeLines returns the verbatim content of a fenced code block
func codeLines(n *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
