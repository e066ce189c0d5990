package kanban

import (
	"strings"

	"kanban-tui/internal/kanban/drag"
	"kanban-tui/internal/kanban/models"
)

// Vertical structure of a rendered column, top to bottom: border, title,
// "above" indicator, cards (each followed by one blank line), "below"
// indicator, border.
const (
	columnTitleOffset = columnBorderWidth
	columnCardsOffset = columnBorderWidth + 2
	columnChromeLines = 2*columnBorderWidth + 3
	columnOuterWidth  = columnWidth + 2*columnBorderWidth
)

type cardSlot struct {
	index int
	card  models.Card
	rect  drag.Rect
}

type columnSlot struct {
	index int
	rect  drag.Rect
	cards []cardSlot
	above int
	below int
}

// geometry is where every visible column and card lands on screen. The view
// renders from it and mouse events are hit-tested against it, so the two
// cannot disagree.
type geometry struct {
	columns      []columnSlot
	start, end   int
	total        int
	columnHeight int
}

// cardHeight is the number of lines a card occupies, excluding the blank
// separator line below it.
func cardHeight(card models.Card) int {
	if strings.TrimSpace(card.Description) != "" {
		return 2
	}
	return 1
}

func columnHeightFor(height int) int {
	return max(height-headerLines-footerLines, minColumnHeight)
}

func cardAreaHeight(columnHeight int) int {
	return columnHeight - columnChromeLines
}

// visibleColumnRange returns the columns that fit in width starting at offset
func visibleColumnRange(width, offset, total int) (start, end int) {
	count := max((width-2*indicatorWidth)/columnOuterWidth, 1)
	start = min(max(offset, 0), max(total-1, 0))
	end = min(start+count, total)
	return start, end
}

// visibleCardCount returns how many cards starting at offset fit in area
// lines. At least one card is always shown.
func visibleCardCount(cards []models.Card, offset, area int) int {
	used, count := 0, 0
	for i := offset; i < len(cards); i++ {
		h := cardHeight(cards[i]) + 1
		if count > 0 && used+h > area {
			break
		}
		used += h
		count++
	}
	return count
}

func computeGeometry(board models.Board, width, height, hOffset int, vOffsets []int) geometry {
	g := geometry{
		total:        len(board.Columns),
		columnHeight: columnHeightFor(height),
	}
	g.start, g.end = visibleColumnRange(width, hOffset, g.total)
	area := cardAreaHeight(g.columnHeight)

	for i := g.start; i < g.end; i++ {
		col := board.Columns[i]
		slot := columnSlot{
			index: i,
			rect: drag.Rect{
				X: indicatorWidth + (i-g.start)*columnOuterWidth,
				Y: headerLines,
				W: columnOuterWidth,
				H: g.columnHeight,
			},
		}

		offset := 0
		if i < len(vOffsets) {
			offset = min(max(vOffsets[i], 0), max(len(col.Cards)-1, 0))
		}
		count := visibleCardCount(col.Cards, offset, area)

		x := slot.rect.X + columnBorderWidth + columnPaddingHorizontal
		y := slot.rect.Y + columnCardsOffset
		for j := offset; j < offset+count; j++ {
			h := cardHeight(col.Cards[j])
			slot.cards = append(slot.cards, cardSlot{
				index: j,
				card:  col.Cards[j],
				rect:  drag.Rect{X: x, Y: y, W: columnWidth - 2*columnPaddingHorizontal, H: h},
			})
			y += h + 1
		}
		slot.above = offset
		slot.below = len(col.Cards) - offset - count

		g.columns = append(g.columns, slot)
	}

	return g
}

// columnRects returns one rect per board column, indexed like the board.
// Columns scrolled out of view get an empty rect that contains no point.
func (g geometry) columnRects() []drag.Rect {
	rects := make([]drag.Rect, g.total)
	for _, slot := range g.columns {
		rects[slot.index] = slot.rect
	}
	return rects
}

// cardAt returns the card under p
func (g geometry) cardAt(p drag.Point) (column int, card cardSlot, ok bool) {
	for _, slot := range g.columns {
		if !slot.rect.Contains(p) {
			continue
		}
		for _, c := range slot.cards {
			if c.rect.Contains(p) {
				return slot.index, c, true
			}
		}
		return slot.index, cardSlot{}, false
	}
	return -1, cardSlot{}, false
}

// columnAt returns the index of the column under p, or -1
func (g geometry) columnAt(p drag.Point) int {
	return drag.TargetColumn(p, g.columnRects())
}

// ensureCardVisible returns the vertical offset that keeps card visible in
// a column, starting from the current offset.
func ensureCardVisible(cards []models.Card, offset, card, area int) int {
	if card < 0 || len(cards) == 0 {
		return 0
	}
	offset = min(max(offset, 0), len(cards)-1)
	if card < offset {
		return card
	}
	for offset < card && card >= offset+visibleCardCount(cards, offset, area) {
		offset++
	}
	return offset
}

// ensureColumnVisible returns the horizontal offset that keeps column in view
func ensureColumnVisible(width, offset, column, total int) int {
	if total == 0 || column < 0 {
		return 0
	}
	start, end := visibleColumnRange(width, offset, total)
	if column < start {
		return column
	}
	if column >= end {
		return max(column-(end-start)+1, 0)
	}
	return start
}
