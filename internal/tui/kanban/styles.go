package kanban

import (
	"github.com/charmbracelet/lipgloss"

	"kanban-tui/internal/tui/theme"
)

const (
	// Layout constants; geometry.go derives hit-test rects from these
	columnWidth             = 32 // lipgloss width: content + horizontal padding
	columnPaddingHorizontal = 1
	columnBorderWidth       = 1
	cardBorderWidth         = 1
	cardPaddingHorizontal   = 1
	indicatorWidth          = 3
	headerLines             = 2
	footerLines             = 2
	minColumnHeight         = 8
	dialogWidth             = 64
)

var (
	// Title styles
	titleStyle = theme.Title.Padding(0, 1)
	pathStyle  = theme.Muted

	// Column styles
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, columnPaddingHorizontal).
			Width(columnWidth)

	selectedColumnStyle = columnStyle.
				BorderForeground(theme.BorderFocused)

	dropTargetColumnStyle = columnStyle.
				BorderForeground(theme.Warning)

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.Primary).
				Width(columnWidth - 2*columnPaddingHorizontal).
				Align(lipgloss.Center)

	selectedColumnTitleStyle = columnTitleStyle.
					Foreground(theme.Warning).
					Background(theme.Surface).
					Underline(true)

	// Card styles
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(theme.Border).
			Padding(0, cardPaddingHorizontal).
			Width(cardWidth)

	selectedCardStyle = cardStyle.
				BorderForeground(theme.BorderFocused).
				Background(theme.Surface).
				Bold(true)

	draggedCardStyle = cardStyle.
				BorderForeground(theme.Warning).
				Background(theme.DragSurface).
				Bold(true)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true)

	cardPreviewStyle = lipgloss.NewStyle().
				Foreground(theme.TextMuted)

	cardDetailsMarkStyle = lipgloss.NewStyle().
				Foreground(theme.Accent)

	// Scroll indicator style
	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(theme.Primary).
				Italic(true).
				Width(columnWidth - 2*columnPaddingHorizontal).
				Align(lipgloss.Center)

	// Help styles
	helpStyle = theme.Muted.Padding(0, 1)

	// Message styles
	errorStyle   = theme.Error.Padding(0, 1)
	warningStyle = theme.Warn.Padding(0, 1)
	successStyle = theme.Ok.Padding(0, 1)

	// Dialog styles
	dialogLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	dialogActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)

	// Confirmation styles
	confirmBoxStyle            = theme.ModalBox.BorderForeground(theme.Danger).Width(dialogWidth)
	confirmTitleStyle          = theme.Error
	confirmSubjectStyle        = theme.Bold
	confirmNoteStyle           = theme.Muted
	confirmHelpStyle           = theme.ModalHelp
	confirmButtonStyle         = lipgloss.NewStyle().Padding(0, 2).Foreground(theme.Text)
	confirmSelectedButtonStyle = confirmButtonStyle.Background(theme.Surface).Bold(true)
	confirmDangerButtonStyle   = confirmButtonStyle.Background(theme.Danger).Foreground(theme.TextBright).Bold(true)

	// Details view styles
	detailsBoxStyle    = theme.ModalBox.Width(dialogWidth)
	detailsLabelStyle  = theme.ModalTitle
	detailsColumnStyle = theme.Subtitle
	detailsBodyStyle   = lipgloss.NewStyle().Foreground(theme.Text)
)

// cardWidth is the lipgloss width of a card: the column's content width
// minus the card's left border.
const cardWidth = columnWidth - 2*columnPaddingHorizontal - cardBorderWidth

// cardTextWidth is the room left for text inside a card
const cardTextWidth = cardWidth - 2*cardPaddingHorizontal
