package kanban

import "kanban-tui/internal/tui/shared"

// HelpSections lists the board's keybinds for the help popup
func HelpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Navigation",
			Binds: []shared.HelpBind{
				{Key: "h j k l / arrows", Desc: "Move focus"},
				{Key: "click", Desc: "Focus a card or column"},
				{Key: "wheel", Desc: "Scroll a column"},
			},
		},
		{
			Title: "Cards",
			Binds: []shared.HelpBind{
				{Key: "a / n", Desc: "Add card to focused column"},
				{Key: "e / enter", Desc: "Edit focused card"},
				{Key: "i / space", Desc: "Show card details"},
				{Key: "H / shift+left", Desc: "Move card to previous column"},
				{Key: "L / shift+right", Desc: "Move card to next column"},
				{Key: "drag", Desc: "Drop card on another column"},
				{Key: "d", Desc: "Delete focused card"},
			},
		},
		{
			Title: "Columns",
			Binds: []shared.HelpBind{
				{Key: "c", Desc: "Add column"},
				{Key: "r", Desc: "Rename focused column"},
				{Key: "x", Desc: "Delete focused column"},
				{Key: "X / ctrl+x", Desc: "Clear the board"},
			},
		},
		{
			Title: "General",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
	}
}
