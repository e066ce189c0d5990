package cli

import (
	"flag"
	"fmt"
	"strings"

	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/models"
)

func runBoardCommand(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		return runShow(ctl)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "show", "ls":
		return runShow(ctl)
	case "clear":
		return runClear(cmdArgs, ctl)
	case "help", "-h", "--help":
		printBoardUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown board command: %s\n", command)
		printBoardUsage()
		return 1
	}
}

func runShow(ctl *controller.Controller) int {
	board := ctl.Board()
	if len(board.Columns) == 0 {
		fmt.Fprintln(stdout, "Board has no columns.")
		return 0
	}

	for i, col := range board.Columns {
		fmt.Fprintf(stdout, "%d. %s (%d)\n", i, col.Title, len(col.Cards))
		for _, card := range col.Cards {
			printCardLine(card)
		}
	}

	fmt.Fprintf(stdout, "\n%d column(s), %d card(s)\n", len(board.Columns), board.TotalCards())
	return 0
}

func runClear(args []string, ctl *controller.Controller) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(stderr)
	yes := fs.Bool("yes", false, "Confirm clearing the board")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if !*yes {
		return fail("clearing removes every card; rerun with --yes to confirm")
	}

	if err := ctl.ClearBoard(); err != nil {
		return fail("clearing board: %v", err)
	}

	fmt.Fprintln(stdout, "Board cleared.")
	return 0
}

func printCardLine(card models.Card) {
	line := fmt.Sprintf("   [%s] %s", shortID(card.ID), card.Label)
	if card.Description != "" {
		line += " - " + firstLine(card.Description)
	}
	fmt.Fprintln(stdout, line)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "..."
	}
	return s
}

func printBoardUsage() {
	fmt.Fprintln(stdout, `kanban board - Board commands

Usage: kanban board <command> [arguments]

Commands:
  show, ls    List columns and cards (default)
  clear       Reset to the default empty columns
              kanban board clear --yes

  help        Show this help message`)
}
