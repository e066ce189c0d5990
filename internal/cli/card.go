package cli

import (
	"flag"
	"fmt"
	"strings"

	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/models"
	"kanban-tui/internal/kanban/operations"
)

func runCardCommand(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		printCardUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runCardAdd(cmdArgs, ctl)
	case "edit", "e":
		return runCardEdit(cmdArgs, ctl)
	case "move", "mv":
		return runCardMove(cmdArgs, ctl)
	case "delete", "rm", "del":
		return runCardDelete(cmdArgs, ctl)
	case "show", "s":
		return runCardShow(cmdArgs, ctl)
	case "help", "-h", "--help":
		printCardUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown card command: %s\n", command)
		printCardUsage()
		return 1
	}
}

func runCardAdd(args []string, ctl *controller.Controller) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	column := fs.String("c", "0", "Column index or title")
	description := fs.String("d", "", "Description")
	details := fs.String("details", "", "Details")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	label, err := operations.ValidateLabel(strings.Join(fs.Args(), " "))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, `Usage: kanban card add [-c column] [-d description] [--details text] "Card title"`)
		return 1
	}

	board := ctl.Board()
	index := 0
	if len(board.Columns) > 0 {
		if index, err = resolveColumn(board, *column); err != nil {
			return fail("%v", err)
		}
	}

	card, ok, err := ctl.AddCardTo(index, label, strings.TrimSpace(*description), *details)
	if err != nil {
		return fail("adding card: %v", err)
	}
	if !ok {
		return fail("column %d no longer exists", index)
	}

	fmt.Fprintf(stdout, "Added: %s\n", card.Label)
	fmt.Fprintf(stdout, "ID: %s\n", card.ID)
	return 0
}

func runCardEdit(args []string, ctl *controller.Controller) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	label := fs.String("l", "", "New title")
	description := fs.String("d", "", "New description")
	details := fs.String("details", "", "New details")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: card ID required")
		fmt.Fprintln(stderr, "Usage: kanban card edit [-l title] [-d description] [--details text] <card-id>")
		return 1
	}

	_, card, err := findCardByPartialID(ctl.Board(), fs.Arg(0))
	if err != nil {
		return fail("%v", err)
	}

	updated := card
	var validateErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			updated.Label, validateErr = operations.ValidateLabel(*label)
		case "d":
			updated.Description = strings.TrimSpace(*description)
		case "details":
			updated.Details = *details
		}
	})
	if validateErr != nil {
		return fail("%v", validateErr)
	}

	if updated == card {
		fmt.Fprintln(stdout, "Nothing to change.")
		return 0
	}

	if _, err := ctl.EditCardRef(models.ByID(card.ID), updated.Label, updated.Description, updated.Details); err != nil {
		return fail("editing card: %v", err)
	}

	fmt.Fprintf(stdout, "Edited: %s\n", updated.Label)
	return 0
}

func runCardMove(args []string, ctl *controller.Controller) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Error: card ID and target column required")
		fmt.Fprintln(stderr, "Usage: kanban card move <card-id> <column>")
		return 1
	}

	board := ctl.Board()
	from, card, err := findCardByPartialID(board, args[0])
	if err != nil {
		return fail("%v", err)
	}

	to, err := resolveColumn(board, strings.Join(args[1:], " "))
	if err != nil {
		return fail("%v", err)
	}

	if to == from {
		fmt.Fprintf(stdout, "Already in %s: %s\n", board.Columns[to].Title, card.Label)
		return 0
	}

	if _, err := ctl.MoveCardRef(models.ByID(card.ID), from, to-from); err != nil {
		return fail("moving card: %v", err)
	}

	fmt.Fprintf(stdout, "Moved: %s (%s -> %s)\n", card.Label, board.Columns[from].Title, board.Columns[to].Title)
	return 0
}

func runCardDelete(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: card ID required")
		fmt.Fprintln(stderr, "Usage: kanban card delete <card-id>")
		return 1
	}

	_, card, err := findCardByPartialID(ctl.Board(), args[0])
	if err != nil {
		return fail("%v", err)
	}

	if _, err := ctl.DeleteCardRef(models.ByID(card.ID)); err != nil {
		return fail("deleting card: %v", err)
	}

	fmt.Fprintf(stdout, "Deleted: %s\n", card.Label)
	return 0
}

func runCardShow(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: card ID required")
		fmt.Fprintln(stderr, "Usage: kanban card show <card-id>")
		return 1
	}

	board := ctl.Board()
	col, card, err := findCardByPartialID(board, args[0])
	if err != nil {
		return fail("%v", err)
	}

	fmt.Fprintf(stdout, "%s\n", card.Label)
	fmt.Fprintf(stdout, "ID:     %s\n", card.ID)
	fmt.Fprintf(stdout, "Column: %s\n", board.Columns[col].Title)
	if card.Description != "" {
		fmt.Fprintf(stdout, "\n%s\n", card.Description)
	}
	if card.Details != "" {
		fmt.Fprintf(stdout, "\n%s\n", strings.TrimRight(card.Details, "\n"))
	}
	return 0
}

func printCardUsage() {
	fmt.Fprintln(stdout, `kanban card - Card commands

Usage: kanban card <command> [arguments]

Cards are given by ID or an unambiguous ID prefix (see "kanban board show").
Flags go before positional arguments.

Commands:
  add, a      Add a card to the end of a column
              kanban card add -c "In Progress" -d "crash on start" "Fix bug"

  edit, e     Change a card's title, description or details
              kanban card edit -d "new description" <card-id>

  move, mv    Move a card to the end of another column
              kanban card move <card-id> Done

  delete, rm  Delete a card
              kanban card delete <card-id>

  show, s     Print a card with its details
              kanban card show <card-id>

  help        Show this help message`)
}
