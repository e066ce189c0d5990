package cli

import (
	"fmt"
	"strings"

	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/operations"
)

func runColumnCommand(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		printColumnUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runColumnAdd(cmdArgs, ctl)
	case "rename", "mv":
		return runColumnRename(cmdArgs, ctl)
	case "delete", "rm", "del":
		return runColumnDelete(cmdArgs, ctl)
	case "help", "-h", "--help":
		printColumnUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown column command: %s\n", command)
		printColumnUsage()
		return 1
	}
}

func runColumnAdd(args []string, ctl *controller.Controller) int {
	title, err := operations.ValidateColumnTitle(strings.Join(args, " "))
	if err != nil {
		return fail("%v", err)
	}

	if err := ctl.AddColumn(title); err != nil {
		return fail("adding column: %v", err)
	}

	fmt.Fprintf(stdout, "Added column %d: %s\n", len(ctl.Board().Columns)-1, title)
	return 0
}

func runColumnRename(args []string, ctl *controller.Controller) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Error: column and new title required")
		fmt.Fprintln(stderr, "Usage: kanban column rename <column> <new title>")
		return 1
	}

	board := ctl.Board()
	index, err := resolveColumn(board, args[0])
	if err != nil {
		return fail("%v", err)
	}

	title, err := operations.ValidateColumnTitle(strings.Join(args[1:], " "))
	if err != nil {
		return fail("%v", err)
	}

	if _, err := ctl.RenameColumnAt(index, title); err != nil {
		return fail("renaming column: %v", err)
	}

	fmt.Fprintf(stdout, "Renamed column %d: %s -> %s\n", index, board.Columns[index].Title, title)
	return 0
}

func runColumnDelete(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: column required")
		fmt.Fprintln(stderr, "Usage: kanban column delete <column>")
		return 1
	}

	board := ctl.Board()
	index, err := resolveColumn(board, strings.Join(args, " "))
	if err != nil {
		return fail("%v", err)
	}

	if _, err := ctl.DeleteColumnAt(index); err != nil {
		return fail("deleting column: %v", err)
	}

	col := board.Columns[index]
	fmt.Fprintf(stdout, "Deleted column: %s (%d card(s))\n", col.Title, len(col.Cards))
	return 0
}

func printColumnUsage() {
	fmt.Fprintln(stdout, `kanban column - Column commands

Usage: kanban column <command> [arguments]

Columns are given by index (0 is leftmost) or by title. Titles that do not
match exactly are matched fuzzily.

Commands:
  add, a        Append a column
                kanban column add "Review"

  rename, mv    Rename a column
                kanban column rename 1 "Doing"

  delete, rm    Delete a column and its cards
                kanban column delete Review

  help          Show this help message`)
}
