package cli

import (
	"flag"
	"fmt"

	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/fs"
)

func runExport(args []string, ctl *controller.Controller) int {
	board := ctl.Board()

	if len(args) == 0 {
		data, err := fs.MarshalMarkdown(board)
		if err != nil {
			return fail("exporting board: %v", err)
		}
		stdout.Write(data)
		return 0
	}

	if err := fs.ExportMarkdown(args[0], board); err != nil {
		return fail("exporting board: %v", err)
	}

	fmt.Fprintf(stdout, "Exported %d card(s) to %s\n", board.TotalCards(), args[0])
	return 0
}

func runImport(args []string, ctl *controller.Controller) int {
	flags := flag.NewFlagSet("import", flag.ContinueOnError)
	flags.SetOutput(stderr)
	yes := flags.Bool("yes", false, "Confirm replacing the board")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: markdown file required")
		fmt.Fprintln(stderr, "Usage: kanban import --yes <file.md>")
		return 1
	}
	if !*yes {
		return fail("import replaces the whole board; rerun with --yes to confirm")
	}

	board, err := fs.ImportMarkdown(flags.Arg(0))
	if err != nil {
		return fail("importing %s: %v", flags.Arg(0), err)
	}

	if err := ctl.ReplaceBoard(board); err != nil {
		return fail("saving imported board: %v", err)
	}

	fmt.Fprintf(stdout, "Imported %d column(s), %d card(s)\n", len(board.Columns), board.TotalCards())
	return 0
}
