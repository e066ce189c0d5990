package cli

import (
	"fmt"
	"io"
	"os"

	"kanban-tui/internal/kanban/controller"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the CLI with the given arguments.
// The first argument should be the namespace ("board", "column", "card",
// "export" or "import").
func Run(args []string, ctl *controller.Controller) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "board", "b":
		return runBoardCommand(subArgs, ctl)
	case "column", "col":
		return runColumnCommand(subArgs, ctl)
	case "card", "c":
		return runCardCommand(subArgs, ctl)
	case "export":
		return runExport(subArgs, ctl)
	case "import":
		return runImport(subArgs, ctl)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", namespace)
		printUsage()
		return 1
	}
}

func fail(format string, args ...any) int {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return 1
}

func printUsage() {
	fmt.Fprintln(stdout, `kanban - Terminal kanban board

Usage: kanban [flags] [command] [arguments]

Commands:
  board       Show or clear the board
  column      Add, rename or delete columns
  card        Add, edit, move, delete or show cards
  export      Write the board as markdown
  import      Replace the board with a markdown file

Flags:
  -f, --file <path>      Board file (default ~/.kanban_board.json)
      --log-level <lvl>  debug, info, warn or error
      --no-mouse         Disable mouse support (drag and drop)

Running kanban without arguments launches the interactive TUI.
Use "kanban <command> help" for subcommands.`)
}
