package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"kanban-tui/internal/cli"
	"kanban-tui/internal/config"
	"kanban-tui/internal/kanban/controller"
	"kanban-tui/internal/kanban/fs"
	"kanban-tui/internal/logs"
	"kanban-tui/internal/tui"
)

func main() {
	// Parse CLI flags
	fileFlag := flag.String("file", "", "Board file path")
	flag.StringVar(fileFlag, "f", "", "Board file path (shorthand)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error")
	noMouseFlag := flag.Bool("no-mouse", false, "Disable mouse support")
	flag.Parse()

	cliFlags := config.CLIFlags{
		BoardFile: *fileFlag,
		LogLevel:  *logLevelFlag,
		NoMouse:   *noMouseFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger
	if err := logs.Initialize(cfg.LogDir, logs.ParseLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	store := fs.NewStore(cfg.BoardFile)
	ctl, err := controller.New(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load board %s: %v\n", cfg.BoardFile, err)
		os.Exit(1)
	}

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, ctl)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Info("starting app in TUI mode", "board", cfg.BoardFile, "mouse", cfg.Mouse)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.NewAppModel(cfg, ctl), opts...)
	if _, err := p.Run(); err != nil {
		logs.Logger.Error("program exited with error", "err", err)
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
