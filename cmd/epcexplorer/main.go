package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/epckit/cmd/epcexplorer/logger"
	"github.com/joshuapare/epckit/pkg/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false
	useMmap := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "--debug", "-d":
			debugMode = true
		case "--mmap":
			useMmap = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("epcexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting epcexplorer", "path", path, "debug", debugMode)

	if _, err := os.Stat(path); err != nil {
		logger.Error("container not found", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: container not found: %s\n", path)
		os.Exit(1)
	}

	opts := types.DefaultOpenOptions()
	opts.Mmap = useMmap
	opts.Logger = logger.L
	m := NewModel(path, opts)

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing container", "error", err)
		}
	}

	logger.Info("epcexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: epcexplorer [options] <file.epc>\n")
	fmt.Fprintf(os.Stderr, "Try 'epcexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("epcexplorer - Interactive TUI for .epc game-asset containers")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  epcexplorer [options] <file.epc>")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    Enter       Select string (find records) or texture (find blob)")
	fmt.Println("    Tab         Switch between strings and textures")
	fmt.Println("    ←/→         Switch between list and records")
	fmt.Println("    x           Extract the selected record to <file>_export/")
	fmt.Println("    e           Export all textures to <file>_textures/")
	fmt.Println("    s           Write texture scan report to <file>_scan.txt")
	fmt.Println("    c           Copy the highlighted offset")
	fmt.Println("    r           Reload the file")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.epcexplorer/logs/")
	fmt.Println("      --mmap     Memory-map the container instead of reading it")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'epcctl' command instead.")
}
