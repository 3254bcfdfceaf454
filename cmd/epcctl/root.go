package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/epckit/container/printer"
	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/joshuapare/epckit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	useMmap bool
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "epcctl",
	Short: "Inspect and extract resources from .epc game-asset containers",
	Long: `epcctl is a tool for inspecting .epc game-asset containers. It lists
the strings and texture names embedded in a container, follows a string to the
index records that reference it, dumps raw bytes, and extracts record and
texture blobs to disk.

Resource extents are heuristic: a blob may include header bytes of the
resource that follows it.`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&useMmap, "mmap", false, "Memory-map the container instead of reading it")
	rootCmd.PersistentFlags().
		IntVar(&workers, "workers", 0, "Scan workers for large containers (0 = all CPUs, -1 = serial)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openOptions builds load options from the global flags.
func openOptions() types.OpenOptions {
	opts := types.DefaultOpenOptions()
	opts.Mmap = useMmap
	opts.Workers = workers
	if verbose && !quiet {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return opts
}

// loadCatalog opens path and scans it. The caller closes the catalog.
func loadCatalog(path string) (*epc.Catalog, error) {
	printVerbose("Loading container: %s\n", path)
	cat, err := epc.Load(context.Background(), path, openOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load container: %w", err)
	}
	for _, n := range cat.Notices() {
		printVerbose("Note: %s\n", n.Msg)
	}
	return cat, nil
}

// selectTarget selects a string table entry by index, or an arbitrary
// offset when arg is written as 0x-prefixed hex.
func selectTarget(cat *epc.Catalog, arg string) (*epc.Selection, error) {
	ctx := context.Background()
	if isHex(arg) {
		off, err := parseOffset(arg)
		if err != nil {
			return nil, err
		}
		return cat.SelectOffset(ctx, off)
	}
	i, err := parseIndex(arg)
	if err != nil {
		return nil, err
	}
	return cat.SelectString(ctx, i)
}

func isHex(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// parseOffset accepts decimal or 0x-prefixed hex.
func parseOffset(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return v, nil
}

// newPrinter returns a printer honoring --json.
func newPrinter(ascii bool) *printer.Printer {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.ShowASCII = ascii
	return printer.New(os.Stdout, opts)
}

func reportFormat() printer.Format {
	if jsonOut {
		return printer.FormatJSON
	}
	return printer.FormatText
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatSize renders a byte count the way info prints it.
func formatSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
