package main

import (
	"strings"

	"github.com/joshuapare/epckit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	stringsFilter string
	stringsLimit  int
)

func init() {
	rootCmd.AddCommand(newStringsCmd())
}

func newStringsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings <file>",
		Short: "List the general string table",
		Long: `The strings command lists every printable run of at least four
characters that looks like a name or path, with its offset. The index shown
is the one the records, record and extract commands take.

Example:
  epcctl strings level1.epc
  epcctl strings level1.epc --filter .mdl
  epcctl strings level1.epc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(args)
		},
	}
	cmd.Flags().StringVar(&stringsFilter, "filter", "", "Only show strings containing this text (case-insensitive)")
	cmd.Flags().IntVar(&stringsLimit, "limit", 0, "Show at most this many strings (0 = all)")
	return cmd
}

type indexedEntry struct {
	Index  int    `json:"index"`
	Offset uint32 `json:"offset"`
	Text   string `json:"text"`
}

func runStrings(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	entries := filterEntries(cat.Strings(), stringsFilter, stringsLimit)
	if jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		printInfo("No strings found\n")
		return nil
	}
	for _, e := range entries {
		printInfo("%6d  0x%08X  %s\n", e.Index, e.Offset, e.Text)
	}
	return nil
}

// filterEntries keeps table indices so filtered output can still be fed to
// index-taking commands.
func filterEntries(table []types.StringEntry, filter string, limit int) []indexedEntry {
	filter = strings.ToLower(filter)
	out := []indexedEntry{}
	for i, e := range table {
		if filter != "" && !strings.Contains(strings.ToLower(e.Text), filter) {
			continue
		}
		out = append(out, indexedEntry{Index: i, Offset: e.Offset, Text: e.Text})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
