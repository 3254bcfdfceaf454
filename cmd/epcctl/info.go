package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report container size and table counts",
		Long: `The info command scans a container and reports its size and the
number of general strings and texture names found in it.

Example:
  epcctl info level1.epc
  epcctl info level1.epc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type infoResult struct {
	File     string   `json:"file"`
	Size     int      `json:"size"`
	Strings  int      `json:"strings"`
	Textures int      `json:"textures"`
	Notices  []string `json:"notices,omitempty"`
}

func runInfo(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	res := infoResult{
		File:     cat.Path(),
		Size:     cat.Len(),
		Strings:  len(cat.Strings()),
		Textures: len(cat.Textures()),
	}
	for _, n := range cat.Notices() {
		res.Notices = append(res.Notices, n.Msg)
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nContainer Information:\n")
	printInfo("  File: %s\n", res.File)
	printInfo("  Size: %s\n", formatSize(res.Size))
	printInfo("  Strings: %d\n", res.Strings)
	printInfo("  Textures: %d\n", res.Textures)
	for _, n := range res.Notices {
		printInfo("  Note: %s\n", n)
	}
	return nil
}
