package main

import (
	"github.com/spf13/cobra"
)

var texturesFilter string

func init() {
	rootCmd.AddCommand(newTexturesCmd())
}

func newTexturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textures <file>",
		Short: "List texture names",
		Long: `The textures command lists every embedded name ending in a known
image extension (.dds, .tga, .png, .jpg, .bmp) with its offset.

Example:
  epcctl textures level1.epc
  epcctl textures level1.epc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextures(args)
		},
	}
	cmd.Flags().StringVar(&texturesFilter, "filter", "", "Only show names containing this text (case-insensitive)")
	return cmd
}

func runTextures(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	entries := filterEntries(cat.Textures(), texturesFilter, 0)
	if jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		printInfo("No texture references found\n")
		return nil
	}
	for _, e := range entries {
		printInfo("%6d  0x%08X  %s\n", e.Index, e.Offset, e.Text)
	}
	return nil
}
