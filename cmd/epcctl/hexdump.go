package main

import (
	"github.com/spf13/cobra"
)

var hexdumpASCII bool

func init() {
	rootCmd.AddCommand(newHexdumpCmd())
}

func newHexdumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hexdump <file> <offset>",
		Short: "Dump the bytes around an offset",
		Long: `The hexdump command prints the 64 bytes centered on an offset (32
before, 32 after, clipped to the file) as 16-byte rows. The offset may be
decimal or 0x-prefixed hex.

Example:
  epcctl hexdump level1.epc 0x1A40
  epcctl hexdump level1.epc 0x1A40 --ascii`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHexdump(args)
		},
	}
	cmd.Flags().BoolVar(&hexdumpASCII, "ascii", false, "Append a printable-character column")
	return cmd
}

func runHexdump(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	rows := cat.HexWindow(off)
	if len(rows) == 0 && !jsonOut {
		printInfo("Offset 0x%08X is past the end of the file\n", off)
		return nil
	}
	if quiet {
		return nil
	}
	return newPrinter(hexdumpASCII).PrintHex(rows)
}
