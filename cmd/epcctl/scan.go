package main

import (
	"os"

	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/spf13/cobra"
)

var scanStdout bool

func init() {
	rootCmd.AddCommand(newScanCmd())
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Write a texture scan report to <file>_scan.txt",
		Long: `The scan command writes a report listing every texture name found
in the container with its offset. With --json the report is JSON.

Example:
  epcctl scan level1.epc
  epcctl scan level1.epc --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args)
		},
	}
	cmd.Flags().BoolVar(&scanStdout, "stdout", false, "Write the report to stdout instead of a file")
	return cmd
}

func runScan(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	if scanStdout {
		data, err := cat.ScanReport(reportFormat())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	out, err := cat.WriteScanReport(epc.OSFS{}, reportFormat())
	if err != nil {
		return err
	}
	printInfo("Found %d texture reference(s); report written to %s\n", len(cat.Textures()), out)
	return nil
}
