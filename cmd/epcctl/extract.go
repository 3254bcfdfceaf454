package main

import (
	"fmt"

	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/spf13/cobra"
)

var extractAll bool

func init() {
	rootCmd.AddCommand(newExtractCmd())
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file> <string-index|0xOFFSET> [record-index]",
		Short: "Write record blobs to <file>_export/",
		Long: `The extract command writes the blob of one index record to a
directory named after the container with an "_export" suffix. The output file
takes the base name of the record's resolved name.

With --all, every record referencing the target is extracted; records whose
extent cannot be computed are reported and skipped.

Example:
  epcctl extract level1.epc 12 0
  epcctl extract level1.epc 12 --all`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	cmd.Flags().BoolVar(&extractAll, "all", false, "Extract every record referencing the target")
	return cmd
}

func runExtract(args []string) error {
	if !extractAll && len(args) != 3 {
		return fmt.Errorf("expected a record index or --all")
	}

	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	sel, err := selectTarget(cat, args[1])
	if err != nil {
		return err
	}

	if extractAll {
		res, err := cat.ExportRecords(sel, epc.OSFS{})
		if err != nil {
			return err
		}
		return printExportResult(res)
	}

	j, err := parseIndex(args[2])
	if err != nil {
		return err
	}
	out, err := cat.ExportRecord(sel, j, epc.OSFS{})
	if err != nil {
		return fmt.Errorf("failed to extract record: %w", err)
	}
	if jsonOut {
		return printJSON(map[string]string{"path": out})
	}
	printInfo("Exported %s\n", out)
	return nil
}
