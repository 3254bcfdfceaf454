package main

import (
	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRecordsCmd())
}

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records <file> <string-index|0xOFFSET>",
		Short: "List index records that reference a string",
		Long: `The records command searches the container for 32-bit little-endian
copies of a string's offset and lists each match as an index record with its
resolved name, data offset and blob size.

The target is either an index into the strings table or a raw offset written
as 0x-prefixed hex.

Example:
  epcctl records level1.epc 12
  epcctl records level1.epc 0x1A40 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(args)
		},
	}
	return cmd
}

type recordRow struct {
	Index      int    `json:"index"`
	Position   uint32 `json:"position"`
	Name       string `json:"name"`
	DataOffset uint32 `json:"data_offset"`
	Size       uint32 `json:"size"`
	Error      string `json:"error,omitempty"`
}

func newRecordRow(d *epc.RecordDetail) recordRow {
	row := recordRow{
		Index:      d.Index,
		Position:   uint32(d.Ref),
		Name:       d.Name,
		DataOffset: d.Fields.DataOffset,
	}
	if d.BlobErr != nil {
		row.Error = d.BlobErr.Error()
	} else {
		row.Size = d.Blob.Length
	}
	return row
}

func runRecords(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	sel, err := selectTarget(cat, args[1])
	if err != nil {
		return err
	}
	printVerbose("Target offset: 0x%08X\n", sel.Target)

	rows := make([]recordRow, 0, len(sel.Records))
	for j := range sel.Records {
		d, err := cat.SelectRecord(sel, j)
		if err != nil {
			return err
		}
		rows = append(rows, newRecordRow(d))
	}

	if jsonOut {
		return printJSON(rows)
	}
	if len(rows) == 0 {
		printInfo("No records reference 0x%08X\n", sel.Target)
		return nil
	}
	printInfo("Records referencing 0x%08X:\n", sel.Target)
	for _, r := range rows {
		if r.Error != "" {
			printInfo("%4d  @0x%08X  %-32s  data 0x%08X  (%s)\n", r.Index, r.Position, r.Name, r.DataOffset, r.Error)
			continue
		}
		printInfo("%4d  @0x%08X  %-32s  data 0x%08X  %d bytes\n", r.Index, r.Position, r.Name, r.DataOffset, r.Size)
	}
	return nil
}
