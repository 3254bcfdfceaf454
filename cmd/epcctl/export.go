package main

import (
	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write every texture blob to <file>_textures/",
		Long: `The export command writes the payload following each texture name
to a directory named after the container with a "_textures" suffix. Output
files keep the texture's base name with a lowercased extension.

A texture whose extent cannot be computed is reported and skipped; the rest
of the batch continues.

Example:
  epcctl export level1.epc
  epcctl export level1.epc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	res, err := cat.ExportTextures(epc.OSFS{})
	if err != nil {
		return err
	}
	return printExportResult(res)
}

type exportFailureJSON struct {
	Name   string `json:"name"`
	Offset uint32 `json:"offset"`
	Error  string `json:"error"`
}

type exportResultJSON struct {
	Dir      string              `json:"dir"`
	Exported []string            `json:"exported"`
	Failed   []exportFailureJSON `json:"failed"`
}

func printExportResult(res *epc.ExportResult) error {
	if jsonOut {
		out := exportResultJSON{
			Dir:      res.Dir,
			Exported: res.Exported,
			Failed:   []exportFailureJSON{},
		}
		if out.Exported == nil {
			out.Exported = []string{}
		}
		for _, f := range res.Failed {
			out.Failed = append(out.Failed, exportFailureJSON{Name: f.Name, Offset: f.Offset, Error: f.Err.Error()})
		}
		return printJSON(out)
	}

	for _, p := range res.Exported {
		printVerbose("  %s\n", p)
	}
	for _, f := range res.Failed {
		printError("%s @ 0x%08X: %v\n", f.Name, f.Offset, f.Err)
	}
	printInfo("Exported %d file(s) to %s", len(res.Exported), res.Dir)
	if len(res.Failed) > 0 {
		printInfo(", %d failed", len(res.Failed))
	}
	printInfo("\n")
	return nil
}
