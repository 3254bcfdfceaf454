package main

import (
	"fmt"

	"github.com/joshuapare/epckit/container/preview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPreviewCmd())
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file> <texture-index>",
		Short: "Decode a texture blob and report its format and size",
		Long: `The preview command locates a texture's blob and tries to decode it
as an image (PNG, JPEG, GIF, BMP). Formats without a decoder, such as DDS and
TGA, are reported as unsupported.

Example:
  epcctl preview level1.epc 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args)
		},
	}
	return cmd
}

type previewResult struct {
	Name   string        `json:"name"`
	Offset uint32        `json:"offset"`
	Start  uint32        `json:"start"`
	Size   uint32        `json:"size"`
	Image  *preview.Info `json:"image,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func runPreview(args []string) error {
	cat, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	defer cat.Close()

	i, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	tex, err := cat.SelectTexture(i)
	if err != nil {
		return fmt.Errorf("failed to locate texture: %w", err)
	}
	data, err := cat.BlobBytes(tex.Blob)
	if err != nil {
		return err
	}

	res := previewResult{
		Name:   tex.Entry.Text,
		Offset: tex.Entry.Offset,
		Start:  tex.Blob.Start,
		Size:   tex.Blob.Length,
	}
	if info, err := preview.Describe(data); err != nil {
		res.Error = err.Error()
	} else {
		res.Image = &info
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("\nTexture: %s\n", res.Name)
	printInfo("  Name offset: 0x%08X\n", res.Offset)
	printInfo("  Blob:        %s\n", tex.Blob)
	if len(tex.Occurrences) > 1 {
		printInfo("  Note:        name occurs %d times; using the first\n", len(tex.Occurrences))
	}
	if res.Image != nil {
		printInfo("  Image:       %s\n", res.Image)
	} else {
		printInfo("  Image:       %s\n", res.Error)
	}
	return nil
}
