// Package printer renders scan results: texture reports, string tables and
// hex rows, as text or JSON.
package printer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/joshuapare/epckit/pkg/types"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the plain report layout.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowASCII appends a printable-character gutter to hex rows.
	// Default: false
	ShowASCII bool

	// Indent is the JSON indent string.
	// Default: two spaces
	Indent string
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format: FormatText,
		Indent: "  ",
	}
}

// Report is the input of a scan report: the source container and the
// texture table found in it.
type Report struct {
	Source   string
	Textures []types.StringEntry
}

// Printer writes formatted output to w.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a Printer.
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintReport(printer.Report{Source: path, Textures: textures})
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// PrintReport writes the texture scan report.
func (p *Printer) PrintReport(r Report) error {
	if p.opts.Format == FormatJSON {
		return p.printReportJSON(r)
	}
	return p.printReportText(r)
}

// PrintStrings writes a string or texture table, one entry per line.
func (p *Printer) PrintStrings(entries []types.StringEntry) error {
	if p.opts.Format == FormatJSON {
		return p.encodeJSON(entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(p.writer, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintHex writes hex rows.
func (p *Printer) PrintHex(rows []HexRow) error {
	if p.opts.Format == FormatJSON {
		return p.printHexJSON(rows)
	}
	for _, r := range rows {
		line := r.String()
		if p.opts.ShowASCII {
			line = r.WithASCII()
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}
	return nil
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
