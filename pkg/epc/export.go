package epc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/epckit/container/printer"
	"github.com/joshuapare/epckit/container/strscan"
	"github.com/joshuapare/epckit/pkg/types"
)

// Output locations, relative to the source file path.
const (
	RecordExportSuffix  = "_export"
	TextureExportSuffix = "_textures"
	ScanReportSuffix    = "_scan.txt"
)

// FS is the filesystem exports write through.
type FS interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
}

// OSFS writes to the real filesystem.
type OSFS struct{}

// MkdirAll creates path and any parents. Existing directories are fine.
func (OSFS) MkdirAll(path string) error { return os.MkdirAll(path, 0o755) }

// WriteFile replaces path with data.
func (OSFS) WriteFile(path string, data []byte) error { return os.WriteFile(path, data, 0o644) }

// ExportFailure records one item a batch export could not write.
type ExportFailure struct {
	Name   string
	Offset uint32
	Err    error
}

// ExportResult summarizes an export.
type ExportResult struct {
	Dir      string
	Exported []string
	Failed   []ExportFailure
}

// baseName returns the final component of a container-internal name. Both
// separators are honored regardless of the host OS.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func usableFileName(name string) bool {
	return name != "" && name != "." && name != ".."
}

// RecordFileName is the file name record detail d is exported under.
func RecordFileName(d *RecordDetail) string {
	if name := baseName(d.Name); usableFileName(name) {
		return name
	}
	return fmt.Sprintf("record_%08X", uint32(d.Ref))
}

// TextureFileName is the file name texture tex is exported under: its base
// name with the extension lowercased.
func TextureFileName(tex types.StringEntry) string {
	ext := strscan.Ext(tex.Text)
	base := baseName(tex.Text)
	stem := strings.TrimSuffix(base, ext)
	if !usableFileName(stem) {
		stem = fmt.Sprintf("texture_%08X", tex.Offset)
	}
	return stem + strings.ToLower(ext)
}

// ExportRecord writes the blob of record j of sel to <path>_export/.
func (cat *Catalog) ExportRecord(sel *Selection, j int, fsys FS) (string, error) {
	d, err := cat.SelectRecord(sel, j)
	if err != nil {
		return "", err
	}
	if d.BlobErr != nil {
		return "", d.BlobErr
	}
	dir := cat.Path() + RecordExportSuffix
	if err := fsys.MkdirAll(dir); err != nil {
		return "", types.Errorf(types.ErrKindFileRead, types.NoOffset, err, "create %s", dir)
	}
	return cat.writeBlob(dir, RecordFileName(d), d.Blob, fsys)
}

// ExportRecords writes every record blob of sel. Failures are collected and
// do not stop the batch.
func (cat *Catalog) ExportRecords(sel *Selection, fsys FS) (*ExportResult, error) {
	if err := cat.checkSelection(sel); err != nil {
		return nil, err
	}
	res := &ExportResult{Dir: cat.Path() + RecordExportSuffix}
	if err := fsys.MkdirAll(res.Dir); err != nil {
		return nil, types.Errorf(types.ErrKindFileRead, types.NoOffset, err, "create %s", res.Dir)
	}
	for j, ref := range sel.Records {
		d, err := cat.SelectRecord(sel, j)
		if err == nil {
			err = d.BlobErr
		}
		if err != nil {
			name := ""
			if d != nil {
				name = d.Name
			}
			res.Failed = append(res.Failed, ExportFailure{Name: name, Offset: uint32(ref), Err: err})
			continue
		}
		out, err := cat.writeBlob(res.Dir, RecordFileName(d), d.Blob, fsys)
		if err != nil {
			res.Failed = append(res.Failed, ExportFailure{Name: d.Name, Offset: uint32(ref), Err: err})
			continue
		}
		res.Exported = append(res.Exported, out)
	}
	cat.log.Debug("records exported", "dir", res.Dir, "exported", len(res.Exported), "failed", len(res.Failed))
	return res, nil
}

// ExportTextures writes every texture blob to <path>_textures/. Failures are
// collected and do not stop the batch.
func (cat *Catalog) ExportTextures(fsys FS) (*ExportResult, error) {
	res := &ExportResult{Dir: cat.Path() + TextureExportSuffix}
	if err := fsys.MkdirAll(res.Dir); err != nil {
		return nil, types.Errorf(types.ErrKindFileRead, types.NoOffset, err, "create %s", res.Dir)
	}
	for i, tex := range cat.textures {
		d, err := cat.SelectTexture(i)
		if err != nil {
			res.Failed = append(res.Failed, ExportFailure{Name: tex.Text, Offset: tex.Offset, Err: err})
			continue
		}
		out, err := cat.writeBlob(res.Dir, TextureFileName(tex), d.Blob, fsys)
		if err != nil {
			res.Failed = append(res.Failed, ExportFailure{Name: tex.Text, Offset: tex.Offset, Err: err})
			continue
		}
		res.Exported = append(res.Exported, out)
	}
	cat.log.Debug("textures exported", "dir", res.Dir, "exported", len(res.Exported), "failed", len(res.Failed))
	return res, nil
}

func (cat *Catalog) writeBlob(dir, name string, b types.Blob, fsys FS) (string, error) {
	data, err := cat.BlobBytes(b)
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, name)
	if err := fsys.WriteFile(out, data); err != nil {
		return "", types.Errorf(types.ErrKindFileRead, int64(b.Start), err, "write %s", out)
	}
	return out, nil
}

// ScanReport renders the texture scan report.
func (cat *Catalog) ScanReport(format printer.Format) ([]byte, error) {
	var buf bytes.Buffer
	opts := printer.DefaultOptions()
	opts.Format = format
	if err := printer.New(&buf, opts).PrintReport(printer.Report{
		Source:   cat.Path(),
		Textures: cat.textures,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteScanReport writes the texture scan report to <path>_scan.txt.
func (cat *Catalog) WriteScanReport(fsys FS, format printer.Format) (string, error) {
	data, err := cat.ScanReport(format)
	if err != nil {
		return "", err
	}
	out := cat.Path() + ScanReportSuffix
	if err := fsys.WriteFile(out, data); err != nil {
		return "", types.Errorf(types.ErrKindFileRead, types.NoOffset, err, "write %s", out)
	}
	return out, nil
}
