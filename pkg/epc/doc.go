/*
Package epc provides the high-level API for inspecting .epc game-asset
containers: load a file, browse its string and texture tables, follow a
string to the index records that reference it, and extract resource blobs.

# Quick Start

	cat, err := epc.Load(ctx, "level1.epc", types.DefaultOpenOptions())
	if err != nil {
	    log.Fatal(err)
	}
	defer cat.Close()

	for i, s := range cat.Strings() {
	    fmt.Println(i, s)
	}

# Selections

Selecting a string searches the whole buffer for index records holding that
string's offset. The record list lives in the returned Selection, not in the
catalog, so concurrent callers never share it:

	sel, err := cat.SelectString(12)
	if err != nil {
	    return err
	}
	for j := range sel.Records {
	    rec, err := cat.SelectRecord(sel, j)
	    ...
	}

Texture names do not need records; their payload follows the name:

	tex, err := cat.SelectTexture(0)
	blob, err := cat.BlobBytes(tex.Blob)

# Sessions

A Session owns at most one catalog at a time. Loading a new file swaps the
catalog in one step and only after the new file has been read and scanned;
a failed load leaves the previous catalog in place. Selections remember the
catalog generation they were made against and are rejected with
types.ErrStale once it has been replaced.

# Export

ExportRecord, ExportRecords, ExportTextures and WriteScanReport write next to
the source file (<path>_export, <path>_textures, <path>_scan.txt) through
the FS interface. Batch exports continue past per-item failures and report
them in ExportResult.Failed.
*/
package epc
