// Package container provides the byte buffer behind an .epc game-asset file
// and hosts the heuristic scanners that work on it.
//
// # Overview
//
// The .epc format has no published schema, no magic header, and no version
// field. What can be observed is:
//
//   - printable ASCII names (resource and texture names) embedded in the file
//   - fixed-width index records that hold the byte offset of such a name at
//     +0x00 and the byte offset of the resource data at +0x08
//   - texture payloads that directly follow their NUL-terminated name
//
// All offsets are absolute and little-endian.
//
// # Subpackages
//
//   - strscan: printable-run scanner with pluggable inclusion policies
//   - locate: little-endian offset search for index records
//   - extract: blob extent computation (record based and texture-name based)
//   - printer: scan reports and hex rows
//   - preview: image decoding for extracted texture blobs
//
// # Opening a Container
//
//	c, err := container.Open("/path/to/level.epc", types.DefaultOpenOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
// With OpenOptions.Mmap the file is memory-mapped read-only on Unix; every
// other configuration reads the whole file into memory.
//
// # Heuristics
//
// Both blob-boundary rules ("next record's data offset" and "next texture
// name's offset") are approximations. No length field has been found in the
// format, so an extent may overrun into bytes belonging to the next resource.
package container
