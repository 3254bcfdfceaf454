// Package format houses low-level decoders for the .epc container. No schema
// is published for the format; the layouts here were inferred from sample
// files and are kept deliberately small so higher-level packages can treat
// them as heuristics rather than guarantees.
package format

// ============================================================================
// Index Record Layout
// ============================================================================
// Index records are located by pattern search, never by table walk. The
// observed layout (little-endian):
//
//	0x00  u32  name offset (absolute, points at a NUL-terminated string)
//	0x04  u32  unknown
//	0x08  u32  data offset (absolute, start of the resource blob)
//	0x0C  u32  unknown
const (
	// RecordSize is the nominal width of an index record.
	RecordSize = 0x10

	// RecordNameOffset is the position of the name offset field.
	RecordNameOffset = 0x00

	// RecordDataOffset is the position of the data offset field.
	RecordDataOffset = 0x08

	// RecordMinSpan is the number of bytes that must follow a record position
	// for both fields to be readable.
	RecordMinSpan = RecordDataOffset + 4 // 0x0C

	// FieldSize is the width of every offset field.
	FieldSize = 4
)

// ============================================================================
// String Runs
// ============================================================================
const (
	// PrintableMin and PrintableMax bound the bytes accepted in a string run.
	PrintableMin = 0x20
	PrintableMax = 0x7E

	// MinStringLen is the shortest run kept by the general string policy.
	MinStringLen = 4

	// NameTerminator ends texture and record names.
	NameTerminator = 0x00
)

// ============================================================================
// Hex Window
// ============================================================================
const (
	// HexRowWidth is the number of bytes per hex-dump row.
	HexRowWidth = 16

	// HexWindowRadius is how far the detail window reaches either side of
	// a selected offset.
	HexWindowRadius = 32
)
