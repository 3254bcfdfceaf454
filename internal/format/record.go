package format

import (
	"github.com/joshuapare/epckit/internal/buf"
	"github.com/joshuapare/epckit/pkg/types"
)

// DecodeRecord reads the name and data offset fields of the index record at
// off. The record must leave RecordMinSpan bytes inside b.
func DecodeRecord(b []byte, off int) (types.RecordFields, error) {
	if off < 0 || !buf.Has(b, off, RecordMinSpan) {
		return types.RecordFields{}, types.Errorf(types.ErrKindOutOfBounds, int64(off), nil,
			"record needs %d bytes, buffer has %d", RecordMinSpan, len(b))
	}
	name, _ := buf.U32LEAt(b, off+RecordNameOffset)
	data, _ := buf.U32LEAt(b, off+RecordDataOffset)
	return types.RecordFields{NameOffset: name, DataOffset: data}, nil
}

// RawRecord returns up to RecordSize bytes starting at off, clipped to the
// end of b. It returns nil when off is outside b.
func RawRecord(b []byte, off int) []byte {
	lo, hi := buf.Clip(off, off+RecordSize, len(b))
	if off < 0 || lo >= hi {
		return nil
	}
	return b[lo:hi]
}
