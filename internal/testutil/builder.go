package testutil

import (
	"encoding/binary"
)

// Builder assembles synthetic containers byte by byte. Offsets returned by
// its methods are absolute positions in the final buffer.
type Builder struct {
	data []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Offset returns the position of the next byte to be written.
func (b *Builder) Offset() uint32 {
	return uint32(len(b.data))
}

// Fill appends n copies of c.
func (b *Builder) Fill(c byte, n int) *Builder {
	for range n {
		b.data = append(b.data, c)
	}
	return b
}

// Raw appends p and returns its offset.
func (b *Builder) Raw(p []byte) uint32 {
	off := b.Offset()
	b.data = append(b.data, p...)
	return off
}

// Name appends s followed by a NUL and returns the offset of s.
func (b *Builder) Name(s string) uint32 {
	off := b.Raw([]byte(s))
	b.data = append(b.data, 0)
	return off
}

// Record appends a 16-byte index record and returns its position. The two
// unknown fields are filled with 0xFFFFFFFF.
func (b *Builder) Record(nameOff, dataOff uint32) uint32 {
	off := b.Offset()
	var rec [16]byte
	binary.LittleEndian.PutUint32(rec[0:], nameOff)
	binary.LittleEndian.PutUint32(rec[4:], 0xFFFFFFFF)
	binary.LittleEndian.PutUint32(rec[8:], dataOff)
	binary.LittleEndian.PutUint32(rec[12:], 0xFFFFFFFF)
	b.data = append(b.data, rec[:]...)
	return off
}

// SetRecordData patches the data offset of the record at pos.
func (b *Builder) SetRecordData(pos, dataOff uint32) {
	binary.LittleEndian.PutUint32(b.data[pos+8:], dataOff)
}

// Bytes returns a copy of the assembled buffer.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}
