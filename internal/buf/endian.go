// Package buf contains bounds-checked slicing and little-endian decoding
// helpers shared by the container scanners.
package buf

import "encoding/binary"

// U32LEAt reads a little-endian uint32 at off, reporting ok = false when the
// four bytes are not all inside b.
func U32LEAt(b []byte, off int) (uint32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// LE32 returns the little-endian encoding of v.
func LE32(v uint32) [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], v)
	return out
}
