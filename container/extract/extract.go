// Package extract computes the byte extent of a resource inside a container
// buffer.
//
// Two independent policies exist because the format offers two independent
// clues. Index records carry a data offset but no length, so a record's blob
// runs to the next record's data offset. Texture payloads sit right after
// their NUL-terminated name, so a texture blob runs to the next texture name.
// Neither rule is a verified parse; both can overrun into interleaved header
// bytes of the following resource.
package extract

import (
	"bytes"
	"sort"

	"github.com/joshuapare/epckit/internal/format"
	"github.com/joshuapare/epckit/pkg/types"
)

// RecordBlob returns the blob referenced by refs[i]. refs must be ordered by
// ascending position, as returned by locate.Locate.
//
// The size is the next record's data offset minus this record's data offset,
// or the distance to the end of data for the last record.
func RecordBlob(data []byte, refs []types.RecordRef, i int) (types.Blob, error) {
	if i < 0 || i >= len(refs) {
		return types.Blob{}, types.Errorf(types.ErrKindNotFound, types.NoOffset, nil,
			"record index %d out of range [0,%d)", i, len(refs))
	}
	pos := int64(refs[i])
	cur, err := format.DecodeRecord(data, int(refs[i]))
	if err != nil {
		return types.Blob{}, err
	}
	start := int64(cur.DataOffset)

	var size int64
	if i+1 < len(refs) {
		next, err := format.DecodeRecord(data, int(refs[i+1]))
		if err != nil {
			return types.Blob{}, err
		}
		size = int64(next.DataOffset) - start
	} else {
		size = int64(len(data)) - start
	}
	if size <= 0 {
		return types.Blob{}, types.Errorf(types.ErrKindInvalidSize, pos, nil,
			"record blob at data offset 0x%08X has size %d", start, size)
	}
	if start+size > int64(len(data)) {
		return types.Blob{}, types.Errorf(types.ErrKindOutOfBounds, pos, nil,
			"record blob [0x%08X, 0x%08X) exceeds buffer of %d bytes", start, start+size, len(data))
	}
	return types.Blob{Start: uint32(start), Length: uint32(size)}, nil
}

// TextureBlob returns the blob following tex's name. table is the full
// texture table in ascending offset order.
//
// The first occurrence of name+NUL in data is authoritative even when the
// same name appears again later. The blob ends at the first texture name
// offset strictly after its start, or at the end of data.
func TextureBlob(data []byte, tex types.StringEntry, table []types.StringEntry) (types.Blob, error) {
	pat := NamePattern(tex.Text)
	first := bytes.Index(data, pat)
	if first < 0 {
		return types.Blob{}, types.Errorf(types.ErrKindNotFound, int64(tex.Offset), nil,
			"texture name %q not terminated anywhere in buffer", tex.Text)
	}
	start := first + len(pat)
	end := len(data)
	k := sort.Search(len(table), func(k int) bool { return int(table[k].Offset) > start })
	if k < len(table) {
		end = int(table[k].Offset)
	}
	if end <= start {
		return types.Blob{}, types.Errorf(types.ErrKindInvalidSize, int64(tex.Offset), nil,
			"texture blob [0x%08X, 0x%08X) is empty", start, end)
	}
	return types.Blob{Start: uint32(start), Length: uint32(end - start)}, nil
}

// NamePattern returns the exact bytes searched for when locating a texture
// payload: the ASCII name followed by a single NUL.
func NamePattern(name string) []byte {
	pat := make([]byte, 0, len(name)+1)
	for i := 0; i < len(name); i++ {
		if name[i] < 0x80 {
			pat = append(pat, name[i])
		}
	}
	return append(pat, format.NameTerminator)
}

// FindAll returns every position of pattern in data in ascending order,
// advancing one byte after each hit so overlapping occurrences are kept.
func FindAll(data, pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}
	var out []int
	for i := 0; ; {
		j := bytes.Index(data[i:], pattern)
		if j < 0 {
			return out
		}
		out = append(out, i+j)
		i += j + 1
	}
}
