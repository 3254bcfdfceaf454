package format

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/epckit/internal/buf"
	"github.com/joshuapare/epckit/pkg/types"
)

// DecodeASCII converts raw name bytes to a string, dropping every byte that
// is not 7-bit ASCII. It never fails.
func DecodeASCII(raw []byte) string {
	if isASCII(raw) {
		return string(raw)
	}
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c <= unicode.MaxASCII {
			out = append(out, c)
		}
	}
	return string(out)
}

// DecodeDisplay decodes raw name bytes as Windows-1252 so high bytes show up
// as characters. The result is for display; file names use DecodeASCII.
func DecodeDisplay(raw []byte) string {
	if isASCII(raw) {
		return string(raw)
	}
	var sb strings.Builder
	for _, c := range raw {
		sb.WriteRune(charmap.Windows1252.DecodeByte(c))
	}
	return sb.String()
}

// NameBytes returns the raw bytes of the NUL-terminated name starting at off,
// searching at most lookahead bytes for the terminator.
//
// When no terminator is found the bytes inside the window are still returned
// together with ErrNameUnterminated, so callers can keep the truncated name.
func NameBytes(b []byte, off uint32, lookahead int) ([]byte, error) {
	start := int(off)
	if start >= len(b) {
		return nil, types.Errorf(types.ErrKindOutOfBounds, int64(off), nil,
			"name offset beyond buffer of %d bytes", len(b))
	}
	_, end := buf.Clip(start, start+lookahead, len(b))
	window := b[start:end]
	if i := bytes.IndexByte(window, NameTerminator); i >= 0 {
		return window[:i], nil
	}
	return window, types.Errorf(types.ErrKindNameResolution, int64(off), nil,
		"no terminator within %d bytes", len(window))
}

// ResolveName is NameBytes followed by DecodeASCII.
func ResolveName(b []byte, off uint32, lookahead int) (string, error) {
	raw, err := NameBytes(b, off, lookahead)
	return DecodeASCII(raw), err
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c > unicode.MaxASCII {
			return false
		}
	}
	return true
}
