package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/epckit/internal/format"
)

// HexRow is one line of a hex dump: up to 16 bytes and the address of the
// first one.
type HexRow struct {
	Addr  uint32
	Bytes []byte
}

// HexRows splits b into 16-byte rows addressed from start.
func HexRows(start int, b []byte) []HexRow {
	rows := make([]HexRow, 0, (len(b)+format.HexRowWidth-1)/format.HexRowWidth)
	for i := 0; i < len(b); i += format.HexRowWidth {
		end := min(i+format.HexRowWidth, len(b))
		rows = append(rows, HexRow{Addr: uint32(start + i), Bytes: b[i:end]})
	}
	return rows
}

// String renders "AAAAAAAA: XX XX ...".
func (r HexRow) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%08X:", r.Addr)
	for _, c := range r.Bytes {
		fmt.Fprintf(&sb, " %02X", c)
	}
	return sb.String()
}

// WithASCII renders the row with padded hex columns and a printable gutter.
func (r HexRow) WithASCII() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%08X:", r.Addr)
	for i := 0; i < format.HexRowWidth; i++ {
		if i < len(r.Bytes) {
			fmt.Fprintf(&sb, " %02X", r.Bytes[i])
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteString("  ")
	for _, c := range r.Bytes {
		if c >= format.PrintableMin && c <= format.PrintableMax {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
