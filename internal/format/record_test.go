package format

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/epckit/pkg/types"
)

func TestDecodeRecord(t *testing.T) {
	buf := make([]byte, 0x40)
	binary.LittleEndian.PutUint32(buf[0x10+RecordNameOffset:], 0x30)
	binary.LittleEndian.PutUint32(buf[0x10+RecordDataOffset:], 0x1234)

	fields, err := DecodeRecord(buf, 0x10)
	require.NoError(t, err)
	require.Equal(t, types.RecordFields{NameOffset: 0x30, DataOffset: 0x1234}, fields)
}

func TestDecodeRecordExactFit(t *testing.T) {
	buf := make([]byte, RecordMinSpan)
	binary.LittleEndian.PutUint32(buf[RecordDataOffset:], 7)

	fields, err := DecodeRecord(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(7), fields.DataOffset)
}

func TestDecodeRecordOutOfBounds(t *testing.T) {
	buf := make([]byte, 20)
	for _, off := range []int{9, 19, 20, 100, -1} {
		_, err := DecodeRecord(buf, off)
		require.ErrorIs(t, err, ErrOutOfBounds, "offset %d", off)
		if off >= 0 {
			var e *types.Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, int64(off), e.Offset)
		}
	}
}

func TestRawRecord(t *testing.T) {
	buf := make([]byte, 20)
	for i := range buf {
		buf[i] = byte(i)
	}
	require.Len(t, RawRecord(buf, 0), RecordSize)
	require.Equal(t, []byte{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, RawRecord(buf, 10))
	require.Nil(t, RawRecord(buf, 20))
	require.Nil(t, RawRecord(buf, -4))
}
