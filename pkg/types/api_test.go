package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := Errorf(ErrKindInvalidSize, 0x40, nil, "record blob")
	require.ErrorIs(t, err, ErrInvalidSize)
	require.NotErrorIs(t, err, ErrOutOfBounds)

	wrapped := fmt.Errorf("export: %w", err)
	require.ErrorIs(t, wrapped, ErrInvalidSize)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrKindInvalidSize, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	err := Errorf(ErrKindOutOfBounds, 0x10, cause, "record field")
	assert.Equal(t, "record field at 0x00000010: boom", err.Error())

	err = Errorf(ErrKindFileRead, NoOffset, nil, "open x.epc")
	assert.Equal(t, "open x.epc", err.Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Equal(t, "invalid-size", ErrKindInvalidSize.String())
	assert.Equal(t, "ErrKind(99)", ErrKind(99).String())
}

func TestBlobEnd(t *testing.T) {
	b := Blob{Start: 0xFFFFFFF0, Length: 0x20}
	assert.Equal(t, uint64(0x100000010), b.End())
	assert.Equal(t, "0x00000010: ABCD", StringEntry{Offset: 0x10, Text: "ABCD"}.String())
}

func TestOpenOptionsNormalize(t *testing.T) {
	o := OpenOptions{ChunkSize: 10}.Normalize()
	assert.Equal(t, MinChunkSize, o.ChunkSize)
	assert.Equal(t, DefaultNameLookahead, o.NameLookahead)
	assert.Equal(t, DefaultTextureExtensions, o.TextureExtensions)
	assert.NotNil(t, o.Logger)
	assert.Positive(t, o.Workers)

	serial := OpenOptions{Workers: -1}.Normalize()
	assert.False(t, serial.Parallel(1<<30))

	par := OpenOptions{Workers: 4, ParallelThreshold: 100}.Normalize()
	assert.True(t, par.Parallel(100))
	assert.False(t, par.Parallel(99))
}
