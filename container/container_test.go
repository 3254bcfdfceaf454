package container

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/epckit/pkg/types"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.epc")
	want := []byte("\x00ABCD\x00payload")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	for _, mmap := range []bool{false, true} {
		c, err := Open(path, types.OpenOptions{Mmap: mmap})
		require.NoError(t, err)
		require.Equal(t, want, c.Bytes())
		require.Equal(t, len(want), c.Len())
		require.Equal(t, path, c.Path())
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
		if mmap {
			require.Zero(t, c.Len())
			_, err = c.Slice(types.Blob{Start: 0, Length: 1})
			require.ErrorIs(t, err, types.ErrOutOfBounds)
			_, w := c.Window(2, 32, 32)
			require.Empty(t, w)
		} else {
			require.Equal(t, want, c.Bytes())
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.epc"), types.OpenOptions{})
	require.ErrorIs(t, err, types.ErrFileRead)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlice(t *testing.T) {
	c := FromBytes("mem", []byte("0123456789"))

	got, err := c.Slice(types.Blob{Start: 2, Length: 3})
	require.NoError(t, err)
	require.Equal(t, []byte("234"), got)

	got, err = c.Slice(types.Blob{Start: 10, Length: 0})
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = c.Slice(types.Blob{Start: 8, Length: 3})
	require.ErrorIs(t, err, types.ErrOutOfBounds)
}

func TestWindow(t *testing.T) {
	data := make([]byte, 100)
	c := FromBytes("mem", data)

	start, w := c.Window(10, 32, 32)
	require.Equal(t, 0, start)
	require.Len(t, w, 42)

	start, w = c.Window(90, 32, 32)
	require.Equal(t, 58, start)
	require.Len(t, w, 42)

	start, w = c.Window(50, 32, 32)
	require.Equal(t, 18, start)
	require.Len(t, w, 64)

	start, w = c.Window(500, 32, 32)
	require.Equal(t, 100, start)
	require.Empty(t, w)

	_, w = FromBytes("empty", nil).Window(0, 32, 32)
	require.Empty(t, w)
}
