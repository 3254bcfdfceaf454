package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.epc")
	require.NoError(t, os.WriteFile(path, []byte("ABCD"), 0o644))

	data, release, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, []byte("ABCD"), data)
	require.NoError(t, release())

	_, _, err = Read(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
