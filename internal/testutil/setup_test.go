package testutil

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixtureLayout(t *testing.T) {
	f := NewFixture(t)

	require.Equal(t, uint32(0x101), f.TreeName)
	require.Equal(t, uint32(0x111), f.WindName)
	require.True(t, bytes.HasPrefix(f.Data[f.TreeName:], []byte("models/tree.mdl\x00")))

	for _, rec := range []struct{ pos, name, data uint32 }{
		{f.TreeLOD0, f.TreeName, f.TreeLOD0Data},
		{f.Wind, f.WindName, f.WindData},
		{f.TreeLOD1, f.TreeName, f.TreeLOD1Data},
	} {
		require.Equal(t, rec.name, binary.LittleEndian.Uint32(f.Data[rec.pos:]))
		require.Equal(t, rec.data, binary.LittleEndian.Uint32(f.Data[rec.pos+8:]))
	}

	grassStart := f.GrassName + uint32(len("tex/grass.png\x00"))
	require.Equal(t, f.GrassData, f.Data[grassStart:f.RockName])
	rockStart := f.RockName + uint32(len("tex/rock.dds\x00"))
	require.Equal(t, f.RockData, f.Data[rockStart:])
}
