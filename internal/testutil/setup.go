package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Fixture is a synthetic container with a known layout:
//
//	0x000  0xFF padding (no strings, no stray offset matches)
//	0x101  "models/tree.mdl\0"
//	0x111  "sounds/wind.wav\0"
//	       three index records: tree LOD0, wind, tree LOD1
//	       tree LOD0 data, tree LOD1 data, wind data
//	       "tex/grass.png\0" + PNG payload
//	       "tex/rock.dds\0"  + DDS-like payload
type Fixture struct {
	Data []byte

	TreeName uint32
	WindName uint32

	// Record positions.
	TreeLOD0 uint32
	Wind     uint32
	TreeLOD1 uint32

	// Data offsets.
	TreeLOD0Data uint32
	TreeLOD1Data uint32
	WindData     uint32

	GrassName uint32
	GrassData []byte
	RockName  uint32
	RockData  []byte
}

// NewFixture builds the standard fixture container.
func NewFixture(t testing.TB) *Fixture {
	t.Helper()
	f := &Fixture{}
	b := NewBuilder()
	b.Fill(0xFF, 0x101)
	f.TreeName = b.Name("models/tree.mdl")
	f.WindName = b.Name("sounds/wind.wav")
	b.Fill(0xFF, 4)

	f.TreeLOD0 = b.Record(f.TreeName, 0)
	f.Wind = b.Record(f.WindName, 0)
	f.TreeLOD1 = b.Record(f.TreeName, 0)

	f.TreeLOD0Data = b.Raw(bytes.Repeat([]byte{0xA0}, 24))
	f.TreeLOD1Data = b.Raw(bytes.Repeat([]byte{0xA1}, 16))
	f.WindData = b.Raw(bytes.Repeat([]byte{0xB0}, 16))
	b.SetRecordData(f.TreeLOD0, f.TreeLOD0Data)
	b.SetRecordData(f.Wind, f.WindData)
	b.SetRecordData(f.TreeLOD1, f.TreeLOD1Data)

	f.GrassData = PNG(t, 2, 2)
	f.GrassName = b.Name("tex/grass.png")
	b.Raw(f.GrassData)

	f.RockData = append([]byte("DDS |"), bytes.Repeat([]byte{0xC0}, 27)...)
	f.RockName = b.Name("tex/rock.dds")
	b.Raw(f.RockData)

	f.Data = b.Bytes()
	return f
}

// Write stores the fixture in dir and returns its path.
func (f *Fixture) Write(t testing.TB, dir string) string {
	t.Helper()
	return WriteFile(t, dir, FixtureName, f.Data)
}

// WriteFixture builds the standard fixture in a fresh temp dir and returns
// both the fixture and its path.
func WriteFixture(t testing.TB) (*Fixture, string) {
	t.Helper()
	f := NewFixture(t)
	return f, f.Write(t, t.TempDir())
}

// WriteFile writes data to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// PNG returns an encoded w x h image.
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 0x80, A: 0xFF})
		}
	}
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return out.Bytes()
}
