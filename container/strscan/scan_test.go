package strscan

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/epckit/pkg/types"
)

func TestScanFramedRun(t *testing.T) {
	data := []byte{0x00, 0x41, 0x42, 0x43, 0x44, 0x00}

	got := Scan(data, General)
	require.Equal(t, []types.StringEntry{{Offset: 1, Text: "ABCD"}}, got)
}

func TestScanGeneralPolicy(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []types.StringEntry
	}{
		{name: "empty buffer", data: "", want: nil},
		{name: "no printable bytes", data: "\x00\x01\xff\x7f", want: nil},
		{name: "short run dropped", data: "\x00abc\x00", want: nil},
		{name: "alnum kept", data: "\x00abc1\x00", want: []types.StringEntry{{Offset: 1, Text: "abc1"}}},
		{name: "separator kept", data: "\x00a.b_\x00", want: []types.StringEntry{{Offset: 1, Text: "a.b_"}}},
		{name: "backslash kept", data: "\x01a\\bc\x01", want: []types.StringEntry{{Offset: 1, Text: `a\bc`}}},
		{name: "space without separator dropped", data: "\x00ab cd\x00", want: nil},
		{name: "space with separator kept", data: "\x00ab c.d\x00", want: []types.StringEntry{{Offset: 1, Text: "ab c.d"}}},
		{name: "run at buffer start", data: "DATA\x00", want: []types.StringEntry{{Offset: 0, Text: "DATA"}}},
		{name: "run at buffer end", data: "\x00\x00tail", want: []types.StringEntry{{Offset: 2, Text: "tail"}}},
		{name: "whole buffer is one run", data: "a/b/c", want: []types.StringEntry{{Offset: 0, Text: "a/b/c"}}},
		{
			name: "multiple runs in order",
			data: "\x00root\x00\x10tex/a.dds\xffxy\x00last_one",
			want: []types.StringEntry{{Offset: 1, Text: "root"}, {Offset: 7, Text: "tex/a.dds"}, {Offset: 20, Text: "last_one"}},
		},
		{name: "0x7F splits runs", data: "abcd\x7fefgh", want: []types.StringEntry{{Offset: 0, Text: "abcd"}, {Offset: 5, Text: "efgh"}}},
		{name: "high bytes split runs", data: "abcd\x80efg", want: []types.StringEntry{{Offset: 0, Text: "abcd"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Scan([]byte(tt.data), General))
		})
	}
}

func TestScanTexturePolicy(t *testing.T) {
	data := []byte("\x00a.png\x00\x00TEX/WALL.DDS\x00readme.txt\x00.tga\x00x.jpg.bak\x00b.Bmp")

	got := Scan(data, Texture)
	require.Equal(t, []types.StringEntry{
		{Offset: 1, Text: "a.png"},
		{Offset: 8, Text: "TEX/WALL.DDS"},
		{Offset: 47, Text: "b.Bmp"},
	}, got)

	// General ignores extensions entirely.
	general := Scan(data, General)
	assert.Contains(t, general, types.StringEntry{Offset: 21, Text: "readme.txt"})
}

func TestScanTextureShortRun(t *testing.T) {
	// Shorter than the general minimum but still a texture name.
	data := []byte("\x00a.x")
	require.Empty(t, Scan(data, General))
	require.Equal(t, []types.StringEntry{{Offset: 1, Text: "a.x"}}, Scan(data, TextureWith(".x")))
}

func TestTextureWith(t *testing.T) {
	p := TextureWith(".PNG", ".ktx")
	assert.True(t, p("a.png"))
	assert.True(t, p("b.KTX"))
	assert.False(t, p("c.dds"))
	assert.False(t, p("png"))
}

func TestExt(t *testing.T) {
	cases := map[string]string{
		"a.png":            ".png",
		"dir/b.tar.dds":    ".dds",
		`dir\c.TGA`:        ".TGA",
		".png":             "",
		"..png":            "",
		"dir/.hidden.jpg":  ".jpg",
		"dir.d/noext":      "",
		"trailing.":        ".",
		"":                 "",
		"a.b/c":            "",
		"x/../y.bmp":       ".bmp",
		"textures\\z.bmp ": ".bmp ",
	}
	for in, want := range cases {
		assert.Equal(t, want, Ext(in), "Ext(%q)", in)
	}
}

func TestScanDeterministicAndPrintable(t *testing.T) {
	data := randomBuffer(t, 64<<10, 1)

	first := Scan(data, General)
	second := Scan(data, General)
	require.Equal(t, first, second)
	require.NotEmpty(t, first)

	prev := -1
	for _, e := range first {
		require.Less(t, int(e.Offset), len(data))
		require.Greater(t, int(e.Offset), prev, "offsets must be strictly ascending")
		prev = int(e.Offset)
		for i := 0; i < len(e.Text); i++ {
			require.True(t, IsPrintable(e.Text[i]), "byte %#x in %q", e.Text[i], e.Text)
		}
		require.Equal(t, e.Text, string(data[int(e.Offset):int(e.Offset)+len(e.Text)]))
	}
}

func TestScanParallelMatchesSequential(t *testing.T) {
	data := randomBuffer(t, 40<<10, 7)
	// A run spanning several chunk boundaries.
	copy(data[1000:], "\x00very/long/path/name/that/crosses/many/chunks.dds\x00")

	for _, policy := range []struct {
		name string
		p    Policy
	}{{"general", General}, {"texture", Texture}} {
		want := Scan(data, policy.p)
		for _, chunk := range []int{1, 3, 7, 16, 4096, len(data)} {
			got, err := ScanParallel(context.Background(), data, policy.p, 4, chunk)
			require.NoError(t, err)
			require.Equal(t, want, got, "%s policy, chunk %d", policy.name, chunk)
		}
	}
}

func TestScanParallelRunEndingAtChunkEdge(t *testing.T) {
	data := []byte("abcd\x00efgh")
	got, err := ScanParallel(context.Background(), data, General, 2, 4)
	require.NoError(t, err)
	require.Equal(t, []types.StringEntry{{Offset: 0, Text: "abcd"}, {Offset: 5, Text: "efgh"}}, got)

	got, err = ScanParallel(context.Background(), data, General, 2, 5)
	require.NoError(t, err)
	require.Equal(t, []types.StringEntry{{Offset: 0, Text: "abcd"}, {Offset: 5, Text: "efgh"}}, got)
}

func TestScanParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanParallel(ctx, make([]byte, 1024), General, 4, 16)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanParallelEmpty(t *testing.T) {
	got, err := ScanParallel(context.Background(), nil, General, 4, 16)
	require.NoError(t, err)
	require.Empty(t, got)
}

// randomBuffer mixes printable text, separators and binary noise so every
// policy branch gets exercised.
func randomBuffer(t *testing.T, n int, seed int64) []byte {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789./\\_ -"
	data := make([]byte, n)
	for i := range data {
		switch r.Intn(4) {
		case 0:
			data[i] = byte(r.Intn(256))
		case 1:
			data[i] = 0
		default:
			data[i] = alphabet[r.Intn(len(alphabet))]
		}
	}
	return data
}
