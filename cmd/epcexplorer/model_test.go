package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/epckit/internal/testutil"
	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/joshuapare/epckit/pkg/types"
)

func TestLoadShowsStrings(t *testing.T) {
	h, _, _ := NewTestHelper(t)
	m := h.GetModel()

	require.False(t, m.loading)
	require.NoError(t, m.err)
	require.NotNil(t, m.catalog())

	view := m.View()
	require.Contains(t, view, "EPC Explorer")
	require.Contains(t, view, "models/tree.mdl")
	require.Contains(t, view, "2 textures")
}

func TestLoadErrorView(t *testing.T) {
	h := NewTestHelperAt(t, filepath.Join(t.TempDir(), "missing.epc"))
	m := h.GetModel()

	require.ErrorIs(t, m.err, types.ErrFileRead)
	require.Contains(t, m.View(), "Error:")

	// Only quit works once loading failed.
	require.Nil(t, h.SendKeyRune('r'))
	cmd := h.SendKeyRune('q')
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestEnterFollowsStringToRecords(t *testing.T) {
	h, f, _ := NewTestHelper(t)

	h.SendKey(tea.KeyEnter)
	m := h.GetModel()
	require.NotNil(t, m.selection)
	require.Equal(t, f.TreeName, m.selection.Target)
	require.Len(t, m.selection.Records, 2)
	require.Equal(t, RecordPane, m.focusedPane)

	detail := m.renderDetail()
	require.Contains(t, detail, "Record 0")
	require.Contains(t, detail, "models/tree.mdl")
	require.Contains(t, detail, "01 01 00 00 FF FF FF FF 55 01 00 00 FF FF FF FF")
	require.Contains(t, m.View(), "Records (2)")

	h.SendKey(tea.KeyDown)
	m = h.GetModel()
	require.Equal(t, 1, m.recordCursor)
	require.Contains(t, m.renderDetail(), "Record 1")

	// The cursor stops at the last record.
	h.SendKey(tea.KeyDown)
	require.Equal(t, 1, h.GetModel().recordCursor)

	h.SendKey(tea.KeyEsc)
	require.Equal(t, ListPane, h.GetModel().focusedPane)
}

func TestListNavigation(t *testing.T) {
	h, _, _ := NewTestHelper(t)
	n := len(h.GetModel().entries())
	require.Greater(t, n, 2)

	h.SendKey(tea.KeyDown)
	require.Equal(t, 1, h.GetModel().cursor())
	h.SendKeyRune('G')
	require.Equal(t, n-1, h.GetModel().cursor())
	h.SendKeyRune('g')
	require.Equal(t, 0, h.GetModel().cursor())
	h.SendKey(tea.KeyUp)
	require.Equal(t, 0, h.GetModel().cursor())
}

func TestTabShowsTextures(t *testing.T) {
	h, _, _ := NewTestHelper(t)

	h.SendKey(tea.KeyTab)
	m := h.GetModel()
	require.Equal(t, TexturesMode, m.listMode)
	require.Len(t, m.entries(), 2)
	require.Contains(t, m.View(), "Textures (2)")

	h.SendKey(tea.KeyEnter)
	m = h.GetModel()
	require.NotNil(t, m.texture)
	detail := m.renderDetail()
	require.Contains(t, detail, "tex/grass.png")
	require.Contains(t, detail, "png 2x2")

	h.SendKey(tea.KeyDown)
	h.SendKey(tea.KeyEnter)
	detail = h.GetModel().renderDetail()
	require.Contains(t, detail, "tex/rock.dds")
	require.Contains(t, detail, "no preview")

	// Tab back keeps the strings cursor.
	h.SendKey(tea.KeyTab)
	require.Equal(t, StringsMode, h.GetModel().listMode)
	require.Equal(t, 0, h.GetModel().cursor())
}

func TestExtractRecordKey(t *testing.T) {
	h, _, path := NewTestHelper(t)

	// Nothing selected yet.
	h.SendKeyRune('x')
	require.True(t, h.GetModel().statusErr)

	h.SendKey(tea.KeyEnter)
	h.Run(h.SendKeyRune('x'))
	m := h.GetModel()
	require.False(t, m.statusErr, m.statusMessage)
	require.Contains(t, m.statusMessage, "tree.mdl")

	got, err := os.ReadFile(filepath.Join(path+"_export", "tree.mdl"))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0xA0}, 24), got)
}

func TestExportAndScanKeys(t *testing.T) {
	h, f, path := NewTestHelper(t)

	h.Run(h.SendKeyRune('e'))
	require.Contains(t, h.GetModel().statusMessage, "Exported 2 texture(s)")
	got, err := os.ReadFile(filepath.Join(path+"_textures", "grass.png"))
	require.NoError(t, err)
	require.Equal(t, f.GrassData, got)

	h.Run(h.SendKeyRune('s'))
	require.Contains(t, h.GetModel().statusMessage, "Found 2 texture(s)")
	report, err := os.ReadFile(path + "_scan.txt")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(report), "EPC Scan Report for level.epc\n"))
}

func TestCopyOffsetKey(t *testing.T) {
	var copied []string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	h, f, _ := NewTestHelper(t)

	h.SendKeyRune('c')
	h.SendKey(tea.KeyEnter)
	h.SendKeyRune('c')
	require.Equal(t, []string{"0x00000101", fmt.Sprintf("0x%08X", f.TreeLOD0)}, copied)
	require.Contains(t, h.GetModel().statusMessage, "Copied")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	h.SendKeyRune('c')
	require.True(t, h.GetModel().statusErr)
}

func TestReloadClearsSelection(t *testing.T) {
	h, _, _ := NewTestHelper(t)
	before := h.GetModel().catalog().Generation()

	h.SendKey(tea.KeyEnter)
	extract := h.SendKeyRune('x')
	require.NotNil(t, h.GetModel().selection)

	reload := h.SendKeyRune('r')
	require.True(t, h.GetModel().loading)
	// Keys are ignored while loading.
	require.Nil(t, h.SendKeyRune('e'))

	h.Run(reload)
	m := h.GetModel()
	require.False(t, m.loading)
	require.Nil(t, m.selection)
	require.Equal(t, ListPane, m.focusedPane)
	require.NotEqual(t, before, m.catalog().Generation())
	require.Contains(t, m.statusMessage, "Reloaded")

	// An extract issued before the reload refers to the old buffer.
	h.Run(extract)
	m = h.GetModel()
	require.True(t, m.statusErr)
	require.Contains(t, m.statusMessage, "stale")
}

func TestReloadFailureKeepsCatalog(t *testing.T) {
	h, _, path := NewTestHelper(t)
	before := h.GetModel().catalog()

	require.NoError(t, os.Remove(path))
	h.Run(h.SendKeyRune('r'))

	m := h.GetModel()
	require.NoError(t, m.err)
	require.True(t, m.statusErr)
	require.Contains(t, m.statusMessage, "Reload failed")
	require.Same(t, before, m.catalog())
}

func TestHelpToggle(t *testing.T) {
	h, _, _ := NewTestHelper(t)

	h.SendKeyRune('?')
	require.True(t, h.GetModel().showHelp)
	require.Contains(t, h.GetModel().View(), "Keyboard Shortcuts")

	// q closes help rather than quitting.
	require.Nil(t, h.SendKeyRune('q'))
	require.False(t, h.GetModel().showHelp)
}

func TestMappedCatalogHeldUntilReloadArrives(t *testing.T) {
	f, path := testutil.WriteFixture(t)
	opts := types.DefaultOpenOptions()
	opts.Mmap = true
	h := NewTestHelperWith(t, path, opts)

	h.SendKey(tea.KeyTab)
	h.SendKey(tea.KeyEnter)
	old := h.GetModel().catalog()

	// The reload swaps the session's catalog before its message is handled.
	msg := h.SendKeyRune('r')()
	require.Equal(t, len(f.Data), old.Len())
	require.Contains(t, h.GetModel().renderDetail(), "png 2x2")

	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	require.NotSame(t, old, h.GetModel().catalog())
	require.Zero(t, old.Len())

	h.SendKey(tea.KeyEnter)
	require.Contains(t, h.GetModel().renderDetail(), "png 2x2")
}

func TestRecordDetailShowsDisplayName(t *testing.T) {
	d := &epc.RecordDetail{Name: "sfx/caf.wav", DisplayName: "sfx/café.wav", Raw: []byte{0x01}}
	out := renderRecordDetail(d)
	require.Contains(t, out, "sfx/café.wav")
	require.Contains(t, out, "sfx/caf.wav")

	d = &epc.RecordDetail{Name: "plain", DisplayName: "plain"}
	require.NotContains(t, renderRecordDetail(d), "ASCII")
}
