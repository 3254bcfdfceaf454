package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/epckit/internal/testutil"
	"github.com/joshuapare/epckit/pkg/types"
)

// TestHelper drives a Model synchronously. Key presses do not run the
// commands they return; tests call Run for the ones they care about.
type TestHelper struct {
	t     *testing.T
	model Model
}

// NewTestHelper loads the standard fixture and sizes the window.
func NewTestHelper(t *testing.T) (*TestHelper, *testutil.Fixture, string) {
	t.Helper()
	f, path := testutil.WriteFixture(t)
	h := NewTestHelperAt(t, path)
	return h, f, path
}

// NewTestHelperAt loads the container at path.
func NewTestHelperAt(t *testing.T, path string) *TestHelper {
	t.Helper()
	return NewTestHelperWith(t, path, types.DefaultOpenOptions())
}

// NewTestHelperWith loads the container at path with opts.
func NewTestHelperWith(t *testing.T, path string, opts types.OpenOptions) *TestHelper {
	t.Helper()
	h := &TestHelper{t: t, model: NewModel(path, opts)}
	h.Run(h.model.Init())
	h.SendWindowSize(120, 40)
	t.Cleanup(func() { _ = h.model.Close() })
	return h
}

// Run executes cmd and feeds its message back into the model.
func (h *TestHelper) Run(cmd tea.Cmd) *TestHelper {
	h.t.Helper()
	if cmd == nil {
		h.t.Fatal("expected a command")
	}
	updated, _ := h.model.Update(cmd())
	h.model = updated.(Model)
	return h
}

// SendKey simulates a key press and returns the resulting command
func (h *TestHelper) SendKey(keyType tea.KeyType) tea.Cmd {
	updated, cmd := h.model.Update(tea.KeyMsg{Type: keyType})
	h.model = updated.(Model)
	return cmd
}

// SendKeyRune simulates a character key press and returns the resulting command
func (h *TestHelper) SendKeyRune(r rune) tea.Cmd {
	updated, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	h.model = updated.(Model)
	return cmd
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	updated, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}
