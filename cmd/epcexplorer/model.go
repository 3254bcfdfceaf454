package main

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/epckit/cmd/epcexplorer/logger"
	"github.com/joshuapare/epckit/pkg/epc"
	"github.com/joshuapare/epckit/pkg/types"
)

// Pane represents which pane is focused
type Pane int

const (
	ListPane Pane = iota
	RecordPane
)

// ListMode selects the table shown in the list pane.
type ListMode int

const (
	StringsMode ListMode = iota
	TexturesMode
)

func (l ListMode) String() string {
	if l == TexturesMode {
		return "Textures"
	}
	return "Strings"
}

// Layout constants
const (
	headerHeight   = 2
	statusHeight   = 2
	paneChrome     = 3 // border top/bottom + title line
	recordListRows = 6 // rows reserved for the record list above the detail
)

// Messages

// catalogLoadedMsg reports the end of a load or reload. done releases cat.
type catalogLoadedMsg struct {
	cat    *epc.Catalog
	done   func()
	err    error
	reload bool
}

// actionDoneMsg reports the end of an extract, export or scan.
type actionDoneMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}

// Model is the main application model
type Model struct {
	path    string
	session *epc.Session

	// Catalog on screen, held until the next one arrives
	cat     *epc.Catalog
	catDone func()

	keys    KeyMap
	help    help.Model

	focusedPane Pane
	listMode    ListMode
	width       int
	height      int

	// Cursor per list mode, so tab returns to the same row
	cursors [2]int
	offsets [2]int

	// Current string selection and the record under the cursor
	selection    *epc.Selection
	recordCursor int
	texture      *epc.TextureDetail

	detail viewport.Model

	loading       bool
	showHelp      bool
	statusMessage string
	statusErr     bool

	err error
}

// NewModel creates a new TUI model. Loading starts from Init.
func NewModel(path string, opts types.OpenOptions) Model {
	if opts.Logger == nil {
		opts.Logger = logger.L
	}
	return Model{
		path:    path,
		session: epc.NewSession(opts),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		detail:  viewport.New(40, 10),
		loading: true,
	}
}

// Init starts loading the container
func (m Model) Init() tea.Cmd {
	return m.loadCmd(false)
}

func (m Model) loadCmd(reload bool) tea.Cmd {
	session, path := m.session, m.path
	return func() tea.Msg {
		if _, err := session.Load(context.Background(), path); err != nil {
			return catalogLoadedMsg{err: err, reload: reload}
		}
		cat, done, err := session.Acquire()
		return catalogLoadedMsg{cat: cat, done: done, err: err, reload: reload}
	}
}

// Close releases the loaded container
func (m *Model) Close() error {
	if m.catDone != nil {
		m.catDone()
		m.cat, m.catDone = nil, nil
	}
	return m.session.Close()
}

// catalog returns the catalog on screen, or nil before the first load.
func (m Model) catalog() *epc.Catalog {
	return m.cat
}

// entries returns the table shown in the list pane.
func (m Model) entries() []types.StringEntry {
	cat := m.catalog()
	if cat == nil {
		return nil
	}
	if m.listMode == TexturesMode {
		return cat.Textures()
	}
	return cat.Strings()
}

func (m Model) cursor() int { return m.cursors[m.listMode] }

// currentEntry returns the entry under the list cursor.
func (m Model) currentEntry() (types.StringEntry, bool) {
	entries := m.entries()
	c := m.cursor()
	if c < 0 || c >= len(entries) {
		return types.StringEntry{}, false
	}
	return entries[c], true
}

// listHeight is the number of list rows visible at once.
func (m Model) listHeight() int {
	return max(m.height-headerHeight-statusHeight-paneChrome, 1)
}

// paneWidths splits the screen 40/60.
func (m Model) paneWidths() (int, int) {
	left := m.width * 2 / 5
	return left, m.width - left
}
