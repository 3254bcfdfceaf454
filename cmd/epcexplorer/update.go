package main

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/epckit/cmd/epcexplorer/logger"
	"github.com/joshuapare/epckit/container/printer"
	"github.com/joshuapare/epckit/pkg/epc"
)

const statusTimeout = 3 * time.Second

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeDetail()
		return m, nil

	case catalogLoadedMsg:
		return m.handleLoaded(msg)

	case actionDoneMsg:
		if msg.err != nil {
			logger.Warn("action failed", "error", msg.err)
			return m.setStatus(msg.err.Error(), true)
		}
		return m.setStatus(msg.status, false)

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		logger.Error("load failed", "path", m.path, "error", msg.err)
		if m.catalog() == nil {
			m.err = msg.err
			return m, nil
		}
		// The previous catalog is still current.
		return m.setStatus("Reload failed: "+msg.err.Error(), true)
	}

	logger.Info("container loaded",
		"path", msg.cat.Path(),
		"strings", len(msg.cat.Strings()),
		"textures", len(msg.cat.Textures()),
		"generation", msg.cat.Generation(),
	)

	if m.catDone != nil {
		m.catDone()
	}
	m.cat, m.catDone = msg.cat, msg.done

	// Selections belong to the replaced catalog.
	m.selection = nil
	m.texture = nil
	m.recordCursor = 0
	m.focusedPane = ListPane
	m.cursors[StringsMode] = clamp(m.cursors[StringsMode], len(msg.cat.Strings()))
	m.cursors[TexturesMode] = clamp(m.cursors[TexturesMode], len(msg.cat.Textures()))
	m.offsets = [2]int{}
	m.ensureVisible()
	m.refreshDetail()

	if msg.reload {
		return m.setStatus(fmt.Sprintf("Reloaded: %d strings, %d textures",
			len(msg.cat.Strings()), len(msg.cat.Textures())), false)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.err != nil || m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.listMode = 1 - m.listMode
		m.focusedPane = ListPane
		m.selection = nil
		m.texture = nil
		m.refreshDetail()
		return m, nil

	case key.Matches(msg, m.keys.Pane):
		if m.focusedPane == RecordPane {
			m.focusedPane = ListPane
		} else if m.selection != nil && len(m.selection.Records) > 0 {
			m.focusedPane = RecordPane
		}
		return m, nil

	case key.Matches(msg, m.keys.Esc):
		m.focusedPane = ListPane
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.focusedPane == ListPane {
			return m.selectCurrent()
		}
		m.refreshDetail()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.move(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		if m.focusedPane == RecordPane {
			m.detail.HalfViewUp()
			return m, nil
		}
		m.move(-m.listHeight())
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		if m.focusedPane == RecordPane {
			m.detail.HalfViewDown()
			return m, nil
		}
		m.move(m.listHeight())
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.move(-1 << 30)
		return m, nil
	case key.Matches(msg, m.keys.End):
		m.move(1 << 30)
		return m, nil

	case key.Matches(msg, m.keys.Extract):
		return m.extractRecord()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportTexturesCmd()
	case key.Matches(msg, m.keys.Scan):
		return m, m.scanReportCmd()
	case key.Matches(msg, m.keys.Copy):
		return m.copyOffset()
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.statusMessage = "Reloading..."
		m.statusErr = false
		return m, m.loadCmd(true)
	}
	return m, nil
}

// move shifts the cursor of the focused pane by delta, clamped.
func (m *Model) move(delta int) {
	if m.focusedPane == RecordPane && m.selection != nil {
		next := clamp(m.recordCursor+delta, len(m.selection.Records))
		if next != m.recordCursor {
			m.recordCursor = next
			m.refreshDetail()
		}
		return
	}
	m.cursors[m.listMode] = clamp(m.cursors[m.listMode]+delta, len(m.entries()))
	m.ensureVisible()
}

// ensureVisible scrolls the list so the cursor row is on screen.
func (m *Model) ensureVisible() {
	h := m.listHeight()
	c, off := m.cursors[m.listMode], m.offsets[m.listMode]
	if c < off {
		off = c
	}
	if c >= off+h {
		off = c - h + 1
	}
	m.offsets[m.listMode] = max(off, 0)
}

// selectCurrent selects the entry under the list cursor: a string is
// followed to its records, a texture to its blob.
func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	cat := m.catalog()
	if cat == nil {
		return m, nil
	}
	if m.listMode == TexturesMode {
		td, err := cat.SelectTexture(m.cursor())
		if err != nil {
			m.texture = nil
			m.refreshDetail()
			return m.setStatus(err.Error(), true)
		}
		m.texture = td
		m.refreshDetail()
		return m, nil
	}

	sel, err := cat.SelectString(context.Background(), m.cursor())
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	logger.Debug("string selected", "offset", sel.Target, "records", len(sel.Records))
	m.selection = sel
	m.recordCursor = 0
	if len(sel.Records) > 0 {
		m.focusedPane = RecordPane
	}
	m.refreshDetail()
	return m, nil
}

func (m Model) extractRecord() (tea.Model, tea.Cmd) {
	if m.selection == nil || len(m.selection.Records) == 0 {
		return m.setStatus("Select a string with records first", true)
	}
	session, sel, j := m.session, m.selection, m.recordCursor
	return m, func() tea.Msg {
		cat, done, err := session.Acquire()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		defer done()
		out, err := cat.ExportRecord(sel, j, epc.OSFS{})
		if err != nil {
			return actionDoneMsg{err: fmt.Errorf("extract failed: %w", err)}
		}
		return actionDoneMsg{status: "Exported " + out}
	}
}

func (m Model) exportTexturesCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		cat, done, err := session.Acquire()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		defer done()
		res, err := cat.ExportTextures(epc.OSFS{})
		if err != nil {
			return actionDoneMsg{err: err}
		}
		for _, f := range res.Failed {
			logger.Warn("texture export failed", "name", f.Name, "offset", f.Offset, "error", f.Err)
		}
		status := fmt.Sprintf("Exported %d texture(s) to %s", len(res.Exported), res.Dir)
		if len(res.Failed) > 0 {
			status += fmt.Sprintf(", %d failed", len(res.Failed))
		}
		return actionDoneMsg{status: status}
	}
}

func (m Model) scanReportCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		cat, done, err := session.Acquire()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		defer done()
		out, err := cat.WriteScanReport(epc.OSFS{}, printer.FormatText)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Found %d texture(s); report written to %s", len(cat.Textures()), out)}
	}
}

// copyOffset copies the offset under the focused cursor: the record position
// in the record pane, the entry offset in the list pane.
func (m Model) copyOffset() (tea.Model, tea.Cmd) {
	var off uint32
	switch {
	case m.focusedPane == RecordPane && m.selection != nil && m.recordCursor < len(m.selection.Records):
		off = uint32(m.selection.Records[m.recordCursor])
	default:
		e, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		off = e.Offset
	}
	text := fmt.Sprintf("0x%08X", off)
	if err := writeClipboard(text); err != nil {
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus("Copied "+text, false)
}

func (m Model) setStatus(s string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusMessage = s
	m.statusErr = isErr
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) resizeDetail() {
	_, right := m.paneWidths()
	m.detail.Width = max(right-4, 10)
	m.detail.Height = max(m.listHeight()-recordListRows-1, 3)
}

// clamp limits i to [0, n), or 0 when n is 0.
func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	return max(i, 0)
}
