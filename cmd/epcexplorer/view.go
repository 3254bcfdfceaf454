package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.loading && m.catalog() == nil {
		return pathStyle.Render("Loading " + m.path + "...")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// renderHeader renders the title and container summary
func (m Model) renderHeader() string {
	summary := m.path
	if cat := m.catalog(); cat != nil {
		summary = fmt.Sprintf("%s  (%d bytes, %d strings, %d textures)",
			cat.Path(), cat.Len(), len(cat.Strings()), len(cat.Textures()))
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("EPC Explorer"),
		"  ",
		pathStyle.Render(summary),
	) + "\n"
}

// renderContent renders the split-pane content
func (m Model) renderContent() string {
	leftWidth, rightWidth := m.paneWidths()
	height := m.listHeight()

	left := paneStyle
	right := activePaneStyle
	if m.focusedPane == ListPane {
		left, right = activePaneStyle, paneStyle
	}

	leftBox := left.Width(max(leftWidth-2, 1)).Height(height + 1).Render(m.renderList(leftWidth - 4))
	rightBox := right.Width(max(rightWidth-2, 1)).Height(height + 1).Render(m.renderRight(rightWidth - 4))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
}

// renderList renders the visible window of the string or texture table.
func (m Model) renderList(width int) string {
	entries := m.entries()
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(fmt.Sprintf("%s (%d)", m.listMode, len(entries))))

	if len(entries) == 0 {
		b.WriteString("\n" + offsetStyle.Render("(none)"))
		return b.String()
	}

	off := m.offsets[m.listMode]
	end := min(off+m.listHeight(), len(entries))
	for i := off; i < end; i++ {
		e := entries[i]
		line := offsetStyle.Render(fmt.Sprintf("%08X ", e.Offset)) + truncate(e.Text, width-9)
		if i == m.cursor() {
			line = selectedStyle.Render(fmt.Sprintf("%08X ", e.Offset) + truncate(e.Text, width-9))
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

// renderRight renders the record list above the detail viewport.
func (m Model) renderRight(width int) string {
	var b strings.Builder
	switch {
	case m.selection != nil:
		b.WriteString(paneTitleStyle.Render(fmt.Sprintf("Records (%d)", len(m.selection.Records))))
		b.WriteString(m.renderRecordList(width))
	case m.texture != nil:
		b.WriteString(paneTitleStyle.Render("Texture"))
	default:
		b.WriteString(paneTitleStyle.Render("Detail"))
	}
	b.WriteString("\n")
	b.WriteString(m.detail.View())
	return b.String()
}

func (m Model) renderRecordList(width int) string {
	refs := m.selection.Records
	if len(refs) == 0 {
		return "\n" + offsetStyle.Render("(none)")
	}
	start := 0
	if m.recordCursor >= recordListRows-1 {
		start = m.recordCursor - (recordListRows - 2)
	}
	end := min(start+recordListRows-1, len(refs))

	var b strings.Builder
	for j := start; j < end; j++ {
		line := truncate(fmt.Sprintf("%3d  @0x%08X", j, uint32(refs[j])), width)
		if j == m.recordCursor && m.focusedPane == RecordPane {
			line = selectedStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

// renderStatus renders the status message and key hints
func (m Model) renderStatus() string {
	if m.statusMessage != "" {
		msg := statusOKStyle.Render(m.statusMessage)
		if m.statusErr {
			msg = errorStyle.Render(m.statusMessage)
		}
		return statusStyle.Render(msg)
	}
	return statusStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderHelp renders the full key reference
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts") + "\n")
	for _, group := range m.keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			b.WriteString(helpKeyStyle.Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(offsetStyle.Render("Press ? or esc to close"))
	return b.String()
}
