package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/epckit/container/preview"
	"github.com/joshuapare/epckit/pkg/epc"
)

// refreshDetail rebuilds the detail viewport for the current selection.
func (m *Model) refreshDetail() {
	m.detail.SetContent(m.renderDetail())
	m.detail.GotoTop()
}

func (m Model) renderDetail() string {
	cat := m.catalog()
	if cat == nil {
		return ""
	}
	switch {
	case m.texture != nil:
		return renderTextureDetail(cat, m.texture)
	case m.selection != nil:
		return renderSelectionDetail(cat, m.selection, m.recordCursor)
	}

	var b strings.Builder
	for _, n := range cat.Notices() {
		b.WriteString(warnStyle.Render(n.Msg) + "\n")
	}
	noun := "string"
	if m.listMode == TexturesMode {
		noun = "texture"
	}
	b.WriteString(offsetStyle.Render("Press enter to inspect the highlighted " + noun + "."))
	return b.String()
}

func field(label, format string, args ...any) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + " " + fmt.Sprintf(format, args...) + "\n"
}

func renderSelectionDetail(cat *epc.Catalog, sel *epc.Selection, j int) string {
	var b strings.Builder
	if sel.String.Text != "" {
		b.WriteString(field("String", "%s", sel.String.Text))
	}
	b.WriteString(field("Offset", "0x%08X", sel.Target))
	b.WriteString(field("Records", "%d", len(sel.Records)))
	b.WriteString("\n")
	for _, row := range sel.Hex {
		b.WriteString(hexStyle.Render(row.WithASCII()) + "\n")
	}

	if len(sel.Records) == 0 {
		b.WriteString("\n" + offsetStyle.Render("No index records reference this offset."))
		return b.String()
	}

	d, err := cat.SelectRecord(sel, j)
	b.WriteString("\n")
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}
	b.WriteString(renderRecordDetail(d))
	return b.String()
}

func renderRecordDetail(d *epc.RecordDetail) string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(fmt.Sprintf("Record %d", d.Index)) + "\n")
	b.WriteString(field("Position", "0x%08X", uint32(d.Ref)))
	b.WriteString(field("Name offset", "0x%08X", d.Fields.NameOffset))
	b.WriteString(field("Name", "%s", d.DisplayName))
	if d.DisplayName != d.Name {
		b.WriteString(field("ASCII", "%s", d.Name))
	}
	if d.NameErr != nil {
		b.WriteString(field("", "%s", warnStyle.Render(d.NameErr.Error())))
	}
	b.WriteString(field("Data offset", "0x%08X", d.Fields.DataOffset))
	if d.BlobErr != nil {
		b.WriteString(field("Blob", "%s", errorStyle.Render(d.BlobErr.Error())))
	} else {
		b.WriteString(field("Blob", "%s", d.Blob))
	}
	raw := make([]string, len(d.Raw))
	for i, c := range d.Raw {
		raw[i] = fmt.Sprintf("%02X", c)
	}
	b.WriteString(field("Raw (16b)", "%s", strings.Join(raw, " ")))
	return b.String()
}

func renderTextureDetail(cat *epc.Catalog, td *epc.TextureDetail) string {
	var b strings.Builder
	b.WriteString(field("Texture", "%s", td.Entry.Text))
	b.WriteString(field("Offset", "0x%08X", td.Entry.Offset))
	b.WriteString(field("Blob", "%s", td.Blob))
	if len(td.Occurrences) > 1 {
		b.WriteString(field("", "%s", warnStyle.Render(fmt.Sprintf("name occurs %d times; using the first", len(td.Occurrences)))))
	}
	b.WriteString(field("Export as", "%s", epc.TextureFileName(td.Entry)))

	data, err := cat.BlobBytes(td.Blob)
	if err != nil {
		b.WriteString(field("Image", "%s", errorStyle.Render(err.Error())))
		return b.String()
	}
	if info, err := preview.Describe(data); err != nil {
		b.WriteString(field("Image", "%s", offsetStyle.Render("no preview ("+err.Error()+")")))
	} else {
		b.WriteString(field("Image", "%s", info))
	}

	b.WriteString("\n")
	for _, row := range cat.HexWindow(td.Blob.Start) {
		b.WriteString(hexStyle.Render(row.WithASCII()) + "\n")
	}
	return b.String()
}
