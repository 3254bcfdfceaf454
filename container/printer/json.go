package printer

import (
	"encoding/hex"
	"encoding/json"

	"github.com/joshuapare/epckit/pkg/types"
)

type jsonReport struct {
	Source   string              `json:"source"`
	Total    int                 `json:"total"`
	Textures []types.StringEntry `json:"textures"`
}

type jsonHexRow struct {
	Addr uint32 `json:"addr"`
	Hex  string `json:"hex"`
}

func (p *Printer) printReportJSON(r Report) error {
	textures := r.Textures
	if textures == nil {
		textures = []types.StringEntry{}
	}
	return p.encodeJSON(jsonReport{
		Source:   baseName(r.Source),
		Total:    len(textures),
		Textures: textures,
	})
}

func (p *Printer) printHexJSON(rows []HexRow) error {
	out := make([]jsonHexRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, jsonHexRow{Addr: r.Addr, Hex: hex.EncodeToString(r.Bytes)})
	}
	return p.encodeJSON(out)
}

func (p *Printer) encodeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", p.opts.Indent)
	return enc.Encode(v)
}
