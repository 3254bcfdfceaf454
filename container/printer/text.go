package printer

import "fmt"

func (p *Printer) printReportText(r Report) error {
	w := p.writer
	if _, err := fmt.Fprintf(w, "EPC Scan Report for %s\n", baseName(r.Source)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total textures found: %d\n\n", len(r.Textures)); err != nil {
		return err
	}
	for i, t := range r.Textures {
		if _, err := fmt.Fprintf(w, "%d. %s @ 0x%08X\n", i+1, t.Text, t.Offset); err != nil {
			return err
		}
	}
	return nil
}
