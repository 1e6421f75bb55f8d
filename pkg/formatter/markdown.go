package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/dxfkit/pkg/extractor"
)

// aciNames are the names of the first seven AutoCAD Color Index entries.
var aciNames = map[int]string{
	1: "red",
	2: "yellow",
	3: "green",
	4: "cyan",
	5: "blue",
	6: "magenta",
	7: "white",
}

// ToMarkdown transforms extracted drawing specifications into a cut report: a layer table with
// per-layer path lengths, entity totals, the overall extents and a part list.
func ToMarkdown(specs *extractor.DrawingSpecs) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Drawing Report - %s\n\n", specs.FileName))
	sb.WriteString("This document summarizes the geometry written to the DXF file.\n\n")

	sb.WriteString(fmt.Sprintf("- **Units**: %s\n", specs.Units))
	if specs.Extents != nil {
		sb.WriteString(fmt.Sprintf("- **Extents**: %s × %s %s (from %s to %s)\n",
			num(specs.Extents.Width()), num(specs.Extents.Height()), specs.Units,
			point(specs.Extents.Min.X, specs.Extents.Min.Y), point(specs.Extents.Max.X, specs.Extents.Max.Y)))
	}
	sb.WriteString(fmt.Sprintf("- **Total path length**: %s %s\n", num(specs.PathLength), specs.Units))
	if specs.Fingerprint != "" {
		sb.WriteString(fmt.Sprintf("- **Fingerprint**: `%s`\n", specs.Fingerprint))
	}
	sb.WriteString("\n")

	// Layers
	sb.WriteString("## Layers\n\n")
	sb.WriteString("| Layer | Color | Linetype | Lineweight | Plot | Entities | Path length |\n")
	sb.WriteString("|-------|-------|----------|------------|------|----------|-------------|\n")
	for _, l := range specs.Layers {
		plot := "yes"
		if !l.Plot {
			plot = "no"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %d | %s |\n",
			l.Name, colorName(l.Color), l.Linetype, lineweight(l.Lineweight), plot, l.Entities, num(l.PathLength)))
	}
	sb.WriteString("\n")

	// Entities
	sb.WriteString("## Entities\n\n")
	sb.WriteString(fmt.Sprintf("- Polylines: %d\n", specs.Entities.Polylines))
	sb.WriteString(fmt.Sprintf("- Circles: %d\n", specs.Entities.Circles))
	sb.WriteString(fmt.Sprintf("- Lines: %d\n", specs.Entities.Lines))
	sb.WriteString(fmt.Sprintf("- Texts: %d\n", specs.Entities.Texts))
	sb.WriteString(fmt.Sprintf("- **Total**: %d\n\n", specs.Entities.Total()))

	// Parts
	if len(specs.Shapes) > 0 {
		sb.WriteString("## Parts\n\n")
		sb.WriteString("| # | Shape | Layer | Position | Size |\n")
		sb.WriteString("|---|-------|-------|----------|------|\n")
		for i, s := range specs.Shapes {
			var size string
			if s.Kind == "circle" {
				size = "Ø " + num(2*s.Radius)
			} else {
				size = num(s.Width) + " × " + num(s.Height)
			}
			sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n", i+1, s.Kind, s.Layer, point(s.X, s.Y), size))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func colorName(aci int) string {
	if name, ok := aciNames[aci]; ok {
		return fmt.Sprintf("%d (%s)", aci, name)
	}
	return fmt.Sprintf("%d", aci)
}

func lineweight(lw int) string {
	switch {
	case lw == -1:
		return "by layer"
	case lw == -2:
		return "by block"
	case lw == -3:
		return "default"
	}
	return fmt.Sprintf("%.2f mm", float64(lw)/100)
}

// num formats a measurement with up to three decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func point(x, y float64) string {
	return "(" + num(x) + ", " + num(y) + ")"
}
