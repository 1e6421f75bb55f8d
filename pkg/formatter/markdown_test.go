package formatter

import (
	"strings"
	"testing"

	"github.com/hellenic-development/dxfkit/pkg/extractor"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

func TestToMarkdown(t *testing.T) {
	specs := &extractor.DrawingSpecs{
		FileName:    "board.dxf",
		Units:       "mm",
		Fingerprint: "abc",
		Layers: []extractor.LayerSpecs{
			{Name: "0", Color: 7, Linetype: "CONTINUOUS", Lineweight: 25, Plot: true},
			{Name: "cut_layer", Color: 1, Linetype: "CONTINUOUS", Lineweight: 25, Plot: true, Entities: 5, PathLength: 740},
			{Name: "reference_lines", Color: 4, Linetype: "DASHED", Lineweight: -1, Plot: false, Entities: 2, PathLength: 440},
			{Name: "custom", Color: 30, Linetype: "CONTINUOUS", Lineweight: 50, Plot: true},
		},
		Entities:   extractor.EntityCounts{Polylines: 5, Lines: 3, Texts: 3},
		PathLength: 1400.5,
		Extents:    &extractor.Extents{Min: shape.Pt(-10, 0), Max: shape.Pt(225, 65)},
		Shapes: []extractor.ShapeInfo{
			{Kind: "rectangle", Layer: "cut_layer", X: 0, Y: 0, Width: 200, Height: 50},
			{Kind: "circle", Layer: "cut_layer", X: 10.25, Y: 5, Radius: 3},
		},
	}

	md := ToMarkdown(specs)

	wants := []string{
		"# Drawing Report - board.dxf",
		"- **Units**: mm",
		"- **Extents**: 235 × 65 mm (from (-10, 0) to (225, 65))",
		"- **Total path length**: 1400.5 mm",
		"`abc`",
		"| cut_layer | 1 (red) | CONTINUOUS | 0.25 mm | yes | 5 | 740 |",
		"| reference_lines | 4 (cyan) | DASHED | by layer | no | 2 | 440 |",
		"| custom | 30 | CONTINUOUS | 0.50 mm | yes | 0 | 0 |",
		"- **Total**: 11",
		"| 1 | rectangle | cut_layer | (0, 0) | 200 × 50 |",
		"| 2 | circle | cut_layer | (10.25, 5) | Ø 6 |",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q\n%s", want, md)
		}
	}
}

func TestToMarkdownWithoutGeometry(t *testing.T) {
	md := ToMarkdown(&extractor.DrawingSpecs{FileName: "empty.dxf", Units: "in"})
	if strings.Contains(md, "Extents") {
		t.Error("empty drawing should not report extents")
	}
	if strings.Contains(md, "## Parts") {
		t.Error("empty drawing should not list parts")
	}
	if !strings.Contains(md, "- **Total path length**: 0 in") {
		t.Errorf("missing zero path length:\n%s", md)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{46.666666, "46.667"},
		{0.5, "0.5"},
		{-0.0001, "0"},
		{-2.25, "-2.25"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
