// Package pattern composes shapes into ready-to-cut drawings.
package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/linetype"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

// ErrInvalidParams is returned for dimensions that cannot produce a board.
var ErrInvalidParams = errors.New("invalid pattern parameters")

// Layers used by the notched board besides cut_layer.
const (
	LayerReference  = "reference_lines"
	LayerCenterline = "centerline"
	LayerLabel      = "label"
)

// referenceOverhang is how far reference lines run past the board ends.
const referenceOverhang = 10.0

// NotchedBoardParams describes a board with two notches cut into each long side.
// Zero fields take the defaults of DefaultNotchedBoard.
type NotchedBoardParams struct {
	Length        float64 // along x
	Width         float64 // along y
	NotchWidth    float64
	DepthFraction float64 // notch depth as a fraction of Width, in (0, 1)
	Filename      string
	Units         dxf.Units
}

// DefaultNotchedBoard is a 200x50 board with 30 wide notches cut 20% deep.
func DefaultNotchedBoard() NotchedBoardParams {
	return NotchedBoardParams{
		Length:        200,
		Width:         50,
		NotchWidth:    30,
		DepthFraction: 0.2,
		Filename:      "notched_rectangle_20percent.dxf",
		Units:         dxf.Millimeters,
	}
}

func (p NotchedBoardParams) withDefaults() NotchedBoardParams {
	def := DefaultNotchedBoard()
	if p.Length == 0 {
		p.Length = def.Length
	}
	if p.Width == 0 {
		p.Width = def.Width
	}
	if p.NotchWidth == 0 {
		p.NotchWidth = def.NotchWidth
	}
	if p.DepthFraction == 0 {
		p.DepthFraction = def.DepthFraction
	}
	if p.Filename == "" {
		p.Filename = fmt.Sprintf("notched_rectangle_%dpercent.dxf", Percent(p.DepthFraction))
	}
	if p.Units == 0 {
		p.Units = def.Units
	}
	return p
}

// Validate reports whether the parameters describe a cuttable board.
func (p NotchedBoardParams) Validate() error {
	switch {
	case p.Length <= 0 || p.Width <= 0 || p.NotchWidth <= 0:
		return fmt.Errorf("%w: length %g, width %g and notch width %g must be positive",
			ErrInvalidParams, p.Length, p.Width, p.NotchWidth)
	case p.DepthFraction <= 0 || p.DepthFraction >= 1:
		return fmt.Errorf("%w: depth fraction %g must be between 0 and 1", ErrInvalidParams, p.DepthFraction)
	case 2*p.NotchWidth >= p.Length:
		return fmt.Errorf("%w: two notches of width %g do not fit a board of length %g",
			ErrInvalidParams, p.NotchWidth, p.Length)
	}
	return nil
}

// NotchDepth is Width * DepthFraction.
func (p NotchedBoardParams) NotchDepth() float64 {
	return p.Width * p.DepthFraction
}

// NotchGap is the spacing between board ends and notches; the three gaps are equal.
func (p NotchedBoardParams) NotchGap() float64 {
	return (p.Length - 2*p.NotchWidth) / 3
}

// Percent converts a fraction to a whole percentage, truncating. The small bias keeps
// fractions such as 0.29, whose product with 100 lands just below 29, from losing a point.
func Percent(fraction float64) int {
	return int(math.Floor(fraction*100 + 1e-9))
}

// NotchedBoard draws the board outline, four notches, reference lines at the notch depth,
// a centerline and labels.
func NotchedBoard(params NotchedBoardParams) (*dxf.Document, error) {
	p := params.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	doc := dxf.New(dxf.Options{Filename: p.Filename, Units: p.Units, SetupLayers: true})

	depth := p.NotchDepth()
	gap := p.NotchGap()
	const x0, y0 = 0.0, 0.0

	notchX := []float64{x0 + gap, x0 + 2*gap + p.NotchWidth}
	notchY := []float64{y0, y0 + p.Width - depth}

	shapes := []shape.Shape{shape.NewRectangle(x0, y0, p.Length, p.Width).OnLayer(dxf.LayerCut)}
	for _, ny := range notchY {
		for _, nx := range notchX {
			shapes = append(shapes, shape.NewRectangle(nx, ny, p.NotchWidth, depth).OnLayer(dxf.LayerCut))
		}
	}
	if err := doc.Add(shapes...); err != nil {
		return nil, err
	}

	refLayer, err := doc.Layer(LayerReference, dxf.LayerColor(4), dxf.LayerLinetype(linetype.Dashed))
	if err != nil {
		return nil, err
	}
	topRef := y0 + p.Width - depth
	bottomRef := y0 + depth
	for _, y := range []float64{topRef, bottomRef} {
		if err := hline(doc, y, x0, p.Length, refLayer); err != nil {
			return nil, err
		}
	}

	centerLayer, err := doc.Layer(LayerCenterline, dxf.LayerColor(6), dxf.LayerLinetype(linetype.Dashed))
	if err != nil {
		return nil, err
	}
	if err := hline(doc, y0+p.Width/2, x0, p.Length, centerLayer); err != nil {
		return nil, err
	}

	labelLayer, err := doc.Layer(LayerLabel, dxf.LayerColor(3))
	if err != nil {
		return nil, err
	}
	pct := Percent(p.DepthFraction)
	labels := []dxf.TextOptions{
		{
			Text:   fmt.Sprintf("Notched Rectangle - %d%% Depth Joint Example", pct),
			At:     shape.Pt(x0, y0+p.Width+15),
			Height: 5,
		},
		{
			Text:   fmt.Sprintf("%d%%", pct),
			At:     shape.Pt(x0+p.Length+15, topRef),
			Height: 3.5,
			VAlign: dxf.AlignMiddle,
		},
		{
			Text:   fmt.Sprintf("%d%%", pct),
			At:     shape.Pt(x0+p.Length+15, bottomRef),
			Height: 3.5,
			VAlign: dxf.AlignMiddle,
		},
	}
	for _, l := range labels {
		l.Layer = labelLayer
		if _, err := doc.Text(l); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func hline(doc *dxf.Document, y, x0, length float64, layer string) error {
	_, err := doc.Line(
		shape.Pt(x0-referenceOverhang, y),
		shape.Pt(x0+length+referenceOverhang, y),
		layer,
		shape.Properties{},
	)
	return err
}
