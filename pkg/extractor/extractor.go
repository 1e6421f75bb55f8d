package extractor

import (
	"sort"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

// DrawingSpecs represents the summary of a drawing that a CAM operator needs before cutting:
// layers, how much geometry sits on each of them, total path length and overall extents.
type DrawingSpecs struct {
	FileName    string
	Units       string
	Fingerprint string
	Layers      []LayerSpecs
	Entities    EntityCounts
	PathLength  float64 // sum over all layers
	Extents     *Extents
	Shapes      []ShapeInfo
}

// LayerSpecs describes a single layer and the geometry drawn on it.
type LayerSpecs struct {
	Name       string
	Color      int
	Linetype   string
	Lineweight int
	Plot       bool
	Entities   int
	PathLength float64 // polyline perimeters, circle circumferences and line lengths
}

// EntityCounts tallies entities per kind.
type EntityCounts struct {
	Polylines int
	Circles   int
	Lines     int
	Texts     int
}

// Total returns the number of entities.
func (c EntityCounts) Total() int {
	return c.Polylines + c.Circles + c.Lines + c.Texts
}

// Extents is the drawing bounding box.
type Extents struct {
	Min, Max shape.Point
}

// Width of the bounding box.
func (e Extents) Width() float64 { return e.Max.X - e.Min.X }

// Height of the bounding box.
func (e Extents) Height() float64 { return e.Max.Y - e.Min.Y }

// ShapeInfo describes a shape added through the shape model, for the part list.
type ShapeInfo struct {
	Kind   string // "rectangle" or "circle"
	Layer  string
	Handle shape.Handle
	X, Y   float64 // origin for rectangles, center for circles
	Width  float64 // rectangles
	Height float64 // rectangles
	Radius float64 // circles
}

// Extract analyzes a document and produces its specs. Layers are reported in creation order and
// include layers that carry no entities, since CAM tools still list them.
func Extract(doc *dxf.Document) *DrawingSpecs {
	specs := &DrawingSpecs{
		FileName:    doc.Filename(),
		Units:       doc.Units().String(),
		Fingerprint: doc.Fingerprint().String(),
	}

	index := make(map[string]int)
	for _, l := range doc.Layers().All() {
		index[l.Name] = len(specs.Layers)
		specs.Layers = append(specs.Layers, LayerSpecs{
			Name:       l.Name,
			Color:      l.Color,
			Linetype:   l.Linetype,
			Lineweight: l.Lineweight,
			Plot:       l.Plot,
		})
	}

	for _, e := range doc.Entities() {
		switch e.Kind {
		case dxf.KindPolyline:
			specs.Entities.Polylines++
		case dxf.KindCircle:
			specs.Entities.Circles++
		case dxf.KindLine:
			specs.Entities.Lines++
		case dxf.KindText:
			specs.Entities.Texts++
		}

		length := e.Length()
		specs.PathLength += length
		if i, ok := index[e.Layer]; ok {
			specs.Layers[i].Entities++
			specs.Layers[i].PathLength += length
		}
	}

	if lo, hi, ok := doc.Extents(); ok {
		specs.Extents = &Extents{Min: lo, Max: hi}
	}

	specs.Shapes = extractShapes(doc.Shapes())

	return specs
}

func extractShapes(shapes []shape.Shape) []ShapeInfo {
	infos := make([]ShapeInfo, 0, len(shapes))
	for _, s := range shapes {
		switch v := s.(type) {
		case *shape.Rectangle:
			infos = append(infos, ShapeInfo{
				Kind:   "rectangle",
				Layer:  v.LayerName(),
				Handle: v.Handle(),
				X:      v.Origin.X,
				Y:      v.Origin.Y,
				Width:  v.Width,
				Height: v.Height,
			})
		case *shape.Circle:
			infos = append(infos, ShapeInfo{
				Kind:   "circle",
				Layer:  v.LayerName(),
				Handle: v.Handle(),
				X:      v.Center.X,
				Y:      v.Center.Y,
				Radius: v.Radius,
			})
		}
	}
	return infos
}

// CutLayers returns the names of plotted layers with geometry, sorted by name.
func (s *DrawingSpecs) CutLayers() []string {
	var names []string
	for _, l := range s.Layers {
		if l.Plot && l.PathLength > 0 {
			names = append(names, l.Name)
		}
	}
	sort.Strings(names)
	return names
}
