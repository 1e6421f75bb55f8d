package dxf

import (
	"errors"
	"fmt"
	"math"

	"github.com/hellenic-development/dxfkit/pkg/shape"
)

// ErrInvalidGeometry is returned when an entity cannot be represented in a drawing.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Kind is the DXF entity type name.
type Kind string

// Entity kinds written by this package.
const (
	KindPolyline Kind = "POLYLINE"
	KindCircle   Kind = "CIRCLE"
	KindLine     Kind = "LINE"
	KindText     Kind = "TEXT"
)

// HAlign is the horizontal text justification (group code 72).
type HAlign int

const (
	AlignLeft   HAlign = 0
	AlignCenter HAlign = 1
	AlignRight  HAlign = 2
)

// VAlign is the vertical text justification (group code 73).
type VAlign int

const (
	AlignBaseline VAlign = 0
	AlignBottom   VAlign = 1
	AlignMiddle   VAlign = 2
	AlignTop      VAlign = 3
)

// Entity is one drawing entity. Which fields are meaningful depends on Kind:
//
//	POLYLINE  Points (vertices), Closed
//	CIRCLE    Points[0] (center), Radius
//	LINE      Points[0], Points[1]
//	TEXT      Points[0] (insertion point), Text, Height, HAlign, VAlign
type Entity struct {
	Handle shape.Handle
	Kind   Kind
	Layer  string
	Props  shape.Properties

	Points []shape.Point
	Closed bool
	Radius float64

	Text   string
	Height float64
	HAlign HAlign
	VAlign VAlign
}

// Length is the drawn path length: polyline perimeter, circumference or segment length.
// Text has no length.
func (e *Entity) Length() float64 {
	switch e.Kind {
	case KindCircle:
		return 2 * math.Pi * e.Radius
	case KindLine, KindPolyline:
		var total float64
		for i := 1; i < len(e.Points); i++ {
			total += dist(e.Points[i-1], e.Points[i])
		}
		if e.Kind == KindPolyline && e.Closed && len(e.Points) > 2 {
			total += dist(e.Points[len(e.Points)-1], e.Points[0])
		}
		return total
	default:
		return 0
	}
}

// Bounds returns the axis-aligned bounding box. Text contributes its insertion point only.
func (e *Entity) Bounds() (lo, hi shape.Point) {
	if e.Kind == KindCircle {
		c := e.Points[0]
		return shape.Pt(c.X-e.Radius, c.Y-e.Radius), shape.Pt(c.X+e.Radius, c.Y+e.Radius)
	}
	lo, hi = e.Points[0], e.Points[0]
	for _, p := range e.Points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// TextOptions describes a single-line text entity.
type TextOptions struct {
	Text   string
	At     shape.Point
	Height float64 // default 2.5
	HAlign HAlign
	VAlign VAlign
	Layer  string
	Props  shape.Properties
}

func dist(a, b shape.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkPoints(kind Kind, pts ...shape.Point) error {
	for i, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: %s point %d (%g, %g) is not finite", ErrInvalidGeometry, kind, i, p.X, p.Y)
		}
	}
	return nil
}
