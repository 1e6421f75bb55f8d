package shape

import "math"

// Rectangle is an axis-aligned rectangle anchored at its bottom-left corner.
// Width and Height are not validated: negative values give a mirrored shape.
type Rectangle struct {
	Origin Point
	Width  float64
	Height float64
	Layer  string
	Closed bool
	Props  Properties

	handle Handle
}

var _ Shape = (*Rectangle)(nil)

// NewRectangle creates a closed rectangle on the default layer with its bottom-left corner at (x, y).
func NewRectangle(x, y, width, height float64) *Rectangle {
	return &Rectangle{
		Origin: Pt(x, y),
		Width:  width,
		Height: height,
		Layer:  DefaultLayer,
		Closed: true,
	}
}

// RectangleFromCenter creates a rectangle centered on (cx, cy).
func RectangleFromCenter(cx, cy, width, height float64) *Rectangle {
	return NewRectangle(cx-width/2, cy-height/2, width, height)
}

// RectangleFromCorners creates a rectangle spanning two opposite corners given in any order.
// The result always has a non-negative width and height.
func RectangleFromCorners(x1, y1, x2, y2 float64) *Rectangle {
	return NewRectangle(
		math.Min(x1, x2),
		math.Min(y1, y2),
		math.Abs(x2-x1),
		math.Abs(y2-y1),
	)
}

// OnLayer returns a copy of r placed on the named layer.
func (r *Rectangle) OnLayer(name string) *Rectangle {
	cp := r.clone()
	cp.Layer = layerOrDefault(name)
	return cp
}

// Open returns a copy of r drawn as an open polyline (three sides).
func (r *Rectangle) Open() *Rectangle {
	cp := r.clone()
	cp.Closed = false
	return cp
}

// WithProperties returns a copy of r with the given entity properties.
func (r *Rectangle) WithProperties(p Properties) *Rectangle {
	cp := r.clone()
	cp.Props = p
	return cp
}

func (r *Rectangle) clone() *Rectangle {
	cp := *r
	cp.handle = 0
	return &cp
}

// Corners returns bottom-left, bottom-right, top-right, top-left.
func (r *Rectangle) Corners() []Point {
	x, y := r.Origin.X, r.Origin.Y
	return []Point{
		{x, y},
		{x + r.Width, y},
		{x + r.Width, y + r.Height},
		{x, y + r.Height},
	}
}

// Center returns the geometric center.
func (r *Rectangle) Center() Point {
	return Pt(r.Origin.X+r.Width/2, r.Origin.Y+r.Height/2)
}

// Perimeter is the length of the outline as drawn, which skips the left side when open.
func (r *Rectangle) Perimeter() float64 {
	w, h := math.Abs(r.Width), math.Abs(r.Height)
	if !r.Closed {
		return 2*w + h
	}
	return 2 * (w + h)
}

// Handle returns the entity handle assigned by the last Emit.
func (r *Rectangle) Handle() Handle { return r.handle }

// LayerName implements Shape.
func (r *Rectangle) LayerName() string { return layerOrDefault(r.Layer) }

// Emit implements Shape.
func (r *Rectangle) Emit(target Target) (Handle, error) {
	h, err := target.Polyline(r.Corners(), r.Closed, r.LayerName(), r.Props)
	if err != nil {
		return 0, err
	}
	r.handle = h
	return h, nil
}

func (*Rectangle) isShape() {}
