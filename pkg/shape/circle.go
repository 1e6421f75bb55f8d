package shape

import "math"

// CollinearEpsilon is the determinant magnitude under which three points are treated as collinear.
const CollinearEpsilon = 1e-10

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
	Layer  string
	Props  Properties

	handle Handle
}

var _ Shape = (*Circle)(nil)

// NewCircle creates a circle on the default layer.
func NewCircle(cx, cy, radius float64) *Circle {
	return &Circle{
		Center: Pt(cx, cy),
		Radius: radius,
		Layer:  DefaultLayer,
	}
}

// CircleFromDiameter creates a circle of the given diameter centered on (cx, cy).
func CircleFromDiameter(cx, cy, diameter float64) *Circle {
	return NewCircle(cx, cy, diameter/2)
}

// CircleFromThreePoints returns the unique circle through three points.
// It fails with a *CollinearPointsError when the points lie on one line.
func CircleFromThreePoints(x1, y1, x2, y2, x3, y3 float64) (*Circle, error) {
	det := x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2)
	if math.Abs(det) < CollinearEpsilon {
		return nil, &CollinearPointsError{
			Points: [3]Point{{x1, y1}, {x2, y2}, {x3, y3}},
			Det:    det,
		}
	}

	d := 2 * det
	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	cx := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d

	return NewCircle(cx, cy, math.Hypot(cx-x1, cy-y1)), nil
}

// OnLayer returns a copy of c placed on the named layer.
func (c *Circle) OnLayer(name string) *Circle {
	cp := c.clone()
	cp.Layer = layerOrDefault(name)
	return cp
}

// WithProperties returns a copy of c with the given entity properties.
func (c *Circle) WithProperties(p Properties) *Circle {
	cp := c.clone()
	cp.Props = p
	return cp
}

// clone copies c without its handle; the copy has not been emitted yet.
func (c *Circle) clone() *Circle {
	cp := *c
	cp.handle = 0
	return &cp
}

// Diameter returns 2*Radius.
func (c *Circle) Diameter() float64 { return 2 * c.Radius }

// Circumference returns the outline length.
func (c *Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }

// Handle returns the entity handle assigned by the last Emit.
func (c *Circle) Handle() Handle { return c.handle }

// LayerName implements Shape.
func (c *Circle) LayerName() string { return layerOrDefault(c.Layer) }

// Emit implements Shape.
func (c *Circle) Emit(target Target) (Handle, error) {
	h, err := target.Circle(c.Center, c.Radius, c.LayerName(), c.Props)
	if err != nil {
		return 0, err
	}
	c.handle = h
	return h, nil
}

func (*Circle) isShape() {}
