package shape

// DefaultLayer is the layer every DXF document carries and the one shapes land on unless told otherwise.
const DefaultLayer = "0"

// Point is a 2D coordinate in drawing units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Handle identifies an entity inside the drawing it was emitted into.
// The zero Handle means the shape has not been emitted yet.
type Handle uint64

// Target is the drawing context shapes emit themselves into.
// The dxf package's Document is the production implementation.
type Target interface {
	Polyline(points []Point, closed bool, layer string, props Properties) (Handle, error)
	Circle(center Point, radius float64, layer string, props Properties) (Handle, error)
}

// Shape is the closed set of drawable shapes: *Rectangle and *Circle.
type Shape interface {
	// Emit draws the shape into target and remembers the returned handle.
	Emit(target Target) (Handle, error)
	// LayerName returns the name of the layer the shape is drawn on.
	LayerName() string

	isShape()
}

// EmitAll emits shapes in order and stops at the first failure.
func EmitAll(target Target, shapes ...Shape) ([]Handle, error) {
	handles := make([]Handle, 0, len(shapes))
	for _, s := range shapes {
		h, err := s.Emit(target)
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func layerOrDefault(name string) string {
	if name == "" {
		return DefaultLayer
	}
	return name
}
