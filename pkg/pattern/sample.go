package pattern

import (
	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

// Sample returns a small drawing with two rectangles and two circles, handy for checking
// that a CAM tool picks up the layers.
func Sample() (*dxf.Document, error) {
	doc := dxf.New(dxf.Options{Filename: "sample.dxf", Units: dxf.Millimeters, SetupLayers: true})

	err := doc.Add(
		shape.NewRectangle(10, 10, 100, 50).OnLayer(dxf.LayerCut),
		shape.RectangleFromCenter(150, 50, 40, 40).OnLayer(dxf.LayerConstruction),
		shape.NewCircle(50, 100, 25).OnLayer(dxf.LayerCut),
		shape.CircleFromDiameter(150, 100, 40).OnLayer(dxf.LayerDimension),
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
