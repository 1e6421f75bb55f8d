// Package dxfkit builds DXF drawings for CNC and laser cutting out of simple
// shapes (rectangles, circles, reference lines and labels) and writes them as
// AutoCAD R12 files that CAM software reads without complaint.
//
// The CLI lives in cmd/dxfkit; this root package exposes the same pipeline as
// a Go API. The building blocks live under pkg/:
//
//   - pkg/shape: rectangles and circles, including the circle through three points
//   - pkg/dxf: the drawing document, its layer registry and the file writer
//   - pkg/pattern: ready-made drawings such as the notched board
//   - pkg/job: drawings described in YAML
//   - pkg/inspect: reading DXF files back
//
// # Quick start
//
//	result, err := dxfkit.Run(dxfkit.Options{
//	    Pattern:        dxfkit.PatternNotched,
//	    DepthFractions: []float64{0.1, 0.2, 0.5},
//	    Output:         "board.dxf",
//	    Report:         true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range result.Drawings {
//	    fmt.Println(d.Path)
//	}
//
// # Using the shape model directly
//
//	doc := dxf.New(dxf.DefaultOptions())
//	hole, err := shape.CircleFromThreePoints(0, 0, 4, 0, 2, 2)
//	if err != nil {
//	    log.Fatal(err) // the points were collinear
//	}
//	doc.Add(
//	    shape.RectangleFromCorners(0, 0, 120, 60).OnLayer(dxf.LayerCut),
//	    hole.OnLayer(dxf.LayerCut),
//	)
//	doc.Save("bracket.dxf")
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Layers
//
// Layers are looked up case-insensitively. Requesting an existing layer again
// returns it unchanged, whatever attributes the second request carries; use
// LayerTable.Set to redefine one.
package dxfkit
