// Package dxf is the drawing context shapes are emitted into. A Document owns the layer registry and
// the entity list and persists itself as an AutoCAD R12 ASCII DXF file.
package dxf

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hellenic-development/dxfkit/pkg/linetype"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

// DefaultFilename is used when neither Options nor Save name a file.
const DefaultFilename = "drawing.dxf"

// DefaultTextHeight applies to text created without a height.
const DefaultTextHeight = 2.5

// Names of the layers created by Options.SetupLayers.
const (
	LayerCut          = "cut_layer"
	LayerConstruction = "construction"
	LayerDimension    = "dimension"
)

// Options configures a new Document.
type Options struct {
	Filename    string // default "drawing.dxf"
	Units       Units  // default Millimeters; unsupported codes also fall back to it
	SetupLayers bool   // create cut_layer, construction and dimension
}

// DefaultOptions returns millimetre units with the standard layers.
func DefaultOptions() Options {
	return Options{
		Filename:    DefaultFilename,
		Units:       Millimeters,
		SetupLayers: true,
	}
}

// Document is a drawing under construction. It is not safe for concurrent use.
type Document struct {
	filename    string
	units       Units
	layers      *LayerTable
	entities    []*Entity
	shapes      []shape.Shape
	fingerprint uuid.UUID
	nextHandle  shape.Handle
}

var _ shape.Target = (*Document)(nil)

// New creates an empty drawing. Layer "0" always exists.
func New(opts Options) *Document {
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}
	if !opts.Units.valid() {
		opts.Units = Millimeters
	}

	d := &Document{
		filename:    opts.Filename,
		units:       opts.Units,
		layers:      newLayerTable(),
		fingerprint: uuid.New(),
		nextHandle:  1,
	}

	// The built-in layers are valid by construction.
	d.layers.GetOrCreate(shape.DefaultLayer, LayerColor(7))
	if opts.SetupLayers {
		d.layers.GetOrCreate(LayerCut, LayerColor(1))
		d.layers.GetOrCreate(LayerConstruction, LayerColor(3), LayerLinetype(linetype.Dashed))
		d.layers.GetOrCreate(LayerDimension, LayerColor(5))
	}

	return d
}

// Filename returns the default save path.
func (d *Document) Filename() string { return d.filename }

// Units returns the drawing units.
func (d *Document) Units() Units { return d.units }

// Fingerprint returns the GUID stamped into the file header.
func (d *Document) Fingerprint() uuid.UUID { return d.fingerprint }

// Layers exposes the layer registry.
func (d *Document) Layers() *LayerTable { return d.layers }

// Layer gets or creates a layer and returns its name, so the call can be used inline.
func (d *Document) Layer(name string, opts ...LayerOption) (string, error) {
	l, err := d.layers.GetOrCreate(name, opts...)
	if err != nil {
		return "", err
	}
	return l.Name, nil
}

// Entities returns the entities in drawing order.
func (d *Document) Entities() []*Entity { return d.entities }

// Shapes returns the shapes added through Add.
func (d *Document) Shapes() []shape.Shape { return d.shapes }

// Add emits shapes into the document and keeps track of them.
func (d *Document) Add(shapes ...shape.Shape) error {
	for _, s := range shapes {
		if _, err := s.Emit(d); err != nil {
			return fmt.Errorf("add %s shape on layer %q: %w", shapeName(s), s.LayerName(), err)
		}
		d.shapes = append(d.shapes, s)
	}
	return nil
}

func shapeName(s shape.Shape) string {
	switch s.(type) {
	case *shape.Rectangle:
		return "rectangle"
	case *shape.Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// Polyline implements shape.Target.
func (d *Document) Polyline(points []shape.Point, closed bool, layer string, props shape.Properties) (shape.Handle, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("%w: polyline needs at least 2 points, got %d", ErrInvalidGeometry, len(points))
	}
	if err := checkPoints(KindPolyline, points...); err != nil {
		return 0, err
	}
	pts := make([]shape.Point, len(points))
	copy(pts, points)
	return d.add(&Entity{Kind: KindPolyline, Layer: layer, Props: props, Points: pts, Closed: closed})
}

// Circle implements shape.Target.
func (d *Document) Circle(center shape.Point, radius float64, layer string, props shape.Properties) (shape.Handle, error) {
	if err := checkPoints(KindCircle, center); err != nil {
		return 0, err
	}
	if !finite(radius) || radius <= 0 {
		return 0, fmt.Errorf("%w: circle radius %g must be positive", ErrInvalidGeometry, radius)
	}
	return d.add(&Entity{Kind: KindCircle, Layer: layer, Props: props, Points: []shape.Point{center}, Radius: radius})
}

// Line draws a single segment.
func (d *Document) Line(start, end shape.Point, layer string, props shape.Properties) (shape.Handle, error) {
	if err := checkPoints(KindLine, start, end); err != nil {
		return 0, err
	}
	return d.add(&Entity{Kind: KindLine, Layer: layer, Props: props, Points: []shape.Point{start, end}})
}

// Text draws a single line of text.
func (d *Document) Text(opts TextOptions) (shape.Handle, error) {
	if err := checkPoints(KindText, opts.At); err != nil {
		return 0, err
	}
	if opts.Height == 0 {
		opts.Height = DefaultTextHeight
	}
	if !finite(opts.Height) || opts.Height < 0 {
		return 0, fmt.Errorf("%w: text height %g must be positive", ErrInvalidGeometry, opts.Height)
	}
	if strings.ContainsAny(opts.Text, "\r\n") {
		return 0, fmt.Errorf("%w: text %q spans several lines", ErrInvalidGeometry, opts.Text)
	}
	if opts.HAlign < AlignLeft || opts.HAlign > AlignRight || opts.VAlign < AlignBaseline || opts.VAlign > AlignTop {
		return 0, fmt.Errorf("%w: text alignment (%d, %d)", ErrInvalidGeometry, opts.HAlign, opts.VAlign)
	}
	return d.add(&Entity{
		Kind:   KindText,
		Layer:  opts.Layer,
		Props:  opts.Props,
		Points: []shape.Point{opts.At},
		Text:   opts.Text,
		Height: opts.Height,
		HAlign: opts.HAlign,
		VAlign: opts.VAlign,
	})
}

func (d *Document) add(e *Entity) (shape.Handle, error) {
	if strings.TrimSpace(e.Layer) == "" {
		e.Layer = shape.DefaultLayer
	}
	// DXF readers reject references to undefined layers.
	l, err := d.layers.GetOrCreate(e.Layer)
	if err != nil {
		return 0, err
	}
	e.Layer = l.Name

	e.Handle = d.nextHandle
	d.nextHandle++
	d.entities = append(d.entities, e)
	return e.Handle, nil
}

// Extents returns the bounding box of every entity; ok is false for an empty drawing.
func (d *Document) Extents() (lo, hi shape.Point, ok bool) {
	if len(d.entities) == 0 {
		return lo, hi, false
	}
	lo = shape.Pt(math.Inf(1), math.Inf(1))
	hi = shape.Pt(math.Inf(-1), math.Inf(-1))
	for _, e := range d.entities {
		emin, emax := e.Bounds()
		lo.X = math.Min(lo.X, emin.X)
		lo.Y = math.Min(lo.Y, emin.Y)
		hi.X = math.Max(hi.X, emax.X)
		hi.Y = math.Max(hi.Y, emax.Y)
	}
	return lo, hi, true
}

// Save writes the drawing to filename, or to the document's own filename when empty.
// A ".dxf" extension is appended when missing. It returns the path written.
func (d *Document) Save(filename string) (string, error) {
	path := filename
	if path == "" {
		path = d.filename
	}
	if !strings.EqualFold(filepath.Ext(path), ".dxf") {
		path += ".dxf"
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := d.WriteTo(w); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write drawing %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write drawing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %q: %w", path, err)
	}

	return path, nil
}
