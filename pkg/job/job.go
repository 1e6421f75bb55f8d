// Package job reads drawings described declaratively in YAML and builds them into documents.
//
// A job looks like:
//
//	filename: bracket.dxf
//	units: mm
//	setup_layers: true
//	layers:
//	  - name: engrave
//	    color: 5
//	    linetype: DASHED
//	shapes:
//	  - type: rectangle
//	    corners: [[0, 0], [120, 60]]
//	    layer: cut_layer
//	  - type: circle
//	    center: [30, 30]
//	    diameter: 8
//	  - type: circle
//	    points: [[0, 0], [4, 0], [2, 2]]
//	  - type: text
//	    text: "BRACKET A"
//	    at: [0, 70]
//	    height: 5
package job

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
)

// ErrInvalidJob wraps every validation failure in a job file.
var ErrInvalidJob = errors.New("invalid job")

// Job is a declarative drawing.
type Job struct {
	Filename    string  `yaml:"filename"`
	Units       string  `yaml:"units"`
	SetupLayers *bool   `yaml:"setup_layers"` // default true
	Layers      []Layer `yaml:"layers"`
	Shapes      []Shape `yaml:"shapes"`
}

// Layer declares a layer. Omitted fields take the layer defaults.
type Layer struct {
	Name       string `yaml:"name"`
	Color      *int   `yaml:"color"`
	Linetype   string `yaml:"linetype"`
	Lineweight *int   `yaml:"lineweight"`
	Plot       *bool  `yaml:"plot"`
}

// Vec is a point written as a two element sequence.
type Vec [2]float64

// Shape is one drawing element. Type selects which of the remaining fields apply.
type Shape struct {
	Type string `yaml:"type"` // rectangle, circle, line, text

	// rectangle: x/y/width/height, center+width/height, or corners
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Width   *float64 `yaml:"width"`
	Height  *float64 `yaml:"height"`
	Corners []Vec    `yaml:"corners"`
	Open    bool     `yaml:"open"`

	// circle: center+radius, center+diameter, or points
	Center   *Vec     `yaml:"center"`
	Radius   *float64 `yaml:"radius"`
	Diameter *float64 `yaml:"diameter"`
	Points   []Vec    `yaml:"points"`

	// line
	From *Vec `yaml:"from"`
	To   *Vec `yaml:"to"`

	// text; Height is shared with rectangles
	Text   string `yaml:"text"`
	At     *Vec   `yaml:"at"`
	HAlign string `yaml:"halign"` // left, center, right
	VAlign string `yaml:"valign"` // baseline, bottom, middle, top

	// entity properties
	Layer     string   `yaml:"layer"`
	Color     *int     `yaml:"color"`
	Linetype  string   `yaml:"linetype"`
	Thickness *float64 `yaml:"thickness"`
}

// Load reads and parses a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %q: %w", path, err)
	}
	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

// Parse decodes a job. Unknown keys are rejected so that typos do not silently drop shapes.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	if len(j.Shapes) == 0 {
		return nil, fmt.Errorf("%w: no shapes", ErrInvalidJob)
	}
	return &j, nil
}

// Options returns the document options the job asks for.
func (j *Job) Options() (dxf.Options, error) {
	opts := dxf.DefaultOptions()
	if j.Filename != "" {
		opts.Filename = j.Filename
	}
	if j.Units != "" {
		u, err := dxf.ParseUnits(j.Units)
		if err != nil {
			return dxf.Options{}, fmt.Errorf("%w: %w", ErrInvalidJob, err)
		}
		opts.Units = u
	}
	if j.SetupLayers != nil {
		opts.SetupLayers = *j.SetupLayers
	}
	return opts, nil
}

// Build creates the document: declared layers first, then shapes in order.
func (j *Job) Build() (*dxf.Document, error) {
	opts, err := j.Options()
	if err != nil {
		return nil, err
	}
	doc := dxf.New(opts)

	for i, l := range j.Layers {
		if _, err := doc.Layers().Set(l.Name, l.options()...); err != nil {
			return nil, fmt.Errorf("%w: layer %d: %w", ErrInvalidJob, i, err)
		}
	}

	for i := range j.Shapes {
		if err := j.Shapes[i].draw(doc); err != nil {
			return nil, fmt.Errorf("%w: shape %d (%s): %w", ErrInvalidJob, i, j.Shapes[i].Type, err)
		}
	}

	return doc, nil
}

func (l Layer) options() []dxf.LayerOption {
	var opts []dxf.LayerOption
	if l.Color != nil {
		opts = append(opts, dxf.LayerColor(*l.Color))
	}
	if l.Linetype != "" {
		opts = append(opts, dxf.LayerLinetype(l.Linetype))
	}
	if l.Lineweight != nil {
		opts = append(opts, dxf.LayerLineweight(*l.Lineweight))
	}
	if l.Plot != nil {
		opts = append(opts, dxf.LayerPlot(*l.Plot))
	}
	return opts
}
