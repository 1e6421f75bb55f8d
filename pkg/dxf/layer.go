package dxf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hellenic-development/dxfkit/pkg/linetype"
)

var (
	// ErrEmptyLayerName is returned when a layer is requested without a name.
	ErrEmptyLayerName = errors.New("layer name is empty")
	// ErrInvalidLayer reports a layer attribute outside what DXF allows.
	ErrInvalidLayer = errors.New("invalid layer attribute")
)

// Special lineweight values.
const (
	LineweightByLayer = -1
	LineweightByBlock = -2
	LineweightDefault = -3
)

// Layer defaults, matching what CAM tools expect from a freshly created layer.
const (
	DefaultLayerColor      = 7 // white/black
	DefaultLayerLineweight = 25
)

// standard lineweights in hundredths of a millimetre.
var lineweights = map[int]bool{
	0: true, 5: true, 9: true, 13: true, 15: true, 18: true, 20: true, 25: true,
	30: true, 35: true, 40: true, 50: true, 53: true, 60: true, 70: true, 80: true,
	90: true, 100: true, 106: true, 120: true, 140: true, 158: true, 200: true, 211: true,
	LineweightByLayer: true, LineweightByBlock: true, LineweightDefault: true,
}

// Layer is a named group of entities sharing display attributes.
type Layer struct {
	Name       string
	Color      int // ACI 1..255
	Linetype   string
	Lineweight int // hundredths of a millimetre, or one of the Lineweight* constants
	Plot       bool
}

// LayerOption adjusts a layer definition.
type LayerOption func(*Layer)

// LayerColor sets the ACI color.
func LayerColor(aci int) LayerOption {
	return func(l *Layer) { l.Color = aci }
}

// LayerLinetype sets the linetype. Names outside the catalog fall back to CONTINUOUS.
func LayerLinetype(name string) LayerOption {
	return func(l *Layer) { l.Linetype = name }
}

// LayerLineweight sets the lineweight.
func LayerLineweight(lw int) LayerOption {
	return func(l *Layer) { l.Lineweight = lw }
}

// LayerPlot sets whether the layer is plotted.
func LayerPlot(plot bool) LayerOption {
	return func(l *Layer) { l.Plot = plot }
}

// NewLayer builds a validated layer definition with defaults applied.
func NewLayer(name string, opts ...LayerOption) (Layer, error) {
	l := Layer{
		Name:       strings.TrimSpace(name),
		Color:      DefaultLayerColor,
		Linetype:   linetype.Continuous,
		Lineweight: DefaultLayerLineweight,
		Plot:       true,
	}
	for _, opt := range opts {
		opt(&l)
	}

	if l.Name == "" {
		return Layer{}, ErrEmptyLayerName
	}
	if l.Color < 1 || l.Color > 255 {
		return Layer{}, fmt.Errorf("%w: layer %q color %d is outside 1..255", ErrInvalidLayer, l.Name, l.Color)
	}
	if !lineweights[l.Lineweight] {
		return Layer{}, fmt.Errorf("%w: layer %q lineweight %d is not a standard value", ErrInvalidLayer, l.Name, l.Lineweight)
	}
	if lt, ok := linetype.Lookup(l.Linetype); ok {
		l.Linetype = lt.Name
	} else {
		l.Linetype = linetype.Continuous
	}

	return l, nil
}

// LayerTable is the layer registry of a document. Names are case-insensitive, as in DXF.
// Layers are handed out by value so that callers cannot change shared state behind the table's back.
type LayerTable struct {
	layers map[string]Layer
	order  []string // lowercase keys in creation order
}

func newLayerTable() *LayerTable {
	return &LayerTable{layers: make(map[string]Layer)}
}

func layerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetOrCreate returns the layer called name, creating it from opts when missing.
// An existing layer is returned unchanged; opts are ignored for it. Use Set to redefine a layer.
func (t *LayerTable) GetOrCreate(name string, opts ...LayerOption) (Layer, error) {
	if l, ok := t.layers[layerKey(name)]; ok {
		return l, nil
	}
	l, err := NewLayer(name, opts...)
	if err != nil {
		return Layer{}, err
	}
	return t.put(l), nil
}

// Set defines or overwrites a layer.
func (t *LayerTable) Set(name string, opts ...LayerOption) (Layer, error) {
	l, err := NewLayer(name, opts...)
	if err != nil {
		return Layer{}, err
	}
	return t.put(l), nil
}

// put stores l and returns the stored value.
func (t *LayerTable) put(l Layer) Layer {
	key := layerKey(l.Name)
	if existing, ok := t.layers[key]; ok {
		// keep the original spelling
		l.Name = existing.Name
	} else {
		t.order = append(t.order, key)
	}
	t.layers[key] = l
	return l
}

// Get looks up a layer.
func (t *LayerTable) Get(name string) (Layer, bool) {
	l, ok := t.layers[layerKey(name)]
	return l, ok
}

// Has reports whether a layer exists.
func (t *LayerTable) Has(name string) bool {
	_, ok := t.layers[layerKey(name)]
	return ok
}

// Len returns the number of layers.
func (t *LayerTable) Len() int { return len(t.order) }

// All returns the layers in creation order.
func (t *LayerTable) All() []Layer {
	out := make([]Layer, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.layers[key])
	}
	return out
}

// Names returns the layer names in creation order.
func (t *LayerTable) Names() []string {
	out := make([]string, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.layers[key].Name)
	}
	return out
}
