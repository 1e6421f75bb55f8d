package shape

import (
	"fmt"

	"github.com/hellenic-development/dxfkit/pkg/linetype"
)

// ACI color numbers with special meaning.
const (
	ColorByBlock = 0
	ColorByLayer = 256
)

// Properties are the per-entity overrides a drawing entity supports.
// The zero value inherits everything from the entity's layer.
type Properties struct {
	color     int
	colorSet  bool
	linetype  string  // empty means BYLAYER
	thickness float64 // extrusion thickness, 0 = flat
}

// Color returns the ACI color, ColorByLayer when unset.
func (p Properties) Color() int {
	if !p.colorSet {
		return ColorByLayer
	}
	return p.color
}

// Linetype returns the linetype override, empty for BYLAYER.
func (p Properties) Linetype() string { return p.linetype }

// Thickness returns the extrusion thickness.
func (p Properties) Thickness() float64 { return p.thickness }

// IsZero reports whether p overrides nothing.
func (p Properties) IsZero() bool {
	return !p.colorSet && p.linetype == "" && p.thickness == 0
}

// PropertyOption sets one property.
type PropertyOption func(*Properties) error

// WithColor sets the ACI color (0 = BYBLOCK, 1..255, 256 = BYLAYER).
func WithColor(aci int) PropertyOption {
	return func(p *Properties) error {
		if aci < ColorByBlock || aci > ColorByLayer {
			return fmt.Errorf("%w: color %d is outside 0..256", ErrInvalidProperty, aci)
		}
		p.color = aci
		p.colorSet = true
		return nil
	}
}

// WithLinetype sets the linetype by catalog name or BYLAYER/BYBLOCK.
func WithLinetype(name string) PropertyOption {
	return func(p *Properties) error {
		n, ok := linetype.Normalize(name)
		if !ok {
			return fmt.Errorf("%w: unknown linetype %q", ErrInvalidProperty, name)
		}
		if n == linetype.ByLayer {
			n = ""
		}
		p.linetype = n
		return nil
	}
}

// WithThickness sets the extrusion thickness.
func WithThickness(t float64) PropertyOption {
	return func(p *Properties) error {
		if t < 0 {
			return fmt.Errorf("%w: thickness %g is negative", ErrInvalidProperty, t)
		}
		p.thickness = t
		return nil
	}
}

// NewProperties builds validated properties.
func NewProperties(opts ...PropertyOption) (Properties, error) {
	var p Properties
	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return Properties{}, err
		}
	}
	return p, nil
}

// MustProperties is like NewProperties but panics on invalid input.
// It is meant for literal values known at compile time.
func MustProperties(opts ...PropertyOption) Properties {
	p, err := NewProperties(opts...)
	if err != nil {
		panic(err)
	}
	return p
}
