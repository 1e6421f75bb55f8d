package dxf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hellenic-development/dxfkit/pkg/linetype"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

// Version is the $ACADVER written to every file (AutoCAD R12).
const Version = "AC1009"

// tagWriter emits group code/value pairs and remembers the first error.
type tagWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (t *tagWriter) str(code int, value string) {
	if t.err != nil {
		return
	}
	n, err := fmt.Fprintf(t.w, "%3d\n%s\n", code, value)
	t.n += int64(n)
	t.err = err
}

func (t *tagWriter) int(code int, value int) {
	t.str(code, strconv.Itoa(value))
}

func (t *tagWriter) float(code int, value float64) {
	t.str(code, formatFloat(value))
}

func (t *tagWriter) hex(code int, h shape.Handle) {
	t.str(code, strings.ToUpper(strconv.FormatUint(uint64(h), 16)))
}

// point writes x/y/z under base, base+10 and base+20.
func (t *tagWriter) point(base int, p shape.Point) {
	t.float(base, p.X)
	t.float(base+10, p.Y)
	t.float(base+20, 0)
}

func formatFloat(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0.0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// WriteTo writes the drawing as an R12 ASCII DXF stream.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	t := &tagWriter{w: w}

	// POLYLINE needs a handle per VERTEX plus one for SEQEND; those are assigned here.
	seed := d.nextHandle
	for _, e := range d.entities {
		if e.Kind == KindPolyline {
			seed += shape.Handle(len(e.Points) + 1)
		}
	}

	d.writeHeader(t, seed)
	d.writeTables(t)
	d.writeEntities(t)
	t.str(0, "EOF")

	return t.n, t.err
}

func (d *Document) writeHeader(t *tagWriter, seed shape.Handle) {
	lo, hi, ok := d.Extents()
	if !ok {
		lo, hi = shape.Point{}, shape.Point{}
	}

	t.str(0, "SECTION")
	t.str(2, "HEADER")

	t.str(9, "$ACADVER")
	t.str(1, Version)
	t.str(9, "$INSBASE")
	t.point(10, shape.Point{})
	t.str(9, "$EXTMIN")
	t.point(10, lo)
	t.str(9, "$EXTMAX")
	t.point(10, hi)
	t.str(9, "$INSUNITS")
	t.int(70, int(d.units))
	t.str(9, "$MEASUREMENT")
	if d.units.Metric() {
		t.int(70, 1)
	} else {
		t.int(70, 0)
	}
	t.str(9, "$HANDLING")
	t.int(70, 1)
	t.str(9, "$HANDSEED")
	t.hex(5, seed)
	t.str(9, "$FINGERPRINTGUID")
	t.str(2, "{"+strings.ToUpper(d.fingerprint.String())+"}")

	t.str(0, "ENDSEC")
}

// usedLinetypes lists CONTINUOUS plus every catalog linetype a layer or entity references.
func (d *Document) usedLinetypes() []linetype.Linetype {
	seen := map[string]bool{linetype.Continuous: true}
	out := []linetype.Linetype{}
	if lt, ok := linetype.Lookup(linetype.Continuous); ok {
		out = append(out, lt)
	}

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		if lt, ok := linetype.Lookup(name); ok {
			seen[lt.Name] = true
			out = append(out, lt)
		}
	}
	for _, l := range d.layers.All() {
		add(l.Linetype)
	}
	for _, e := range d.entities {
		add(e.Props.Linetype())
	}
	return out
}

func (d *Document) writeTables(t *tagWriter) {
	t.str(0, "SECTION")
	t.str(2, "TABLES")

	lts := d.usedLinetypes()
	t.str(0, "TABLE")
	t.str(2, "LTYPE")
	t.int(70, len(lts))
	for _, lt := range lts {
		t.str(0, "LTYPE")
		t.str(2, lt.Name)
		t.int(70, 0)
		t.str(3, lt.Description)
		t.int(72, 65)
		t.int(73, len(lt.Pattern))
		t.float(40, lt.Length())
		for _, el := range lt.Pattern {
			t.float(49, el)
		}
	}
	t.str(0, "ENDTAB")

	layers := d.layers.All()
	t.str(0, "TABLE")
	t.str(2, "LAYER")
	t.int(70, len(layers))
	for _, l := range layers {
		t.str(0, "LAYER")
		t.str(2, l.Name)
		t.int(70, 0)
		t.int(62, l.Color)
		t.str(6, l.Linetype)
	}
	t.str(0, "ENDTAB")

	t.str(0, "ENDSEC")
}

func (d *Document) writeEntities(t *tagWriter) {
	t.str(0, "SECTION")
	t.str(2, "ENTITIES")

	sub := d.nextHandle
	for _, e := range d.entities {
		switch e.Kind {
		case KindPolyline:
			writeCommon(t, "POLYLINE", e.Handle, e.Layer, e.Props)
			t.int(66, 1)
			t.point(10, shape.Point{})
			if e.Closed {
				t.int(70, 1)
			} else {
				t.int(70, 0)
			}
			for _, p := range e.Points {
				t.str(0, "VERTEX")
				t.hex(5, sub)
				sub++
				t.str(8, e.Layer)
				t.point(10, p)
			}
			t.str(0, "SEQEND")
			t.hex(5, sub)
			sub++
			t.str(8, e.Layer)
		case KindCircle:
			writeCommon(t, "CIRCLE", e.Handle, e.Layer, e.Props)
			t.point(10, e.Points[0])
			t.float(40, e.Radius)
		case KindLine:
			writeCommon(t, "LINE", e.Handle, e.Layer, e.Props)
			t.point(10, e.Points[0])
			t.point(11, e.Points[1])
		case KindText:
			writeCommon(t, "TEXT", e.Handle, e.Layer, e.Props)
			t.point(10, e.Points[0])
			t.float(40, e.Height)
			t.str(1, e.Text)
			if e.HAlign != AlignLeft || e.VAlign != AlignBaseline {
				t.int(72, int(e.HAlign))
				// aligned text is positioned by its alignment point
				t.point(11, e.Points[0])
				t.int(73, int(e.VAlign))
			}
		}
	}

	t.str(0, "ENDSEC")
}

func writeCommon(t *tagWriter, kind string, h shape.Handle, layer string, p shape.Properties) {
	t.str(0, kind)
	t.hex(5, h)
	t.str(8, layer)
	if lt := p.Linetype(); lt != "" {
		t.str(6, lt)
	}
	if c := p.Color(); c != shape.ColorByLayer {
		t.int(62, c)
	}
	if th := p.Thickness(); th != 0 {
		t.float(39, th)
	}
}
