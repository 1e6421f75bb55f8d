package job

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

const bracketJob = `
filename: bracket.dxf
units: cm
layers:
  - name: engrave
    color: 5
    linetype: dashed
    plot: false
  - name: cut_layer
    color: 2
shapes:
  - type: rectangle
    corners: [[120, 60], [0, 0]]
    layer: cut_layer
  - type: rectangle
    center: [60, 30]
    width: 20
    height: 10
    open: true
  - type: rectangle
    x: 5
    y: 5
    width: 10
    height: 10
    color: 1
    linetype: center
  - type: circle
    center: [30, 30]
    diameter: 8
  - type: circle
    center: [90, 30]
    radius: 4
    layer: engrave
  - type: circle
    points: [[0, 0], [4, 0], [2, 2]]
  - type: line
    from: [0, 30]
    to: [120, 30]
    layer: engrave
  - type: text
    text: BRACKET A
    at: [0, 70]
    height: 5
    valign: middle
`

func TestParseAndBuild(t *testing.T) {
	j, err := Parse([]byte(bracketJob))
	require.NoError(t, err)
	require.Len(t, j.Shapes, 8)

	doc, err := j.Build()
	require.NoError(t, err)

	assert.Equal(t, "bracket.dxf", doc.Filename())
	assert.Equal(t, dxf.Centimeters, doc.Units())
	assert.Len(t, doc.Entities(), 8)
	assert.Len(t, doc.Shapes(), 6)

	engrave, ok := doc.Layers().Get("engrave")
	require.True(t, ok)
	assert.Equal(t, dxf.Layer{Name: "engrave", Color: 5, Linetype: "DASHED", Lineweight: 25, Plot: false}, engrave)

	// declared layers redefine the standard ones
	cut, _ := doc.Layers().Get(dxf.LayerCut)
	assert.Equal(t, 2, cut.Color)

	rects := doc.Shapes()[:3]
	r0 := rects[0].(*shape.Rectangle)
	assert.Equal(t, shape.Pt(0, 0), r0.Origin)
	assert.Equal(t, 120.0, r0.Width)
	assert.Equal(t, 60.0, r0.Height)

	r1 := rects[1].(*shape.Rectangle)
	assert.Equal(t, shape.Pt(50, 25), r1.Origin)
	assert.False(t, r1.Closed)

	r2 := rects[2].(*shape.Rectangle)
	assert.Equal(t, 1, r2.Props.Color())
	assert.Equal(t, "CENTER", r2.Props.Linetype())

	c0 := doc.Shapes()[3].(*shape.Circle)
	assert.Equal(t, 4.0, c0.Radius)

	c2 := doc.Shapes()[5].(*shape.Circle)
	assert.InDelta(t, 2.0, c2.Center.X, 1e-9)
	assert.InDelta(t, 2.0, c2.Radius, 1e-9)

	text := doc.Entities()[7]
	assert.Equal(t, dxf.KindText, text.Kind)
	assert.Equal(t, "BRACKET A", text.Text)
	assert.Equal(t, dxf.AlignMiddle, text.VAlign)
}

func TestSetupLayersDisabled(t *testing.T) {
	j, err := Parse([]byte(`
setup_layers: false
shapes:
  - type: circle
    center: [0, 0]
    radius: 1
`))
	require.NoError(t, err)

	doc, err := j.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, doc.Layers().Names())
	assert.Equal(t, dxf.DefaultFilename, doc.Filename())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no shapes", yaml: "filename: x.dxf\n"},
		{name: "unknown key", yaml: "shapes:\n  - type: circle\n    centre: [0, 0]\n"},
		{name: "bad point arity", yaml: "shapes:\n  - type: circle\n    center: [0, 0, 0]\n    radius: 1\n"},
		{name: "not yaml", yaml: "shapes: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "collinear circle",
			yaml:    "shapes:\n  - type: circle\n    points: [[0, 0], [1, 1], [2, 2]]\n",
			wantErr: shape.ErrCollinearPoints,
		},
		{
			name:    "bad units",
			yaml:    "units: parsec\nshapes:\n  - type: circle\n    center: [0, 0]\n    radius: 1\n",
			wantErr: dxf.ErrUnknownUnits,
		},
		{
			name:    "bad color",
			yaml:    "shapes:\n  - type: circle\n    center: [0, 0]\n    radius: 1\n    color: 300\n",
			wantErr: shape.ErrInvalidProperty,
		},
		{
			name:    "bad layer",
			yaml:    "layers:\n  - name: x\n    color: 0\nshapes:\n  - type: circle\n    center: [0, 0]\n    radius: 1\n",
			wantErr: dxf.ErrInvalidLayer,
		},
		{
			name:    "zero radius",
			yaml:    "shapes:\n  - type: circle\n    center: [0, 0]\n    radius: 0\n",
			wantErr: dxf.ErrInvalidGeometry,
		},
		{
			name:    "ambiguous rectangle",
			yaml:    "shapes:\n  - type: rectangle\n    x: 1\n    corners: [[0, 0], [1, 1]]\n",
			wantErr: errAmbiguous,
		},
		{
			name:    "ambiguous circle",
			yaml:    "shapes:\n  - type: circle\n    center: [0, 0]\n    radius: 1\n    diameter: 2\n",
			wantErr: errAmbiguous,
		},
		{
			name:    "unknown type",
			yaml:    "shapes:\n  - type: hexagon\n",
			wantErr: ErrInvalidJob,
		},
		{
			name:    "line without end",
			yaml:    "shapes:\n  - type: line\n    from: [0, 0]\n",
			wantErr: ErrInvalidJob,
		},
		{
			name:    "bad alignment",
			yaml:    "shapes:\n  - type: text\n    text: x\n    at: [0, 0]\n    halign: justified\n",
			wantErr: ErrInvalidJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = j.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "error %v should match %v", err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bracketJob), 0644))

	j, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bracket.dxf", j.Filename)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
