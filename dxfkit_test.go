package dxfkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/pattern"
)

type recordingLogger struct {
	infos, warns []string
}

func (l *recordingLogger) Infof(f string, a ...any)  { l.infos = append(l.infos, fmt.Sprintf(f, a...)) }
func (l *recordingLogger) Warnf(f string, a ...any)  { l.warns = append(l.warns, fmt.Sprintf(f, a...)) }
func (l *recordingLogger) Errorf(f string, a ...any) {}

func TestRunNotchedVariants(t *testing.T) {
	dir := t.TempDir()
	logger := &recordingLogger{}

	result, err := Run(Options{
		Pattern:        PatternNotched,
		DepthFractions: []float64{0.1, 0.2, 0.5},
		Output:         filepath.Join(dir, "board.dxf"),
		Report:         true,
		Logger:         logger,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Drawings) != 3 {
		t.Fatalf("Drawings = %d, want 3", len(result.Drawings))
	}
	for i, pct := range []int{10, 20, 50} {
		d := result.Drawings[i]
		want := filepath.Join(dir, fmt.Sprintf("board_%dpercent.dxf", pct))
		if d.Path != want {
			t.Errorf("Drawings[%d].Path = %q, want %q", i, d.Path, want)
		}
		if _, err := os.Stat(d.Path); err != nil {
			t.Errorf("drawing %q not written: %v", d.Path, err)
		}
		if !strings.Contains(d.Markdown, fmt.Sprintf("board_%dpercent.dxf", pct)) {
			t.Errorf("report %d does not name its file", i)
		}
		if d.Specs.Entities.Polylines != 5 {
			t.Errorf("Drawings[%d] polylines = %d, want 5", i, d.Specs.Entities.Polylines)
		}
	}
	if len(logger.infos) == 0 {
		t.Error("logger received no progress messages")
	}
}

func TestRunSampleDefaultsToDrawingFilename(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	result, err := Run(Options{Pattern: PatternSample})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := result.Drawings[0].Path; got != "sample.dxf" {
		t.Errorf("Path = %q, want sample.dxf", got)
	}
	if result.Drawings[0].Markdown != "" {
		t.Error("Markdown should be empty without Report")
	}
	if _, err := os.Stat(filepath.Join(dir, "sample.dxf")); err != nil {
		t.Errorf("sample.dxf not written: %v", err)
	}
}

func TestRunJob(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "plate.yaml")
	jobYAML := `
shapes:
  - type: rectangle
    corners: [[0, 0], [80, 40]]
    layer: cut_layer
  - type: circle
    points: [[10, 10], [20, 10], [15, 15]]
    layer: cut_layer
`
	if err := os.WriteFile(jobPath, []byte(jobYAML), 0644); err != nil {
		t.Fatal(err)
	}

	logger := &recordingLogger{}
	result, err := Run(Options{
		JobFile: jobPath,
		Output:  filepath.Join(dir, "plate"),
		Units:   dxf.Inches,
		Logger:  logger,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	d := result.Drawings[0]
	if d.Path != filepath.Join(dir, "plate.dxf") {
		t.Errorf("Path = %q", d.Path)
	}
	if d.Specs.Units != "in" {
		t.Errorf("Units = %q, want in", d.Specs.Units)
	}
	if d.Specs.Entities.Circles != 1 || d.Specs.Entities.Polylines != 1 {
		t.Errorf("Entities = %+v", d.Specs.Entities)
	}
	if len(logger.warns) != 0 {
		t.Errorf("unexpected warnings: %v", logger.warns)
	}
}

func TestRunJobUnitsConflictWarns(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "plate.yaml")
	os.WriteFile(jobPath, []byte("units: cm\nshapes:\n  - type: circle\n    center: [0, 0]\n    radius: 1\n"), 0644)

	logger := &recordingLogger{}
	result, err := Run(Options{JobFile: jobPath, Output: filepath.Join(dir, "p.dxf"), Units: dxf.Inches, Logger: logger})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Drawings[0].Specs.Units != "cm" {
		t.Errorf("Units = %q, want cm", result.Drawings[0].Specs.Units)
	}
	if len(logger.warns) != 1 {
		t.Errorf("warnings = %v, want 1", logger.warns)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "no source", opts: Options{}},
		{name: "two sources", opts: Options{Pattern: PatternSample, JobFile: "x.yaml"}},
		{name: "unknown pattern", opts: Options{Pattern: "hexagon"}},
		{name: "missing job", opts: Options{JobFile: filepath.Join(t.TempDir(), "none.yaml")}},
		{name: "bad board", opts: Options{Pattern: PatternNotched, DepthFractions: []float64{1.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(tt.opts); err == nil {
				t.Error("Run() error = nil, want error")
			}
		})
	}
}

func TestParseFractions(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []float64
		wantErr bool
	}{
		{name: "single", in: "0.2", want: []float64{0.2}},
		{name: "list", in: "0.1, 0.2,0.5", want: []float64{0.1, 0.2, 0.5}},
		{name: "percentages", in: "10%,50%", want: []float64{0.1, 0.5}},
		{name: "empty entries", in: ",0.3,,", want: []float64{0.3}},
		{name: "empty", in: "", want: []float64{}},
		{name: "not a number", in: "deep", wantErr: true},
		{name: "too deep", in: "1", wantErr: true},
		{name: "zero", in: "0%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFractions(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFractions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFractions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseFractions()[%d] = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	doc := dxf.New(dxf.Options{Filename: "own.dxf"})

	tests := []struct {
		output   string
		multi    bool
		fraction float64
		want     string
	}{
		{output: "", want: "own.dxf"},
		{output: "", multi: true, fraction: 0.5, want: "own.dxf"},
		{output: "out.dxf", want: "out.dxf"},
		{output: "out.dxf", multi: true, fraction: 0.5, want: "out_50percent.dxf"},
		{output: "out", multi: true, fraction: 0.1, want: "out_10percent.dxf"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, doc, tt.multi, tt.fraction); got != tt.want {
			t.Errorf("outputPath(%q, %v, %g) = %q, want %q", tt.output, tt.multi, tt.fraction, got, tt.want)
		}
	}
}

func TestRunNotchedVariantsWithoutOutput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	result, err := Run(Options{
		Pattern:        PatternNotched,
		Notched:        pattern.DefaultNotchedBoard(),
		DepthFractions: []float64{0.1, 0.5},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"notched_rectangle_10percent.dxf", "notched_rectangle_50percent.dxf"}
	if len(result.Drawings) != len(want) {
		t.Fatalf("Drawings = %d, want %d", len(result.Drawings), len(want))
	}
	for i, name := range want {
		if got := result.Drawings[i].Path; got != name {
			t.Errorf("Drawings[%d].Path = %q, want %q", i, got, name)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore Chdir(%q) error = %v", prev, err)
		}
	})
}
