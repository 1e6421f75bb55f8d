package dxfkit

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/extractor"
	"github.com/hellenic-development/dxfkit/pkg/formatter"
	"github.com/hellenic-development/dxfkit/pkg/job"
	"github.com/hellenic-development/dxfkit/pkg/pattern"
)

// Version of the toolkit.
const Version = "0.3.0"

// Built-in patterns.
const (
	PatternNotched = "notched"
	PatternSample  = "sample"
)

// Options configures a drawing run. Exactly one of Pattern or JobFile selects the source.
type Options struct {
	Pattern        string // PatternNotched or PatternSample
	JobFile        string // YAML job description
	Output         string // output path; empty = the drawing's own filename
	Units          dxf.Units
	Notched        pattern.NotchedBoardParams
	DepthFractions []float64 // notched only: one drawing per fraction, each named after its depth
	Report         bool      // also render a markdown report per drawing
	Logger         Logger    // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Drawing is one saved file.
type Drawing struct {
	Path     string
	Specs    *extractor.DrawingSpecs
	Markdown string // empty unless Options.Report
}

// Result contains the drawings written by Run.
type Result struct {
	Drawings []Drawing
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run builds the requested drawings, saves them and summarizes each.
func Run(opts Options) (*Result, error) {
	if (opts.Pattern == "") == (opts.JobFile == "") {
		return nil, errors.New("exactly one of a pattern or a job file must be given")
	}

	docs, err := build(&opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, doc := range docs {
		out := outputPath(opts.Output, doc, len(docs) > 1, opts.fraction(i))

		opts.logInfo("Writing %s...", out)
		path, err := doc.Save(out)
		if err != nil {
			return nil, fmt.Errorf("save drawing: %w", err)
		}

		specs := extractor.Extract(doc)
		specs.FileName = filepath.Base(path)
		opts.logInfo("Saved %d entities on %d layers to %s", specs.Entities.Total(), len(specs.Layers), path)

		d := Drawing{Path: path, Specs: specs}
		if opts.Report {
			d.Markdown = formatter.ToMarkdown(specs)
		}
		result.Drawings = append(result.Drawings, d)
	}

	return result, nil
}

func build(opts *Options) ([]*dxf.Document, error) {
	if opts.JobFile != "" {
		opts.logInfo("Loading job %s...", opts.JobFile)
		j, err := job.Load(opts.JobFile)
		if err != nil {
			return nil, fmt.Errorf("load job: %w", err)
		}
		if opts.Units != 0 {
			if j.Units == "" {
				j.Units = opts.Units.String()
			} else if u, err := dxf.ParseUnits(j.Units); err == nil && u != opts.Units {
				opts.logWarn("Job declares %s units, ignoring requested %s", u, opts.Units)
			}
		}
		opts.logInfo("Building %d shape(s)...", len(j.Shapes))
		doc, err := j.Build()
		if err != nil {
			return nil, fmt.Errorf("build job: %w", err)
		}
		return []*dxf.Document{doc}, nil
	}

	switch opts.Pattern {
	case PatternSample:
		opts.logInfo("Drawing sample shapes...")
		doc, err := pattern.Sample()
		if err != nil {
			return nil, fmt.Errorf("sample drawing: %w", err)
		}
		return []*dxf.Document{doc}, nil

	case PatternNotched:
		if len(opts.DepthFractions) == 0 {
			opts.DepthFractions = []float64{opts.Notched.DepthFraction}
		}
		var docs []*dxf.Document
		for _, f := range opts.DepthFractions {
			params := opts.Notched
			params.DepthFraction = f
			if len(opts.DepthFractions) > 1 {
				// one file per depth, named after it
				params.Filename = ""
			}
			if opts.Units != 0 {
				params.Units = opts.Units
			}
			if params.DepthFraction != 0 {
				opts.logInfo("Drawing notched board at %d%% depth...", pattern.Percent(params.DepthFraction))
			} else {
				opts.logInfo("Drawing notched board at default depth...")
			}
			doc, err := pattern.NotchedBoard(params)
			if err != nil {
				return nil, fmt.Errorf("notched board: %w", err)
			}
			docs = append(docs, doc)
		}
		return docs, nil

	default:
		return nil, fmt.Errorf("unknown pattern %q (want %s or %s)", opts.Pattern, PatternNotched, PatternSample)
	}
}

func (o *Options) fraction(i int) float64 {
	if i < len(o.DepthFractions) {
		return o.DepthFractions[i]
	}
	return 0
}

// outputPath picks the file for a drawing. With several drawings sharing one explicit
// output name, each gets a _NNpercent suffix.
func outputPath(output string, doc *dxf.Document, multi bool, fraction float64) string {
	if output == "" {
		return doc.Filename()
	}
	if !multi {
		return output
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	if ext == "" {
		ext = ".dxf"
	}
	return fmt.Sprintf("%s_%dpercent%s", base, pattern.Percent(fraction), ext)
}

// ParseFractions parses a comma-separated list of depth fractions. Values may be written as
// fractions ("0.2") or percentages ("20%").
func ParseFractions(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	fractions := make([]float64, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		percent := strings.HasSuffix(trimmed, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid depth value %q: %w", trimmed, err)
		}
		if percent {
			v /= 100
		}
		if v <= 0 || v >= 1 {
			return nil, fmt.Errorf("depth must be between 0 and 1 (exclusive), got %g", v)
		}

		fractions = append(fractions, v)
	}

	return fractions, nil
}
