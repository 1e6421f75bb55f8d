package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hellenic-development/dxfkit"
	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/inspect"
	"github.com/hellenic-development/dxfkit/pkg/pattern"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = dxfkit.Version

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// drawFlags are shared by every command that writes a drawing.
type drawFlags struct {
	output     string
	units      string
	report     bool
	reportFile string
}

func (f *drawFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output DXF file (defaults to the drawing's own name)")
	cmd.Flags().StringVarP(&f.units, "units", "u", "", "Drawing units: mm, cm, m, in, ft, yd")
	cmd.Flags().BoolVarP(&f.report, "report", "r", false, "Also write a markdown report next to each drawing")
	cmd.Flags().StringVar(&f.reportFile, "report-file", "", "Report path when a single drawing is written (implies --report)")
}

func (f *drawFlags) options(out io.Writer) (dxfkit.Options, error) {
	opts := dxfkit.Options{
		Output: f.output,
		Report: f.report || f.reportFile != "",
		Logger: &cliLogger{w: out},
	}
	if f.units != "" {
		u, err := dxf.ParseUnits(f.units)
		if err != nil {
			return opts, err
		}
		opts.Units = u
	}
	return opts, nil
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dxfkit",
		Short:         "Generate DXF drawings for CNC and laser cutting",
		Long:          "A tool to draw rectangles, circles and ready-made cutting patterns as AutoCAD R12 DXF files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(
		newNotchedCmd(out),
		newSampleCmd(out),
		newRenderCmd(out),
		newInspectCmd(out),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(out, "dxfkit version %s\n", version)
			},
		},
	)
	return rootCmd
}

func newNotchedCmd(out io.Writer) *cobra.Command {
	var (
		flags  drawFlags
		params = pattern.DefaultNotchedBoard()
		depths string
	)
	params.Filename = ""

	cmd := &cobra.Command{
		Use:   "notched",
		Short: "Draw a board with four edge notches and depth reference lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(out)
			if err != nil {
				return err
			}
			fractions, err := dxfkit.ParseFractions(depths)
			if err != nil {
				return err
			}
			opts.Pattern = dxfkit.PatternNotched
			opts.Notched = params
			opts.DepthFractions = fractions
			return draw(out, opts, flags.reportFile)
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64VarP(&params.Length, "length", "l", params.Length, "Board length (x)")
	cmd.Flags().Float64VarP(&params.Width, "width", "w", params.Width, "Board width (y)")
	cmd.Flags().Float64Var(&params.NotchWidth, "notch-width", params.NotchWidth, "Width of each notch")
	cmd.Flags().StringVarP(&depths, "depths", "d", "0.2", "Comma-separated notch depths as fractions or percentages (e.g. \"0.1,20%\")")
	return cmd
}

func newSampleCmd(out io.Writer) *cobra.Command {
	var flags drawFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw the sample rectangles and circles",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(out)
			if err != nil {
				return err
			}
			opts.Pattern = dxfkit.PatternSample
			return draw(out, opts, flags.reportFile)
		},
	}
	flags.register(cmd)
	return cmd
}

func newRenderCmd(out io.Writer) *cobra.Command {
	var flags drawFlags
	cmd := &cobra.Command{
		Use:   "render <job.yaml>",
		Short: "Draw the shapes described in a YAML job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(out)
			if err != nil {
				return err
			}
			opts.JobFile = args[0]
			return draw(out, opts, flags.reportFile)
		},
	}
	flags.register(cmd)
	return cmd
}

func newInspectCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.dxf>...",
		Short: "Summarize the entities of existing DXF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cyan := color.New(color.FgCyan)
			logger := &cliLogger{w: out}

			result := inspect.Files(args)
			for _, r := range result.Reports {
				cyan.Fprintf(out, "\n%s\n", r.Path)
				for _, name := range r.Types() {
					fmt.Fprintf(out, "  • %s: %d\n", name, r.Entities[name])
				}
				if r.Polylines > 0 {
					fmt.Fprintf(out, "  • Vertices: %d in %d polyline(s)\n", r.Vertices, r.Polylines)
				}
				if r.HasBounds {
					fmt.Fprintf(out, "  • Bounds: (%g, %g) to (%g, %g)\n", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
				}
			}
			for _, err := range result.Errors {
				logger.Errorf("%v", err)
			}
			if len(result.Reports) == 0 {
				return fmt.Errorf("none of the %d file(s) could be read", len(args))
			}
			return nil
		},
	}
}

func draw(out io.Writer, opts dxfkit.Options, reportFile string) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Fprintln(out, "\n📐 DXF Kit")
	cyan.Fprintln(out, "==========")

	if reportFile != "" && len(opts.DepthFractions) > 1 {
		return fmt.Errorf("--report-file needs a single drawing, got %d depths", len(opts.DepthFractions))
	}

	result, err := dxfkit.Run(opts)
	if err != nil {
		return err
	}

	cyan.Fprintln(out, "\n📊 Drawing Summary:")
	for _, d := range result.Drawings {
		specs := d.Specs
		fmt.Fprintf(out, "  • %s: %d entities (%d polylines, %d circles, %d lines, %d texts)\n",
			d.Path, specs.Entities.Total(),
			specs.Entities.Polylines, specs.Entities.Circles, specs.Entities.Lines, specs.Entities.Texts)
		if specs.Extents != nil {
			fmt.Fprintf(out, "    size %.2f × %.2f %s, cut length %.2f %s\n",
				specs.Extents.Width(), specs.Extents.Height(), specs.Units, specs.PathLength, specs.Units)
		}
		if cut := specs.CutLayers(); len(cut) > 0 {
			fmt.Fprintf(out, "    layers with geometry: %s\n", strings.Join(cut, ", "))
		}

		if !opts.Report {
			continue
		}
		path := reportFile
		if path == "" {
			path = strings.TrimSuffix(d.Path, ".dxf") + ".md"
		}
		green.Fprintf(out, "💾 Writing report to %s... ", path)
		if err := os.WriteFile(path, []byte(d.Markdown), 0644); err != nil {
			fmt.Fprintln(out, "✗")
			return err
		}
		green.Fprintln(out, "✓")
	}

	green.Fprintf(out, "\n✨ Wrote %d drawing(s)\n\n", len(result.Drawings))
	return nil
}

// cliLogger implements dxfkit.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
