package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	segment "github.com/tphakala/go-parametric-segment"
	"github.com/tphakala/go-parametric-segment/internal/export"
	"github.com/tphakala/go-parametric-segment/internal/plot"
)

// result holds a solved and sampled segment.
type result struct {
	kind    segment.Kind
	p0, p1  segment.Point
	formula string
	curve   segment.SampledCurve
}

// outputPaths lists the files to write; empty paths are skipped.
type outputPaths struct {
	csv string
	wav string
	png string
}

// wavFormat holds WAV export parameters.
type wavFormat struct {
	sampleRate int
	bitDepth   int
}

// parsePoint parses "x,y".
func parsePoint(s string) (segment.Point, error) {
	fields := strings.Split(s, pointSeparator)
	if len(fields) != pointFields {
		return segment.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return segment.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return segment.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}

	return segment.Pt(x, y), nil
}

// examplePoints returns the example control points of kind.
func examplePoints(kind segment.Kind) (p0, p1 segment.Point) {
	if kind == segment.KindSine {
		return segment.Pt(sineExampleT0, sineExampleY0), segment.Pt(sineExampleT1, sineExampleY1)
	}
	return segment.Pt(cubicExampleX0, cubicExampleY0), segment.Pt(cubicExampleX1, cubicExampleY1)
}

// controlPoints parses the -p0 and -p1 flags, falling back to the example
// points of kind for empty values.
func controlPoints(kind segment.Kind, p0Str, p1Str string) (p0, p1 segment.Point, err error) {
	p0, p1 = examplePoints(kind)

	if p0Str != "" {
		if p0, err = parsePoint(p0Str); err != nil {
			return p0, p1, fmt.Errorf("-p0: %w", err)
		}
	}
	if p1Str != "" {
		if p1, err = parsePoint(p1Str); err != nil {
			return p0, p1, fmt.Errorf("-p1: %w", err)
		}
	}

	return p0, p1, nil
}

// solve fits and samples one segment.
func solve(solver *segment.Solver, kind segment.Kind, p0, p1 segment.Point) (*result, error) {
	res := &result{kind: kind, p0: p0, p1: p1}

	switch kind {
	case segment.KindCubic:
		c, curve, err := solver.Cubic(p0, p1)
		if err != nil {
			return nil, fmt.Errorf("failed to solve cubic segment: %w", err)
		}
		res.formula, res.curve = c.String(), curve

	case segment.KindSine:
		s, curve, err := solver.Sine(p0, p1)
		if err != nil {
			return nil, fmt.Errorf("failed to solve sine segment: %w", err)
		}
		res.formula = fmt.Sprintf("%s  (period %g)", s, s.Period())
		res.curve = curve

	default:
		return nil, fmt.Errorf("unsupported kind %v", kind)
	}

	return res, nil
}

// printSummary writes the fitted formula and curve statistics.
func printSummary(w io.Writer, r *result) {
	stats := r.curve.Stats()
	n := r.curve.Len()

	fmt.Fprintf(w, "Parametric %s segment\n", r.kind)
	fmt.Fprintf(w, "  p0: %v\n", r.p0)
	fmt.Fprintf(w, "  p1: %v\n", r.p1)
	fmt.Fprintf(w, "  %s\n", r.formula)
	fmt.Fprintf(w, "  Samples: %d over [%g, %g]\n", n, r.curve.Domain[0], r.curve.Domain[n-1])
	fmt.Fprintf(w, "  Range: min %.6g, max %.6g, mean %.6g\n", stats.Min, stats.Max, stats.Mean)
}

// writeOutputs writes every requested output file.
func writeOutputs(r *result, paths outputPaths, wav wavFormat, verbose bool) error {
	if paths.csv != "" {
		if err := writeCSVFile(paths.csv, r.curve); err != nil {
			return err
		}
		if verbose {
			log.Printf("Wrote %s", paths.csv)
		}
	}

	if paths.wav != "" {
		if err := writeWAVFile(paths.wav, r.curve, wav); err != nil {
			return err
		}
		if verbose {
			log.Printf("Wrote %s (%d Hz, %d-bit)", paths.wav, wav.sampleRate, wav.bitDepth)
		}
	}

	if paths.png != "" {
		if err := writePNGFile(paths.png, r); err != nil {
			return err
		}
		if verbose {
			log.Printf("Wrote %s", paths.png)
		}
	}

	return nil
}

func writeCSVFile(path string, curve segment.SampledCurve) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := export.WriteCSV(f, curve); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func writeWAVFile(path string, curve segment.SampledCurve, wav wavFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := export.WriteWAV(f, curve, wav.sampleRate, wav.bitDepth); err != nil {
		return fmt.Errorf("failed to write WAV: %w", err)
	}
	return nil
}

func writePNGFile(path string, r *result) error {
	opts, err := plot.DefaultOptions(r.kind)
	if err != nil {
		return err
	}
	opts.Limits = plotLimits(opts.Limits, r)

	return plot.SavePNG(path, r.curve, [2]segment.Point{r.p0, r.p1}, opts)
}

// plotLimits widens lim to show the whole curve and both control points.
// Limits that already contain them are returned unchanged.
func plotLimits(lim segment.Limits, r *result) segment.Limits {
	stats := r.curve.Stats()
	first, last := r.curve.Domain[0], r.curve.Domain[r.curve.Len()-1]

	fit := segment.Limits{
		XMin: min(lim.XMin, first, last, r.p0.X, r.p1.X),
		XMax: max(lim.XMax, first, last, r.p0.X, r.p1.X),
		YMin: min(lim.YMin, stats.Min, r.p0.Y, r.p1.Y),
		YMax: max(lim.YMax, stats.Max, r.p0.Y, r.p1.Y),
	}
	if fit == lim {
		return lim
	}

	padX := fit.Width() * plotPadding
	padY := fit.Height() * plotPadding
	return segment.Limits{
		XMin: fit.XMin - padX,
		XMax: fit.XMax + padX,
		YMin: fit.YMin - padY,
		YMax: fit.YMax + padY,
	}
}

// runDemo solves both example segments and, when outDir is set, writes
// their CSV, WAV and PNG files there.
func runDemo(solver *segment.Solver, outDir string, wav wavFormat, verbose bool) error {
	demos := []struct {
		kind segment.Kind
		base string
	}{
		{segment.KindCubic, demoCubicBase},
		{segment.KindSine, demoSineBase},
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for i, d := range demos {
		if i > 0 {
			fmt.Println()
		}

		p0, p1 := examplePoints(d.kind)
		res, err := solve(solver, d.kind, p0, p1)
		if err != nil {
			return err
		}
		printSummary(os.Stdout, res)

		if outDir == "" {
			continue
		}
		paths := outputPaths{
			csv: filepath.Join(outDir, d.base+".csv"),
			wav: filepath.Join(outDir, d.base+".wav"),
			png: filepath.Join(outDir, d.base+".png"),
		}
		if err := writeOutputs(res, paths, wav, verbose); err != nil {
			return err
		}
	}

	return nil
}
