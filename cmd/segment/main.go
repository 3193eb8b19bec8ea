// Command segment fits a parametric segment through two control points and
// writes the sampled curve as text, CSV, WAV or PNG.
//
// Usage:
//
//	segment -kind cubic -p0 0.2,0.2 -p1 0.8,0.8
//	segment -kind sine -p0 1,-0.25 -p1 3,0.75 -png sine.png
//	segment -kind cubic -p0 0.1,0.9 -p1 0.7,0.1 -points 200 -csv curve.csv
//	segment -demo -out plots/                      # Both example segments
//
// Omitted control points default to the example pair of the chosen kind.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	segment "github.com/tphakala/go-parametric-segment"
	"github.com/tphakala/go-parametric-segment/internal/export"
	"github.com/tphakala/simd/cpu"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	kindName := flag.String("kind", defaultKind, "Segment kind: cubic, sine")
	p0Str := flag.String("p0", "", "First control point as x,y (default: example point of -kind)")
	p1Str := flag.String("p1", "", "Second control point as x,y (default: example point of -kind)")
	points := flag.Int("points", segment.DefaultPointCount, "Number of samples")
	span := flag.Bool("span", false, "Sample over [x0, x1] instead of the fixed domain")
	csvPath := flag.String("csv", "", "Write domain,range samples to CSV file")
	wavPath := flag.String("wav", "", "Write the curve as a mono WAV waveform")
	pngPath := flag.String("png", "", "Write a plot of the curve to PNG file")
	rate := flag.Int("rate", export.DefaultSampleRate, "WAV sample rate in Hz")
	bits := flag.Int("bits", export.DefaultBitDepth, "WAV bit depth: 16, 24, 32")
	demo := flag.Bool("demo", false, "Solve and report both example segments")
	outDir := flag.String("out", "", "Directory for -demo CSV, WAV and PNG files")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.Default())
		log.Printf("SIMD: %s", cpu.Info())
	}

	config := &segment.Config{PointCount: *points, SpanControlPoints: *span}
	solver, err := segment.New(config)
	if err != nil {
		return fmt.Errorf("failed to create solver: %w", err)
	}

	wav := wavFormat{sampleRate: *rate, bitDepth: *bits}

	if *demo {
		return runDemo(solver, *outDir, wav, *verbose)
	}

	kind, err := segment.ParseKind(*kindName)
	if err != nil {
		return err
	}

	p0, p1, err := controlPoints(kind, *p0Str, *p1Str)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Kind: %s", kind)
		log.Printf("Control points: %v, %v", p0, p1)
		log.Printf("Points: %d", solver.PointCount())
		if *span {
			log.Printf("Domain: [x0, x1]")
		} else {
			left, right, _ := segment.DefaultDomain(kind)
			log.Printf("Domain: [%g, %g]", left, right)
		}
	}

	res, err := solve(solver, kind, p0, p1)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, res)

	return writeOutputs(res, outputPaths{csv: *csvPath, wav: *wavPath, png: *pngPath}, wav, *verbose)
}
