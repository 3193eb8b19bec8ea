// Command verify-segment cross-checks the closed-form segment solutions
// against independent numerical references over a grid of control points.
//
// Cubic coefficients are compared with an LU solve of the turning-point
// system. Sine parameters are checked by evaluating the fitted curve and
// its derivative at both extrema, and the sampled curve's dominant FFT
// frequency is compared with the fitted frequency.
//
// The command exits non-zero when any check exceeds its tolerance.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	segment "github.com/tphakala/go-parametric-segment"
	"github.com/tphakala/go-parametric-segment/internal/mathutil"
)

const (
	// Grid of control point coordinates
	gridStart = 0.05
	gridStep  = 0.15
	gridSteps = 7

	defaultTolerance = 1e-8

	// spectrumBins is the allowed FFT frequency error in bins.
	spectrumBins = 1.0

	// Display limits
	maxFailuresToShow = 5
)

// sineSeparations are t1 − t0 offsets, all far below the sampling Nyquist limit.
var sineSeparations = []float64{0.25, 0.5, 0.75, 1.0, 1.5, -0.5, -1.0}

var errVerificationFailed = errors.New("verification failed")

// report counts checks and keeps the first few failures.
type report struct {
	checks   int
	failures []string
	worst    float64
}

func (r *report) check(ok bool, errVal float64, format string, args ...any) {
	r.checks++
	r.worst = max(r.worst, errVal)
	if !ok {
		r.failures = append(r.failures, fmt.Sprintf(format, args...))
	}
}

func (r *report) print(w io.Writer, name string) {
	fmt.Fprintf(w, "  %s: %d checks, %d failed, worst error %.3e\n", name, r.checks, len(r.failures), r.worst)
	for i, f := range r.failures {
		if i == maxFailuresToShow {
			fmt.Fprintf(w, "    ... (%d more)\n", len(r.failures)-maxFailuresToShow)
			break
		}
		fmt.Fprintf(w, "    %s\n", f)
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	tol := flag.Float64("tol", defaultTolerance, "Relative tolerance for coefficient and interpolation checks")
	points := flag.Int("points", segment.DefaultPointCount, "Samples per curve for the spectrum check")
	flag.Parse()

	solver, err := segment.New(&segment.Config{PointCount: *points})
	if err != nil {
		return fmt.Errorf("failed to create solver: %w", err)
	}

	grid := defaultGrid()

	fmt.Println("=== Verifying Cubic Segments ===")
	cubic, maxCond := verifyCubic(grid, *tol)
	cubic.print(os.Stdout, "LU reference")
	fmt.Printf("  Worst condition number: %.3e\n", maxCond)

	fmt.Println("\n=== Verifying Sine Segments ===")
	extrema, spectrum, err := verifySine(solver, grid, *tol)
	if err != nil {
		return err
	}
	extrema.print(os.Stdout, "Extrema")
	spectrum.print(os.Stdout, "Spectrum")

	failed := len(cubic.failures) + len(extrema.failures) + len(spectrum.failures)
	if failed > 0 {
		return fmt.Errorf("%w: %d checks out of tolerance", errVerificationFailed, failed)
	}

	fmt.Println("\nAll checks passed")
	return nil
}

// defaultGrid returns the control point coordinates checked by run.
func defaultGrid() []float64 {
	grid := make([]float64, gridSteps)
	for i := range grid {
		grid[i] = gridStart + float64(i)*gridStep
	}
	return grid
}

// verifyCubic compares the closed form with the LU solution for every
// pair of distinct grid positions and a spread of heights.
func verifyCubic(grid []float64, tol float64) (*report, float64) {
	r := &report{}
	maxCond := 0.0

	for _, x0 := range grid {
		for _, x1 := range grid {
			if x0 == x1 {
				continue
			}
			maxCond = max(maxCond, mathutil.ConditionNumber(x0, x1))

			for _, y0 := range grid {
				y1 := 1 - y0
				p0, p1 := segment.Pt(x0, y0), segment.Pt(x1, y1)

				c, err := segment.SolveCubic(p0, p1)
				if err != nil {
					r.check(false, 0, "%v %v: %v", p0, p1, err)
					continue
				}
				ref, err := mathutil.SolveTurningPointSystem(x0, y0, x1, y1)
				if err != nil {
					r.check(false, 0, "%v %v: reference: %v", p0, p1, err)
					continue
				}

				got := [mathutil.CubicUnknowns]float64{c.A, c.B, c.C, c.D}
				scale := 1.0
				for _, v := range ref {
					scale = max(scale, math.Abs(v))
				}
				worst := 0.0
				for i := range got {
					worst = max(worst, math.Abs(got[i]-ref[i])/scale)
				}
				r.check(worst <= tol, worst, "%v %v: coefficient error %.3e", p0, p1, worst)
			}
		}
	}

	return r, maxCond
}

// verifySine checks interpolation, zero slope at both extrema and the
// sampled spectrum for each start time and separation.
func verifySine(solver *segment.Solver, grid []float64, tol float64) (*report, *report, error) {
	extrema, spectrum := &report{}, &report{}

	for _, g := range grid {
		for _, sep := range sineSeparations {
			t0 := g * math.Pi
			p0 := segment.Pt(t0, -0.25)
			p1 := segment.Pt(t0+sep, 0.75)

			s, curve, err := solver.Sine(p0, p1)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to solve sine through %v, %v: %w", p0, p1, err)
			}

			for _, p := range []segment.Point{p0, p1} {
				e := mathutil.RelativeError(p.Y, s.Eval(p.X))
				extrema.check(e <= tol, e, "%v %v: f(%g) off by %.3e", p0, p1, p.X, e)

				slope := math.Abs(s.Derivative(p.X)) / math.Abs(s.Amplitude*s.Frequency)
				extrema.check(slope <= tol, slope, "%v %v: f'(%g) = %.3e", p0, p1, p.X, slope)
			}

			n := curve.Len()
			span := curve.Domain[n-1] - curve.Domain[0]
			bin := 2 * math.Pi * float64(n-1) / (float64(n) * span)
			got := mathutil.DominantFrequency(curve.Range, span)
			diff := math.Abs(got - math.Abs(s.Frequency))
			spectrum.check(diff <= spectrumBins*bin, diff/bin, "%v %v: FFT frequency %.4g, fitted %.4g", p0, p1, got, s.Frequency)
		}
	}

	return extrema, spectrum, nil
}
