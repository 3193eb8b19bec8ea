// Package segment fits closed-form parametric curve segments through two
// control points and samples them into plottable sequences.
//
// Two segment families are provided. Both are solved analytically, with no
// iteration or numerical optimisation at runtime.
//
//   - Cubic: f(x) = a·x³ + b·x² + c·x + d, with p0 and p1 as its two
//     turning points (f passes through both and f' is zero at both).
//   - Sine: f(t) = a·sin(w·(t − p)) + c, with p0 and p1 as consecutive
//     extrema half a period apart.
//
// # Quick Start
//
// For the default 900-point sampling:
//
//	curve, err := segment.SolveCubicSegment(segment.Pt(0.2, 0.2), segment.Pt(0.8, 0.8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := range curve.Len() {
//	    x, y := curve.At(i)
//	    fmt.Println(x, y)
//	}
//
// To inspect the fitted parameters instead:
//
//	sine, err := segment.SolveSine(segment.Pt(1, -0.25), segment.Pt(3, 0.75))
//	// sine.Amplitude == -0.5, sine.Frequency == π/2, sine.Offset == 0.25
//
// # Sampling Domains
//
// Cubic segments are sampled over [0, 1] and sine segments over [0, 2π],
// regardless of where the control points lie. Points outside the domain
// still shape the curve but are not sampled. Set [Config.SpanControlPoints]
// to sample over [x0, x1] instead.
//
// # Sine Sign Convention
//
// The argument of sin is π/2 at t0 and 3π/2 at t1, so p0 always maps to
// the +1 crest of sin. When p0 is the lower point the amplitude is
// negative. Both points are always hit exactly.
//
// # Paths
//
// [Solver.SolvePath] splits a path of k control points into k−1 two-point
// segments. With [Config.EnableParallel] segments are solved concurrently;
// output is identical to sequential solving.
//
// # Errors
//
// All failures wrap one of [ErrDegenerateInput], [ErrInvalidDomain],
// [ErrNonFiniteResult] or [ErrInvalidConfig]. No partial curve is ever
// returned alongside an error.
//
// # Thread Safety
//
// All functions are pure. A [Solver] is immutable after [New] and may be
// shared between goroutines.
package segment
