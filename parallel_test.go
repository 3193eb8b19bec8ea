package segment

import (
	"math"
	"testing"
)

// wavePath returns n control points alternating between a trough and a crest.
func wavePath(n int) []Point {
	points := make([]Point, n)
	for i := range n {
		y := -0.5
		if i%2 == 1 {
			y = 0.5
		}
		points[i] = Pt(float64(i)*0.75, y)
	}
	return points
}

// TestSolvePathParallel tests that parallel solving produces correct results.
func TestSolvePathParallel(t *testing.T) {
	points := wavePath(8)

	for _, kind := range []Kind{KindCubic, KindSine} {
		t.Run(kind.String(), func(t *testing.T) {
			solverSeq, err := New(&Config{EnableParallel: false, SpanControlPoints: true})
			if err != nil {
				t.Fatalf("Failed to create sequential solver: %v", err)
			}
			solverPar, err := New(&Config{EnableParallel: true, SpanControlPoints: true})
			if err != nil {
				t.Fatalf("Failed to create parallel solver: %v", err)
			}

			outputSeq, err := solverSeq.SolvePath(kind, points)
			if err != nil {
				t.Fatalf("Sequential SolvePath failed: %v", err)
			}
			outputPar, err := solverPar.SolvePath(kind, points)
			if err != nil {
				t.Fatalf("Parallel SolvePath failed: %v", err)
			}

			if len(outputSeq) != len(outputPar) {
				t.Fatalf("Segment count mismatch: seq=%d, par=%d", len(outputSeq), len(outputPar))
			}
			if len(outputSeq) != len(points)-1 {
				t.Fatalf("Expected %d segments, got %d", len(points)-1, len(outputSeq))
			}

			for seg := range outputSeq {
				// Verify outputs are identical (bit-exact)
				for i := range outputSeq[seg].Range {
					if outputSeq[seg].Range[i] != outputPar[seg].Range[i] ||
						outputSeq[seg].Domain[i] != outputPar[seg].Domain[i] {
						t.Errorf("Segment %d sample %d mismatch: seq=%v, par=%v",
							seg, i, outputSeq[seg].Range[i], outputPar[seg].Range[i])
						break // Don't flood with errors
					}
				}
			}
		})
	}
}

// TestSolvePathContinuity verifies consecutive segments meet at the shared
// control point when sampled over their own span.
func TestSolvePathContinuity(t *testing.T) {
	points := wavePath(6)

	solver, err := New(&Config{EnableParallel: true, SpanControlPoints: true})
	if err != nil {
		t.Fatalf("Failed to create solver: %v", err)
	}

	for _, kind := range []Kind{KindCubic, KindSine} {
		curves, err := solver.SolvePath(kind, points)
		if err != nil {
			t.Fatalf("%s SolvePath failed: %v", kind, err)
		}

		for seg := 1; seg < len(curves); seg++ {
			prev := curves[seg-1]
			endX, endY := prev.At(prev.Len() - 1)
			startX, startY := curves[seg].At(0)

			if endX != startX {
				t.Errorf("%s segment %d: domain gap %v → %v", kind, seg, endX, startX)
			}
			if math.Abs(endY-startY) > 1e-9 {
				t.Errorf("%s segment %d: range jump %v → %v", kind, seg, endY, startY)
			}
			if math.Abs(startY-points[seg].Y) > 1e-9 {
				t.Errorf("%s segment %d: starts at %v, want control point %v", kind, seg, startY, points[seg].Y)
			}
		}
	}
}

// TestSolvePathSingleSegmentFallback verifies a two-point path works with
// parallel enabled.
func TestSolvePathSingleSegmentFallback(t *testing.T) {
	solver, err := New(&Config{EnableParallel: true})
	if err != nil {
		t.Fatalf("Failed to create solver: %v", err)
	}

	curves, err := solver.SolvePath(KindCubic, []Point{Pt(0.2, 0.2), Pt(0.8, 0.8)})
	if err != nil {
		t.Fatalf("SolvePath failed: %v", err)
	}
	if len(curves) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(curves))
	}

	want, err := SolveCubicSegment(Pt(0.2, 0.2), Pt(0.8, 0.8))
	if err != nil {
		t.Fatalf("SolveCubicSegment failed: %v", err)
	}
	for i := range want.Range {
		if want.Range[i] != curves[0].Range[i] {
			t.Fatalf("Sample %d mismatch: want=%v, got=%v", i, want.Range[i], curves[0].Range[i])
		}
	}
}
