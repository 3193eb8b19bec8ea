package segment

import (
	"strconv"
	"testing"
)

// BenchmarkSolvePathSequential benchmarks sequential path solving.
func BenchmarkSolvePathSequential(b *testing.B) {
	benchmarkSolvePath(b, 16, false)
}

// BenchmarkSolvePathParallel benchmarks parallel path solving.
func BenchmarkSolvePathParallel(b *testing.B) {
	benchmarkSolvePath(b, 16, true)
}

// BenchmarkSolvePathSegments benchmarks parallel solving with varying path lengths.
func BenchmarkSolvePathSegments(b *testing.B) {
	for _, segments := range []int{1, 2, 8, 32, 128} {
		b.Run(strconv.Itoa(segments), func(b *testing.B) {
			benchmarkSolvePath(b, segments, true)
		})
	}
}

func benchmarkSolvePath(b *testing.B, segments int, parallel bool) {
	b.Helper()

	solver, err := New(&Config{EnableParallel: parallel, SpanControlPoints: true})
	if err != nil {
		b.Fatalf("Failed to create solver: %v", err)
	}
	points := wavePath(segments + 1)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := solver.SolvePath(KindSine, points); err != nil {
			b.Fatalf("SolvePath failed: %v", err)
		}
	}
}
