// Package pipeline decomposes a path of control points into two-point
// segments and solves them sequentially or concurrently.
package pipeline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-parametric-segment/internal/engine"
	"github.com/tphakala/go-parametric-segment/internal/sampler"
)

// ErrTooFewPoints indicates a path with fewer than two control points.
var ErrTooFewPoints = errors.New("path needs at least two control points")

// SegmentSpec describes one segment of a path: the kind to fit and the
// consecutive control points p0 = points[Index], p1 = points[Index+1].
type SegmentSpec struct {
	Index int
	Kind  engine.Kind
	P0    engine.Point
	P1    engine.Point
}

func (s SegmentSpec) String() string {
	return fmt.Sprintf("segment %d (%s %v → %v)", s.Index, s.Kind, s.P0, s.P1)
}

// SolveFunc solves and samples a single segment.
type SolveFunc func(spec SegmentSpec) (sampler.Curve, error)

// Pipeline holds the segments of a path.
type Pipeline struct {
	segments []SegmentSpec
	parallel bool
}

// Build splits points into len(points)−1 segments of the given kind.
// Segments are solved concurrently by Run when parallel is true.
func Build(kind engine.Kind, points []engine.Point, parallel bool) (*Pipeline, error) {
	if len(points) < minPathPoints {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if _, _, err := kind.Domain(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		segments: make([]SegmentSpec, 0, len(points)-pointsPerSegment+1),
		parallel: parallel,
	}
	for i := range len(points) - 1 {
		p.segments = append(p.segments, SegmentSpec{
			Index: i,
			Kind:  kind,
			P0:    points[i],
			P1:    points[i+1],
		})
	}

	return p, nil
}

// Segments returns the segment specifications in path order.
func (p *Pipeline) Segments() []SegmentSpec {
	return p.segments
}

// Len returns the number of segments.
func (p *Pipeline) Len() int {
	return len(p.segments)
}

// Parallel reports whether Run solves segments concurrently.
func (p *Pipeline) Parallel() bool {
	return p.parallel
}

// Run solves every segment and returns the curves in path order.
// If any segment fails no curves are returned; the error of the
// lowest-indexed failing segment is reported.
func (p *Pipeline) Run(solve SolveFunc) ([]sampler.Curve, error) {
	if !p.parallel || len(p.segments) <= 1 {
		return p.runSequential(solve)
	}
	return p.runParallel(solve)
}

// runSequential solves segments one by one.
func (p *Pipeline) runSequential(solve SolveFunc) ([]sampler.Curve, error) {
	curves := make([]sampler.Curve, len(p.segments))
	for i, spec := range p.segments {
		curve, err := solve(spec)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", spec, err)
		}
		curves[i] = curve
	}
	return curves, nil
}

// runParallel solves each segment on its own goroutine.
func (p *Pipeline) runParallel(solve SolveFunc) ([]sampler.Curve, error) {
	curves := make([]sampler.Curve, len(p.segments))
	var wg sync.WaitGroup
	var solveErr error
	errIndex := len(p.segments)
	var errMu sync.Mutex

	for i := range p.segments {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			spec := p.segments[idx]
			curve, err := solve(spec)
			if err != nil {
				errMu.Lock()
				if idx < errIndex {
					errIndex = idx
					solveErr = fmt.Errorf("%v: %w", spec, err)
				}
				errMu.Unlock()
				return
			}
			curves[idx] = curve
		}(i)
	}
	wg.Wait()

	if solveErr != nil {
		return nil, solveErr
	}

	return curves, nil
}
