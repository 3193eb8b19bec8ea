package segment

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-parametric-segment/internal/engine"
	"github.com/tphakala/go-parametric-segment/internal/pipeline"
	"github.com/tphakala/go-parametric-segment/internal/sampler"
)

// Point is a control point. For sine segments X is the time coordinate t.
type Point = engine.Point

// CubicCoefficients holds a, b, c, d of f(x) = a·x³ + b·x² + c·x + d.
type CubicCoefficients = engine.Cubic

// SineParameters holds amplitude, frequency, phase and offset of
// f(t) = a·sin(w·(t − p)) + c.
type SineParameters = engine.Sine

// SampledCurve is a pair of index-aligned domain and range sequences.
type SampledCurve = sampler.Curve

// CurveStats summarises the range of a SampledCurve.
type CurveStats = sampler.Stats

// Kind selects the segment family.
type Kind = engine.Kind

// Limits is a rectangular plot window.
type Limits = engine.Limits

const (
	// KindCubic selects the cubic polynomial with turning points at p0 and p1.
	KindCubic = engine.KindCubic

	// KindSine selects the sinusoid with extrema at p0 and p1.
	KindSine = engine.KindSine
)

// Errors returned by the solvers. Use errors.Is to test for them.
var (
	// ErrDegenerateInput indicates control points that share the coordinate
	// a closed form divides by (x0 == x1 or t0 == t1).
	ErrDegenerateInput = engine.ErrDegenerateInput

	// ErrInvalidDomain indicates a sample count below two or an empty or
	// non-finite sampling domain.
	ErrInvalidDomain = sampler.ErrInvalidDomain

	// ErrNonFiniteResult indicates a coefficient or sample overflowed or
	// became NaN.
	ErrNonFiniteResult = sampler.ErrNonFiniteResult

	// ErrInvalidConfig indicates an invalid solver configuration, an unknown
	// kind or a path with too few points.
	ErrInvalidConfig = errors.New("invalid segment configuration")
)

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return engine.Pt(x, y)
}

// ParseKind parses "cubic" or "sine" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k, err := engine.ParseKind(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return k, nil
}

// Config holds solver configuration.
type Config struct {
	// PointCount is the number of samples per segment.
	// Zero selects DefaultPointCount.
	PointCount int

	// EnableParallel solves the segments of a path concurrently.
	// Results are identical to sequential solving.
	EnableParallel bool

	// SpanControlPoints samples each segment over [x0, x1] instead of the
	// fixed domain of its kind ([0, 1] for cubics, [0, 2π] for sines).
	SpanControlPoints bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PointCount != 0 && c.PointCount < minPointCount {
		return fmt.Errorf("%w: point count %d, need at least %d", ErrInvalidDomain, c.PointCount, minPointCount)
	}
	return nil
}

func (c *Config) pointCount() int {
	if c.PointCount == 0 {
		return DefaultPointCount
	}
	return c.PointCount
}

// Solver fits and samples segments with a fixed configuration.
// A Solver is immutable and safe for concurrent use.
type Solver struct {
	config Config
}

// New creates a solver with the specified configuration.
// The configuration is copied; later changes to config have no effect.
func New(config *Config) (*Solver, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Solver{config: *config}, nil
}

// Config returns a copy of the solver configuration.
func (s *Solver) Config() Config {
	return s.config
}

// PointCount returns the number of samples each segment produces.
func (s *Solver) PointCount() int {
	return s.config.pointCount()
}

// Cubic fits the cubic with turning points p0 and p1 and samples it.
func (s *Solver) Cubic(p0, p1 Point) (CubicCoefficients, SampledCurve, error) {
	c, err := engine.SolveCubic(p0, p1)
	if err != nil {
		return CubicCoefficients{}, SampledCurve{}, err
	}

	curve, err := s.sample(KindCubic, c, p0, p1)
	if err != nil {
		return CubicCoefficients{}, SampledCurve{}, err
	}

	return c, curve, nil
}

// Sine fits the sinusoid with extrema p0 and p1 and samples it.
func (s *Solver) Sine(p0, p1 Point) (SineParameters, SampledCurve, error) {
	sn, err := engine.SolveSine(p0, p1)
	if err != nil {
		return SineParameters{}, SampledCurve{}, err
	}

	curve, err := s.sample(KindSine, sn, p0, p1)
	if err != nil {
		return SineParameters{}, SampledCurve{}, err
	}

	return sn, curve, nil
}

// Solve fits a segment of the given kind through p0 and p1 and samples it.
func (s *Solver) Solve(kind Kind, p0, p1 Point) (SampledCurve, error) {
	f, err := engine.Solve(kind, p0, p1)
	if err != nil {
		return SampledCurve{}, wrapKindError(err)
	}
	return s.sample(kind, f, p0, p1)
}

// SolvePath fits one segment between each pair of consecutive points and
// returns the sampled curves in path order. A path of k points yields k−1
// segments. If any segment fails, no curves are returned.
func (s *Solver) SolvePath(kind Kind, points []Point) ([]SampledCurve, error) {
	p, err := pipeline.Build(kind, points, s.config.EnableParallel)
	if err != nil {
		if errors.Is(err, pipeline.ErrTooFewPoints) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return nil, wrapKindError(err)
	}

	return p.Run(func(spec pipeline.SegmentSpec) (SampledCurve, error) {
		return s.Solve(spec.Kind, spec.P0, spec.P1)
	})
}

// sample evaluates f over the domain selected by the configuration.
func (s *Solver) sample(kind Kind, f sampler.Evaluator, p0, p1 Point) (SampledCurve, error) {
	left, right := p0.X, p1.X
	if !s.config.SpanControlPoints {
		var err error
		if left, right, err = kind.Domain(); err != nil {
			return SampledCurve{}, wrapKindError(err)
		}
	}

	return sampler.Sample(f, left, right, s.config.pointCount())
}

// DefaultDomain returns the fixed sampling domain of kind:
// [0, 1] for cubics and [0, 2π] for sines.
func DefaultDomain(kind Kind) (left, right float64, err error) {
	left, right, err = kind.Domain()
	if err != nil {
		return 0, 0, wrapKindError(err)
	}
	return left, right, nil
}

// DisplayLimits returns the default plot window of kind:
// [0, 1]×[0, 1] for cubics and [0, 2π]×[−1, 1] for sines.
func DisplayLimits(kind Kind) (Limits, error) {
	lim, err := kind.DisplayLimits()
	if err != nil {
		return Limits{}, wrapKindError(err)
	}
	return lim, nil
}

func wrapKindError(err error) error {
	if errors.Is(err, engine.ErrUnknownKind) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return err
}
