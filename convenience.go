package segment

import (
	"github.com/tphakala/go-parametric-segment/internal/engine"
	"github.com/tphakala/go-parametric-segment/internal/sampler"
)

// SolveCubicSegment fits the cubic with turning points p0 and p1 and
// samples it at DefaultPointCount points over [0, 1].
//
// Returns ErrDegenerateInput when p0.X == p1.X and ErrNonFiniteResult when
// a coefficient overflows.
func SolveCubicSegment(p0, p1 Point) (SampledCurve, error) {
	_, curve, err := engine.SampleCubic(p0, p1, DefaultPointCount)
	return curve, err
}

// SolveSineSegment fits the sinusoid with extrema p0 and p1 and samples it
// at DefaultPointCount points over [0, 2π].
//
// Returns ErrDegenerateInput when p0.X == p1.X and ErrNonFiniteResult when
// a parameter overflows.
func SolveSineSegment(p0, p1 Point) (SampledCurve, error) {
	_, curve, err := engine.SampleSine(p0, p1, DefaultPointCount)
	return curve, err
}

// SolveCubic returns the cubic coefficients without sampling.
func SolveCubic(p0, p1 Point) (CubicCoefficients, error) {
	return engine.SolveCubic(p0, p1)
}

// SolveSine returns the sine parameters without sampling.
func SolveSine(p0, p1 Point) (SineParameters, error) {
	return engine.SolveSine(p0, p1)
}

// Sample evaluates f at n points linearly spaced over [left, right], both
// endpoints included.
func Sample(f func(x float64) float64, left, right float64, n int) (SampledCurve, error) {
	if f == nil {
		return sampler.Sample(nil, left, right, n)
	}
	return sampler.Sample(sampler.Func(f), left, right, n)
}
