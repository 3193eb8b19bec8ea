package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-parametric-segment/internal/sampler"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Sine holds the parameters of f(t) = Amplitude·sin(Frequency·(t − Phase)) + Offset.
type Sine struct {
	Amplitude float64
	Frequency float64 // angular, radians per unit t
	Phase     float64 // horizontal displacement
	Offset    float64 // vertical displacement
}

// SolveSine returns the sinusoid whose consecutive extrema are p0 and p1,
// half a period apart.
//
//	amplitude = −(y₁ − y₀) / 2
//	frequency = π / (t₁ − t₀)
//	phase     = t₀ − π / (2·frequency)
//	offset    = (y₁ + y₀) / 2
//
// The argument of sin is π/2 at t₀ and 3π/2 at t₁, so p0 always lands on
// the +1 crest of sin and p1 on the −1 trough. The sign of the amplitude
// therefore follows from which point is higher: if p0 is the minimum the
// amplitude is negative, if p0 is the maximum it is positive. Both points are always hit;
// the curve is not reoriented to match any intended concavity.
func SolveSine(p0, p1 Point) (Sine, error) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return Sine{}, fmt.Errorf("%w: control points %v, %v", sampler.ErrNonFiniteResult, p0, p1)
	}

	t0, y0 := p0.X, p0.Y
	t1, y1 := p1.X, p1.Y

	if t0 == t1 {
		return Sine{}, fmt.Errorf("%w: sine needs t0 != t1, both are %g", ErrDegenerateInput, t0)
	}

	w := math.Pi / (t1 - t0)
	s := Sine{
		Amplitude: -(y1 - y0) / halfDivisor,
		Frequency: w,
		Phase:     t0 - math.Pi/(halfDivisor*w),
		Offset:    (y1 + y0) / halfDivisor,
	}

	if !s.IsFinite() {
		return Sine{}, fmt.Errorf("%w: sine parameters %+v", sampler.ErrNonFiniteResult, s)
	}

	return s, nil
}

// Eval evaluates the sinusoid at t.
func (s Sine) Eval(t float64) float64 {
	return s.Amplitude*math.Sin(s.Frequency*(t-s.Phase)) + s.Offset
}

// Derivative evaluates f'(t) = Amplitude·Frequency·cos(Frequency·(t − Phase)).
func (s Sine) Derivative(t float64) float64 {
	return s.Amplitude * s.Frequency * math.Cos(s.Frequency*(t-s.Phase))
}

// EvalInto evaluates the sinusoid at every ts[i] into dst[i].
// Scaling and offset run over the whole slice.
func (s Sine) EvalInto(dst, ts []float64) {
	for i, t := range ts {
		dst[i] = math.Sin(s.Frequency * (t - s.Phase))
	}
	f64.Scale(dst, dst, s.Amplitude)
	floats.AddConst(s.Offset, dst)
}

// Period returns the length of one full cycle, 2π/|Frequency|.
func (s Sine) Period() float64 {
	return 2 * math.Pi / math.Abs(s.Frequency)
}

// IsFinite reports whether all parameters are finite.
func (s Sine) IsFinite() bool {
	for _, v := range [...]float64{s.Amplitude, s.Frequency, s.Phase, s.Offset} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Sine) String() string {
	return fmt.Sprintf("f(t) = %g·sin(%g·(t − %g)) + %g", s.Amplitude, s.Frequency, s.Phase, s.Offset)
}

// SampleSine solves the sinusoid through p0 and p1 and samples it at n
// points over the fixed domain [0, 2π], regardless of t0 and t1.
func SampleSine(p0, p1 Point, n int) (Sine, sampler.Curve, error) {
	s, err := SolveSine(p0, p1)
	if err != nil {
		return Sine{}, sampler.Curve{}, err
	}

	curve, err := sampler.Sample(s, SineDomainLeft, SineDomainRight, n)
	if err != nil {
		return Sine{}, sampler.Curve{}, err
	}

	return s, curve, nil
}
