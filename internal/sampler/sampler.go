// Package sampler evaluates one-dimensional functions over a linearly
// spaced domain and returns the discretised curve.
package sampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by Sample.
var (
	// ErrInvalidDomain indicates a sample count or domain that cannot be spanned.
	ErrInvalidDomain = errors.New("invalid sampling domain")

	// ErrNonFiniteResult indicates a NaN or infinite value was produced.
	ErrNonFiniteResult = errors.New("non-finite result")
)

// Evaluator is a real function of one real variable.
type Evaluator interface {
	Eval(x float64) float64
}

// BatchEvaluator is implemented by evaluators that can fill a whole range
// slice at once. dst and xs always have equal length.
type BatchEvaluator interface {
	Evaluator
	EvalInto(dst, xs []float64)
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(x float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 {
	return f(x)
}

// Curve holds index-aligned domain and range samples: Range[i] = f(Domain[i]).
type Curve struct {
	Domain []float64
	Range  []float64
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.Domain)
}

// At returns the i-th sample.
func (c Curve) At(i int) (x, y float64) {
	return c.Domain[i], c.Range[i]
}

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	return Curve{
		Domain: append([]float64(nil), c.Domain...),
		Range:  append([]float64(nil), c.Range...),
	}
}

// Stats summarises the range of a curve.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats returns the minimum, maximum and mean of the range samples.
// An empty curve yields the zero Stats.
func (c Curve) Stats() Stats {
	if len(c.Range) == 0 {
		return Stats{}
	}
	return Stats{
		Min:  floats.Min(c.Range),
		Max:  floats.Max(c.Range),
		Mean: f64.Sum(c.Range) / float64(len(c.Range)),
	}
}

// Sample evaluates f at n points linearly spaced over [left, right],
// both endpoints included.
func Sample(f Evaluator, left, right float64, n int) (Curve, error) {
	if f == nil {
		return Curve{}, fmt.Errorf("%w: nil evaluator", ErrInvalidDomain)
	}
	if err := checkDomain(left, right, n); err != nil {
		return Curve{}, err
	}

	domain := Linspace(left, right, n)
	rng := make([]float64, n)

	if bf, ok := f.(BatchEvaluator); ok {
		bf.EvalInto(rng, domain)
	} else {
		for i, x := range domain {
			rng[i] = f.Eval(x)
		}
	}

	for i, y := range rng {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return Curve{}, fmt.Errorf("%w: f(%g) = %g at sample %d", ErrNonFiniteResult, domain[i], y, i)
		}
	}

	return Curve{Domain: domain, Range: rng}, nil
}

// Linspace returns n values evenly spaced over [left, right]. The last
// value is exactly right. n must be at least 2.
func Linspace(left, right float64, n int) []float64 {
	domain := floats.Span(make([]float64, n), left, right)
	// Span accumulates left + step*i, which can miss right by an ulp.
	domain[n-1] = right
	return domain
}

func checkDomain(left, right float64, n int) error {
	if n < minPointCount {
		return fmt.Errorf("%w: point count %d is less than %d", ErrInvalidDomain, n, minPointCount)
	}
	if math.IsNaN(left) || math.IsInf(left, 0) || math.IsNaN(right) || math.IsInf(right, 0) {
		return fmt.Errorf("%w: domain [%g, %g] is not finite", ErrInvalidDomain, left, right)
	}
	if left == right {
		return fmt.Errorf("%w: empty domain [%g, %g]", ErrInvalidDomain, left, right)
	}
	return nil
}
