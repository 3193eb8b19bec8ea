// Package engine derives closed-form segment parameters from two control
// points and samples the resulting functions.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-parametric-segment/internal/sampler"
)

// ErrDegenerateInput indicates the control points coincide in the
// coordinate the closed form divides by.
var ErrDegenerateInput = errors.New("degenerate control points")

// Cubic holds the coefficients of f(x) = A·x³ + B·x² + C·x + D.
type Cubic struct {
	A float64
	B float64
	C float64
	D float64
}

// SolveCubic returns the cubic that passes through p0 and p1 with zero
// gradient at both, i.e. both points are turning points.
//
// The coefficients solve
//
//	f(x₀) = y₀,  f(x₁) = y₁,  f'(x₀) = 0,  f'(x₁) = 0
//
// With h = x₁ − x₀ and Δy = y₁ − y₀ the solution is
//
//	a = −2·Δy / h³
//	b = 3·(x₀ + x₁)·Δy / h³
//	c = −6·x₀·x₁·Δy / h³
//	d = y₀ + Δy·x₀²·(3·x₁ − x₀) / h³
//
// When y₀ == y₁ the result is exactly the constant f(x) = y₀.
func SolveCubic(p0, p1 Point) (Cubic, error) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return Cubic{}, fmt.Errorf("%w: control points %v, %v", sampler.ErrNonFiniteResult, p0, p1)
	}

	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	if x0 == x1 {
		return Cubic{}, fmt.Errorf("%w: cubic needs x0 != x1, both are %g", ErrDegenerateInput, x0)
	}

	// Factored in h = x1 − x0 and Δy = y1 − y0; the expanded numerators
	// cancel badly when x0 and x1 are close.
	h := x1 - x0
	h3 := h * h * h
	if h3 == 0 {
		return Cubic{}, fmt.Errorf("%w: separation %g underflows the denominator", ErrDegenerateInput, h)
	}

	dy := y1 - y0
	c := Cubic{
		A: -cubicTwo * dy / h3,
		B: cubicThree * (x0 + x1) * dy / h3,
		C: -cubicSix * x0 * x1 * dy / h3,
		D: y0 + dy*x0*x0*(cubicThree*x1-x0)/h3,
	}

	if !c.IsFinite() {
		return Cubic{}, fmt.Errorf("%w: cubic coefficients %v", sampler.ErrNonFiniteResult, c)
	}

	return c, nil
}

// Eval evaluates the polynomial at x.
// Uses the formula: y = ((a*x + b)*x + c)*x + d
func (c Cubic) Eval(x float64) float64 {
	return ((c.A*x+c.B)*x+c.C)*x + c.D
}

// Derivative evaluates f'(x) = 3·A·x² + 2·B·x + C.
func (c Cubic) Derivative(x float64) float64 {
	return (cubicThree*c.A*x+cubicTwo*c.B)*x + c.C
}

// EvalInto evaluates the polynomial at every xs[i] into dst[i].
func (c Cubic) EvalInto(dst, xs []float64) {
	for i, x := range xs {
		dst[i] = ((c.A*x+c.B)*x+c.C)*x + c.D
	}
}

// IsFinite reports whether all coefficients are finite.
func (c Cubic) IsFinite() bool {
	for _, v := range [...]float64{c.A, c.B, c.C, c.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c Cubic) String() string {
	return fmt.Sprintf("f(x) = %g·x³ + %g·x² + %g·x + %g", c.A, c.B, c.C, c.D)
}

// SampleCubic solves the cubic through p0 and p1 and samples it at n points
// over the fixed domain [0, 1]. The domain does not follow the control
// points; callers place x0 and x1 relative to it.
func SampleCubic(p0, p1 Point, n int) (Cubic, sampler.Curve, error) {
	c, err := SolveCubic(p0, p1)
	if err != nil {
		return Cubic{}, sampler.Curve{}, err
	}

	curve, err := sampler.Sample(c, CubicDomainLeft, CubicDomainRight, n)
	if err != nil {
		return Cubic{}, sampler.Curve{}, err
	}

	return c, curve, nil
}
