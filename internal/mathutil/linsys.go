// Package mathutil provides numerical cross-checks for the closed-form
// segment solutions.
package mathutil

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem indicates the turning-point system has no unique solution.
var ErrSingularSystem = errors.New("singular linear system")

// SolveTurningPointSystem numerically solves for the coefficients
// [a, b, c, d] of f(x) = a·x³ + b·x² + c·x + d subject to
//
//	f(x₀) = y₀
//	f(x₁) = y₁
//	f'(x₀) = 0
//	f'(x₁) = 0
//
// via LU decomposition. It reproduces the symbolic derivation of the
// closed form and is not used on the solving path.
func SolveTurningPointSystem(x0, y0, x1, y1 float64) ([CubicUnknowns]float64, error) {
	var coeffs [CubicUnknowns]float64

	a := turningPointMatrix(x0, x1)
	b := mat.NewVecDense(CubicUnknowns, []float64{y0, y1, 0, 0})

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		// gonum only reports a Condition above mat.ConditionTolerance.
		return coeffs, fmt.Errorf("%w: x0=%g x1=%g: %v", ErrSingularSystem, x0, x1, err)
	}

	for i := range coeffs {
		coeffs[i] = x.AtVec(i)
	}
	return coeffs, nil
}

// ConditionNumber returns the 2-norm condition number of the
// turning-point system for x0 and x1. It grows without bound as x1 → x0.
func ConditionNumber(x0, x1 float64) float64 {
	return mat.Cond(turningPointMatrix(x0, x1), conditionNorm)
}

// turningPointMatrix builds the rows [x³ x² x 1] for both positions
// followed by the derivative rows [3x² 2x 1 0].
func turningPointMatrix(x0, x1 float64) *mat.Dense {
	return mat.NewDense(CubicUnknowns, CubicUnknowns, []float64{
		x0 * x0 * x0, x0 * x0, x0, 1,
		x1 * x1 * x1, x1 * x1, x1, 1,
		cubicDerivCoeff * x0 * x0, quadDerivCoeff * x0, 1, 0,
		cubicDerivCoeff * x1 * x1, quadDerivCoeff * x1, 1, 0,
	})
}
