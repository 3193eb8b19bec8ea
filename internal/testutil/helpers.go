// Package testutil provides reusable test helper functions for segment tests.
//
// Every helper forwards its optional msgAndArgs to testify, so callers can
// label a failure the same way as with assert.* directly.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-9
	SpacingTolerance   = 1e-12
	FrequencyTolerance = 1e-2
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t testing.TB, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t testing.TB, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t,
				fmt.Sprintf("value out of range: s[%d]=%g is outside [%g, %g]", i, v, minVal, maxVal),
				msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t testing.TB, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t,
				fmt.Sprintf("not monotonic: s[%d]=%g < s[%d]=%g", i, s[i], i-1, s[i-1]),
				msgAndArgs...)
		}
	}
	return true
}

// AssertUniformSpacing verifies that consecutive differences all equal
// the first one within tolerance.
func AssertUniformSpacing(t testing.TB, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if len(s) < 2 {
		return assert.Fail(t, fmt.Sprintf("too few samples: len=%d", len(s)), msgAndArgs...)
	}
	step := s[1] - s[0]
	for i := 2; i < len(s); i++ {
		if d := s[i] - s[i-1]; math.Abs(d-step) > tolerance {
			return assert.Fail(t, fmt.Sprintf("step at %d is %g, want %g", i, d, step), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t testing.TB, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if !(relError <= tolerance) {
		return assert.Fail(t,
			fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
				relError, tolerance, expected, actual),
			msgAndArgs...)
	}
	return true
}

// AssertLengthEquals verifies that a slice has the expected length.
func AssertLengthEquals(t testing.TB, s []float64, expectedLen int, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, s, expectedLen, msgAndArgs...)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t testing.TB, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t,
			fmt.Sprintf("value out of range: %g is outside [%g, %g]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}
