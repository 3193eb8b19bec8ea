package mathutil

import "math"

// AllFinite reports whether every value is neither NaN nor infinite.
func AllFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RelativeError returns |got − want| / |want|, or the absolute error when
// want is zero.
func RelativeError(want, got float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}
