package engine

import (
	"fmt"
	"math"
)

// Point is a control point in the plane. For sine segments X is the time
// coordinate t.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// IsFinite reports whether both coordinates are finite.
func (pt Point) IsFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) &&
		!math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}
