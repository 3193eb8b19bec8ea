package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-parametric-segment/internal/sampler"
)

// ErrUnknownKind indicates a segment kind outside KindCubic and KindSine.
var ErrUnknownKind = errors.New("unknown segment kind")

// Kind selects the segment family.
type Kind int

const (
	// KindCubic is f(x) = a·x³ + b·x² + c·x + d with turning points at p0 and p1.
	KindCubic Kind = iota

	// KindSine is f(t) = a·sin(w·(t − p)) + c with extrema at p0 and p1.
	KindSine
)

func (k Kind) String() string {
	switch k {
	case KindCubic:
		return "cubic"
	case KindSine:
		return "sine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name as accepted on the command line.
// "sin" is accepted as an alias for "sine".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cubic":
		return KindCubic, nil
	case "sine", "sin":
		return KindSine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Limits is a rectangular viewing window.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax − XMin.
func (l Limits) Width() float64 { return l.XMax - l.XMin }

// Height returns YMax − YMin.
func (l Limits) Height() float64 { return l.YMax - l.YMin }

// Valid reports whether l spans a finite non-empty rectangle.
func (l Limits) Valid() bool {
	for _, v := range [...]float64{l.XMin, l.XMax, l.YMin, l.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return l.XMax > l.XMin && l.YMax > l.YMin
}

// Domain returns the fixed sampling domain of the kind.
func (k Kind) Domain() (left, right float64, err error) {
	switch k {
	case KindCubic:
		return CubicDomainLeft, CubicDomainRight, nil
	case KindSine:
		return SineDomainLeft, SineDomainRight, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// DisplayLimits returns the default plot window of the kind. The x range
// matches Domain; the y range is [0, 1] for cubics and [−1, 1] for sines.
func (k Kind) DisplayLimits() (Limits, error) {
	switch k {
	case KindCubic:
		return Limits{XMin: CubicDomainLeft, XMax: CubicDomainRight, YMin: 0, YMax: 1}, nil
	case KindSine:
		return Limits{XMin: SineDomainLeft, XMax: SineDomainRight, YMin: -1, YMax: 1}, nil
	default:
		return Limits{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// Solve fits a segment of the given kind through p0 and p1 and returns it
// as an evaluator.
func Solve(k Kind, p0, p1 Point) (sampler.BatchEvaluator, error) {
	switch k {
	case KindCubic:
		c, err := SolveCubic(p0, p1)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindSine:
		s, err := SolveSine(p0, p1)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}
