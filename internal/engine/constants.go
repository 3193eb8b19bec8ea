package engine

import "math"

// Sampling defaults shared by both segment families
const (
	// basePointCount is the base resolution of a sampled segment
	basePointCount = 9

	// upsampleFactor multiplies the base resolution
	upsampleFactor = 100

	// DefaultPointCount is the number of samples per segment (9 × 100)
	DefaultPointCount = basePointCount * upsampleFactor
)

// Cubic segment constants
const (
	// Fixed sampling domain of a cubic segment
	CubicDomainLeft  = 0.0
	CubicDomainRight = 1.0

	// Numerator factors of the closed-form solution
	cubicTwo   = 2.0
	cubicThree = 3.0
	cubicSix   = 6.0
)

// Sine segment constants
const (
	// Fixed sampling domain of a sine segment, one full turn
	SineDomainLeft  = 0.0
	SineDomainRight = 2 * math.Pi

	// Extrema sit half a period apart
	halfDivisor = 2.0
)
