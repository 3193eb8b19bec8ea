package main

// Default command-line flag values
const (
	defaultKind = "cubic"
)

// Example control points, one pair per segment kind
const (
	cubicExampleX0 = 0.2
	cubicExampleY0 = 0.2
	cubicExampleX1 = 0.8
	cubicExampleY1 = 0.8

	sineExampleT0 = 1.0
	sineExampleY0 = -0.25
	sineExampleT1 = 3.0
	sineExampleY1 = 0.75
)

// Point parsing
const (
	pointFields    = 2
	pointSeparator = ","
)

// Output file names written by -demo into -out
const (
	demoCubicBase = "cubic"
	demoSineBase  = "sine"
)

// plotPadding is the fraction of the data span added on each side when a
// plot must be widened beyond the default limits.
const plotPadding = 0.05
