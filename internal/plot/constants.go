package plot

// Canvas defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// minCanvasSize is the smallest width or height that leaves a plot area
	minCanvasSize = 200
)

// Layout in pixels
const (
	marginLeft   = 70.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 60.0

	titleFontSize = 18.0
	labelFontSize = 13.0
	tickFontSize  = 11.0

	tickLength     = 5.0
	tickLabelGap   = 4.0
	legendInset    = 12.0
	legendLineSize = 24.0
	legendPadding  = 6.0
)

// Stroke widths and marker size in pixels
const (
	curveLineWidth = 1.5
	axisLineWidth  = 0.5
	gridLineWidth  = 0.5
	frameLineWidth = 1.0
	markerRadius   = 4.5
)

// Marker labels sit this far above p0 and below p1, in data units.
const markerLabelOffset = 0.1

// Tick selection
const (
	targetTicks = 6
	maxTicks    = 50
)

// Colours as RGB components in [0, 1]
const (
	gridGray = 0.85
)
