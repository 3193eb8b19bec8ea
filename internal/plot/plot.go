// Package plot renders a sampled segment with its two control points as a
// PNG chart.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/tphakala/go-parametric-segment/internal/engine"
	"github.com/tphakala/go-parametric-segment/internal/sampler"
	"golang.org/x/image/font/gofont/goregular"
)

// Errors returned by Render.
var (
	// ErrInvalidOptions indicates a canvas too small or empty plot limits.
	ErrInvalidOptions = errors.New("invalid plot options")

	// ErrEmptyCurve indicates a curve without samples.
	ErrEmptyCurve = errors.New("curve has no samples")
)

// Options controls the chart layout.
type Options struct {
	Width  int
	Height int

	Title         string
	FunctionLabel string // legend entry for the curve
	XLabel        string
	YLabel        string

	// Limits is the visible data window. Samples outside it are clipped.
	Limits engine.Limits
}

// DefaultOptions returns the chart layout for a segment kind.
func DefaultOptions(kind engine.Kind) (Options, error) {
	lim, err := kind.DisplayLimits()
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Limits: lim,
	}
	switch kind {
	case engine.KindCubic:
		opts.Title = "Parametric Cubic Polynomial"
		opts.FunctionLabel = "f(x) = a·x³ + b·x² + c·x + d"
		opts.XLabel, opts.YLabel = "x", "f(x)"
	case engine.KindSine:
		opts.Title = "Parametric Sine Function"
		opts.FunctionLabel = "f(t) = a·sin( w·(t - p) ) + c"
		opts.XLabel, opts.YLabel = "t", "f(t)"
	}
	return opts, nil
}

// Validate checks if the options can be rendered.
func (o *Options) Validate() error {
	if o.Width < minCanvasSize || o.Height < minCanvasSize {
		return fmt.Errorf("%w: canvas %dx%d is smaller than %dx%d",
			ErrInvalidOptions, o.Width, o.Height, minCanvasSize, minCanvasSize)
	}
	if !o.Limits.Valid() {
		return fmt.Errorf("%w: limits %+v", ErrInvalidOptions, o.Limits)
	}
	return nil
}

// loadFont parses the embedded Go Regular font once per process.
var loadFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// SavePNG renders the chart and writes it to path.
func SavePNG(path string, curve sampler.Curve, markers [2]engine.Point, opts Options) error {
	dc, err := Render(curve, markers, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// EncodePNG renders the chart and writes it to w as PNG.
func EncodePNG(w io.Writer, curve sampler.Curve, markers [2]engine.Point, opts Options) error {
	dc, err := Render(curve, markers, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode plot: %w", err)
	}
	return nil
}

// Render draws curve in black with p0 = markers[0] as a red dot and
// p1 = markers[1] as a blue dot, each labelled with its coordinates.
// The caller owns the returned context and must Close it.
func Render(curve sampler.Curve, markers [2]engine.Point, opts Options) (*gg.Context, error) {
	if curve.Len() == 0 {
		return nil, ErrEmptyCurve
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	source, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	c := &chart{
		dc:     gg.NewContext(opts.Width, opts.Height),
		opts:   opts,
		source: source,
		area:   plotArea(opts),
	}

	if err := c.draw(curve, markers); err != nil {
		_ = c.dc.Close()
		return nil, err
	}
	return c.dc, nil
}

type rect struct {
	x, y, w, h float64
}

// plotArea returns the canvas region inside the margins.
func plotArea(opts Options) rect {
	return rect{
		x: marginLeft,
		y: marginTop,
		w: float64(opts.Width) - marginLeft - marginRight,
		h: float64(opts.Height) - marginTop - marginBottom,
	}
}

// chart holds the drawing state of one Render call.
type chart struct {
	dc     *gg.Context
	opts   Options
	source *text.FontSource
	area   rect
}

// toPixel maps data coordinates to canvas coordinates. Canvas y grows
// downwards.
func (c *chart) toPixel(x, y float64) (px, py float64) {
	lim := c.opts.Limits
	px = c.area.x + (x-lim.XMin)/lim.Width()*c.area.w
	py = c.area.y + (lim.YMax-y)/lim.Height()*c.area.h
	return px, py
}

func (c *chart) draw(curve sampler.Curve, markers [2]engine.Point) error {
	c.dc.ClearWithColor(gg.White)

	steps := []func() error{
		c.drawGrid,
		c.drawZeroAxes,
		func() error { return c.drawCurve(curve) },
		func() error { return c.drawMarkers(markers) },
		c.drawMargins,
		c.drawTicks,
		c.drawLabels,
		c.drawLegend,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (c *chart) drawGrid() error {
	lim := c.opts.Limits
	c.dc.SetRGB(gridGray, gridGray, gridGray)
	c.dc.SetLineWidth(gridLineWidth)

	for _, x := range ticks(lim.XMin, lim.XMax) {
		px, _ := c.toPixel(x, 0)
		c.dc.DrawLine(px, c.area.y, px, c.area.y+c.area.h)
	}
	for _, y := range ticks(lim.YMin, lim.YMax) {
		_, py := c.toPixel(0, y)
		c.dc.DrawLine(c.area.x, py, c.area.x+c.area.w, py)
	}
	return c.stroke("grid")
}

// drawZeroAxes draws the lines x = 0 and y = 0 when they are visible.
func (c *chart) drawZeroAxes() error {
	lim := c.opts.Limits
	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(axisLineWidth)

	if lim.YMin <= 0 && lim.YMax >= 0 {
		_, py := c.toPixel(0, 0)
		c.dc.DrawLine(c.area.x, py, c.area.x+c.area.w, py)
	}
	if lim.XMin <= 0 && lim.XMax >= 0 {
		px, _ := c.toPixel(0, 0)
		c.dc.DrawLine(px, c.area.y, px, c.area.y+c.area.h)
	}
	return c.stroke("axes")
}

func (c *chart) drawCurve(curve sampler.Curve) error {
	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(curveLineWidth)

	for i := range curve.Len() {
		px, py := c.toPixel(curve.At(i))
		if i == 0 {
			c.dc.MoveTo(px, py)
			continue
		}
		c.dc.LineTo(px, py)
	}
	return c.stroke("curve")
}

func (c *chart) drawMarkers(markers [2]engine.Point) error {
	colors := [2][3]float64{{1, 0, 0}, {0, 0, 1}}
	for i, pt := range markers {
		px, py := c.toPixel(pt.X, pt.Y)
		c.dc.SetRGB(colors[i][0], colors[i][1], colors[i][2])
		c.dc.DrawCircle(px, py, markerRadius)
		if err := c.dc.Fill(); err != nil {
			return fmt.Errorf("failed to draw marker %d: %w", i, err)
		}
	}

	c.dc.SetFont(c.source.Face(labelFontSize))
	p0, p1 := markers[0], markers[1]

	c.dc.SetRGB(1, 0, 0)
	px, py := c.toPixel(p0.X, p0.Y+markerLabelOffset)
	c.dc.DrawString(markerLabel("v₀", p0), px, py)

	c.dc.SetRGB(0, 0, 1)
	px, py = c.toPixel(p1.X, p1.Y-markerLabelOffset)
	c.dc.DrawString(markerLabel("v₁", p1), px, py)

	return nil
}

// drawMargins paints over everything outside the plot area, clipping the
// curve and labels to the limits, then frames the area.
func (c *chart) drawMargins() error {
	w, h := float64(c.opts.Width), float64(c.opts.Height)
	c.dc.SetRGB(1, 1, 1)
	bottom, right := c.area.y+c.area.h, c.area.x+c.area.w
	c.dc.DrawRectangle(0, 0, w, c.area.y)
	c.dc.DrawRectangle(0, bottom, w, h-bottom)
	c.dc.DrawRectangle(0, c.area.y, c.area.x, c.area.h)
	c.dc.DrawRectangle(right, c.area.y, w-right, c.area.h)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("failed to draw margins: %w", err)
	}

	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(frameLineWidth)
	c.dc.DrawRectangle(c.area.x, c.area.y, c.area.w, c.area.h)
	return c.stroke("frame")
}

func (c *chart) drawTicks() error {
	lim := c.opts.Limits
	bottom := c.area.y + c.area.h

	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(frameLineWidth)
	c.dc.SetFont(c.source.Face(tickFontSize))

	for _, x := range ticks(lim.XMin, lim.XMax) {
		px, _ := c.toPixel(x, 0)
		c.dc.DrawLine(px, bottom, px, bottom+tickLength)
		c.dc.DrawStringAnchored(tickLabel(x), px, bottom+tickLength+tickLabelGap, 0.5, 1)
	}
	for _, y := range ticks(lim.YMin, lim.YMax) {
		_, py := c.toPixel(0, y)
		c.dc.DrawLine(c.area.x-tickLength, py, c.area.x, py)
		c.dc.DrawStringAnchored(tickLabel(y), c.area.x-tickLength-tickLabelGap, py, 1, 0.5)
	}
	return c.stroke("ticks")
}

func (c *chart) drawLabels() error {
	h := float64(c.opts.Height)
	c.dc.SetRGB(0, 0, 0)

	c.dc.SetFont(c.source.Face(titleFontSize))
	c.dc.DrawStringAnchored(c.opts.Title, c.area.x+c.area.w/2, marginTop/2, 0.5, 0.5)

	c.dc.SetFont(c.source.Face(labelFontSize))
	c.dc.DrawStringAnchored(c.opts.XLabel, c.area.x+c.area.w/2, h-marginBottom/4, 0.5, 0)
	c.dc.DrawStringAnchored(c.opts.YLabel, tickLabelGap, c.area.y+c.area.h/2, 0, 0.5)
	return nil
}

// drawLegend draws a boxed legend entry for the curve in the top right
// corner of the plot area.
func (c *chart) drawLegend() error {
	if c.opts.FunctionLabel == "" {
		return nil
	}

	c.dc.SetFont(c.source.Face(labelFontSize))
	tw, th := c.dc.MeasureString(c.opts.FunctionLabel)

	boxW := legendPadding*3 + legendLineSize + tw
	boxH := legendPadding*2 + th
	boxX := c.area.x + c.area.w - legendInset - boxW
	boxY := c.area.y + legendInset

	c.dc.SetRGB(1, 1, 1)
	c.dc.DrawRectangle(boxX, boxY, boxW, boxH)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("failed to draw legend: %w", err)
	}

	c.dc.SetRGB(gridGray, gridGray, gridGray)
	c.dc.SetLineWidth(frameLineWidth)
	c.dc.DrawRectangle(boxX, boxY, boxW, boxH)
	if err := c.stroke("legend"); err != nil {
		return err
	}

	midY := boxY + boxH/2
	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(curveLineWidth)
	c.dc.DrawLine(boxX+legendPadding, midY, boxX+legendPadding+legendLineSize, midY)
	if err := c.stroke("legend"); err != nil {
		return err
	}

	c.dc.DrawStringAnchored(c.opts.FunctionLabel, boxX+legendPadding*2+legendLineSize, midY, 0, 0.5)
	return nil
}

func (c *chart) stroke(what string) error {
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to draw %s: %w", what, err)
	}
	return nil
}

// markerLabel formats a control point label with three significant digits.
func markerLabel(name string, pt engine.Point) string {
	return fmt.Sprintf("%s(%.3g, %.3g)", name, pt.X, pt.Y)
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// ticks returns evenly spaced round values covering [lo, hi] with a step
// of 1, 2 or 5 times a power of ten.
func ticks(lo, hi float64) []float64 {
	span := hi - lo
	if !(span > 0) || math.IsInf(span, 0) {
		return nil
	}

	raw := span / targetTicks
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	switch r := raw / mag; {
	case r <= 1:
		step = mag
	case r <= 2:
		step = 2 * mag
	case r <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}

	start := math.Ceil(lo/step) * step
	eps := step * 1e-9
	var out []float64
	for i := 0; len(out) < maxTicks; i++ {
		v := start + float64(i)*step
		if v > hi+eps {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		out = append(out, v)
	}
	return out
}
