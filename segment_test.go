package segment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-parametric-segment/internal/testutil"
)

func TestSolveCubicSegment_Example(t *testing.T) {
	curve, err := SolveCubicSegment(Pt(0.2, 0.2), Pt(0.8, 0.8))
	require.NoError(t, err)

	require.Equal(t, DefaultPointCount, curve.Len())
	assert.Equal(t, 0.0, curve.Domain[0])
	assert.Equal(t, 1.0, curve.Domain[DefaultPointCount-1])
	testutil.AssertUniformSpacing(t, curve.Domain, testutil.SpacingTolerance)

	// f(0) = d and f(1) = a + b + c + d.
	assert.InDelta(t, 4.0/9, curve.Range[0], 1e-12)
	assert.InDelta(t, -50.0/9+25.0/3-8.0/3+4.0/9, curve.Range[DefaultPointCount-1], 1e-12)
}

func TestSolveSineSegment_Example(t *testing.T) {
	curve, err := SolveSineSegment(Pt(1, -0.25), Pt(3, 0.75))
	require.NoError(t, err)

	require.Equal(t, DefaultPointCount, curve.Len())
	assert.Equal(t, 0.0, curve.Domain[0])
	assert.Equal(t, 2*math.Pi, curve.Domain[DefaultPointCount-1])

	// f(0) = -0.5·sin(0) + 0.25.
	assert.InDelta(t, 0.25, curve.Range[0], 1e-12)

	stats := curve.Stats()
	assert.GreaterOrEqual(t, stats.Min, -0.25-1e-12)
	assert.LessOrEqual(t, stats.Max, 0.75+1e-12)
}

func TestSolveSegment_Errors(t *testing.T) {
	_, err := SolveCubicSegment(Pt(0.5, 0.1), Pt(0.5, 0.9))
	require.ErrorIs(t, err, ErrDegenerateInput)

	_, err = SolveSineSegment(Pt(2, 0), Pt(2, 1))
	require.ErrorIs(t, err, ErrDegenerateInput)

	_, err = SolveCubicSegment(Pt(0, 0), Pt(1e-100, 1e10))
	require.ErrorIs(t, err, ErrNonFiniteResult)

	_, err = SolveSineSegment(Pt(math.Inf(1), 0), Pt(1, 1))
	require.ErrorIs(t, err, ErrNonFiniteResult)
}

func TestSolveCubicAndSine(t *testing.T) {
	c, err := SolveCubic(Pt(0.2, 0.2), Pt(0.8, 0.8))
	require.NoError(t, err)
	assert.InDelta(t, -50.0/9, c.A, 1e-12)
	assert.InDelta(t, 25.0/3, c.B, 1e-12)
	assert.InDelta(t, -8.0/3, c.C, 1e-12)
	assert.InDelta(t, 4.0/9, c.D, 1e-12)

	s, err := SolveSine(Pt(1, -0.25), Pt(3, 0.75))
	require.NoError(t, err)
	assert.InDelta(t, -0.5, s.Amplitude, 1e-15)
	assert.InDelta(t, math.Pi/2, s.Frequency, 1e-15)
	assert.InDelta(t, 0, s.Phase, 1e-15)
	assert.InDelta(t, 0.25, s.Offset, 1e-15)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"Default", Config{}, nil},
		{"Two points", Config{PointCount: 2}, nil},
		{"One point", Config{PointCount: 1}, ErrInvalidDomain},
		{"Negative", Config{PointCount: -5}, ErrInvalidDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(&Config{PointCount: 1})
	require.ErrorIs(t, err, ErrInvalidDomain)

	config := &Config{PointCount: 17}
	s, err := New(config)
	require.NoError(t, err)
	config.PointCount = 3
	assert.Equal(t, 17, s.PointCount())
	assert.Equal(t, 17, s.Config().PointCount)

	s, err = New(&Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPointCount, s.PointCount())
}

func TestSolver_CubicMatchesConvenience(t *testing.T) {
	s, err := New(&Config{})
	require.NoError(t, err)

	c, curve, err := s.Cubic(Pt(0.1, 0.9), Pt(0.7, 0.1))
	require.NoError(t, err)

	want, err := SolveCubicSegment(Pt(0.1, 0.9), Pt(0.7, 0.1))
	require.NoError(t, err)
	assert.Equal(t, want, curve)

	wantC, err := SolveCubic(Pt(0.1, 0.9), Pt(0.7, 0.1))
	require.NoError(t, err)
	assert.Equal(t, wantC, c)
}

func TestSolver_SpanControlPoints(t *testing.T) {
	s, err := New(&Config{PointCount: 101, SpanControlPoints: true})
	require.NoError(t, err)

	_, curve, err := s.Sine(Pt(1, -0.25), Pt(3, 0.75))
	require.NoError(t, err)
	require.Equal(t, 101, curve.Len())
	assert.Equal(t, 1.0, curve.Domain[0])
	assert.Equal(t, 3.0, curve.Domain[100])
	assert.InDelta(t, -0.25, curve.Range[0], 1e-12)
	assert.InDelta(t, 0.75, curve.Range[100], 1e-12)
	testutil.AssertMonotonic(t, curve.Range)

	_, curve, err = s.Cubic(Pt(0.8, 0.8), Pt(0.2, 0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.8, curve.Domain[0])
	assert.Equal(t, 0.2, curve.Domain[100])
	assert.InDelta(t, 0.8, curve.Range[0], 1e-12)
	assert.InDelta(t, 0.2, curve.Range[100], 1e-12)
}

func TestSolver_Solve(t *testing.T) {
	s, err := New(&Config{PointCount: 50})
	require.NoError(t, err)

	curve, err := s.Solve(KindSine, Pt(0.5, 1), Pt(1.5, -1))
	require.NoError(t, err)
	assert.Equal(t, 50, curve.Len())
	testutil.AssertAllInRange(t, curve.Range, -1-1e-12, 1+1e-12)

	_, err = s.Solve(Kind(42), Pt(0, 0), Pt(1, 1))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = s.Solve(KindCubic, Pt(1, 0), Pt(1, 1))
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestSolver_SolvePathErrors(t *testing.T) {
	s, err := New(&Config{EnableParallel: true})
	require.NoError(t, err)

	_, err = s.SolvePath(KindCubic, []Point{Pt(0, 0)})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = s.SolvePath(Kind(-1), wavePath(4))
	require.ErrorIs(t, err, ErrInvalidConfig)

	curves, err := s.SolvePath(KindSine, []Point{Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(2, 1)})
	require.ErrorIs(t, err, ErrDegenerateInput)
	assert.Contains(t, err.Error(), "segment 1")
	assert.Nil(t, curves)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Sine")
	require.NoError(t, err)
	assert.Equal(t, KindSine, k)

	_, err = ParseKind("spline")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultDomainAndLimits(t *testing.T) {
	left, right, err := DefaultDomain(KindCubic)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 1}, [2]float64{left, right})

	left, right, err = DefaultDomain(KindSine)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 2 * math.Pi}, [2]float64{left, right})

	lim, err := DisplayLimits(KindSine)
	require.NoError(t, err)
	assert.Equal(t, Limits{XMin: 0, XMax: 2 * math.Pi, YMin: -1, YMax: 1}, lim)

	_, _, err = DefaultDomain(Kind(3))
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = DisplayLimits(Kind(3))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSample(t *testing.T) {
	curve, err := Sample(math.Sqrt, 0, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, curve.Domain)
	assert.InDelta(t, math.Sqrt2, curve.Range[2], 1e-15)

	_, err = Sample(nil, 0, 1, 10)
	require.ErrorIs(t, err, ErrInvalidDomain)

	_, err = Sample(math.Log, -1, 1, 3)
	require.ErrorIs(t, err, ErrNonFiniteResult)
}

func TestSolve_Idempotent(t *testing.T) {
	a, err := SolveSineSegment(Pt(0.3, 0.1), Pt(2.2, 0.6))
	require.NoError(t, err)
	b, err := SolveSineSegment(Pt(0.3, 0.1), Pt(2.2, 0.6))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
