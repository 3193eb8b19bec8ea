package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"cubic", KindCubic, false},
		{"CUBIC", KindCubic, false},
		{" sine ", KindSine, false},
		{"sin", KindSine, false},
		{"quartic", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Kind {
	t.Helper()
	k, err := ParseKind(s)
	require.NoError(t, err)
	return k
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "cubic", KindCubic.String())
	assert.Equal(t, "sine", KindSine.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestKind_DomainAndLimits(t *testing.T) {
	left, right, err := KindCubic.Domain()
	require.NoError(t, err)
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 1.0, right)

	left, right, err = KindSine.Domain()
	require.NoError(t, err)
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 2*math.Pi, right)

	lim, err := KindCubic.DisplayLimits()
	require.NoError(t, err)
	assert.Equal(t, Limits{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, lim)
	assert.True(t, lim.Valid())

	lim, err = KindSine.DisplayLimits()
	require.NoError(t, err)
	assert.Equal(t, Limits{XMin: 0, XMax: 2 * math.Pi, YMin: -1, YMax: 1}, lim)
	assert.InDelta(t, 2.0, lim.Height(), 0)
	assert.InDelta(t, 2*math.Pi, lim.Width(), 0)

	_, _, err = Kind(-1).Domain()
	require.ErrorIs(t, err, ErrUnknownKind)
	_, err = Kind(9).DisplayLimits()
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestLimits_Valid(t *testing.T) {
	assert.False(t, Limits{}.Valid())
	assert.False(t, Limits{XMin: 1, XMax: 0, YMin: 0, YMax: 1}.Valid())
	assert.False(t, Limits{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 1}.Valid())
	assert.True(t, Limits{XMin: -1, XMax: 1, YMin: -1, YMax: 1}.Valid())
}

func TestSolve_Dispatch(t *testing.T) {
	p0, p1 := Pt(0.2, 0.2), Pt(0.8, 0.8)

	f, err := Solve(KindCubic, p0, p1)
	require.NoError(t, err)
	require.IsType(t, Cubic{}, f)
	assert.InDelta(t, 0.8, f.Eval(0.8), 1e-12)

	f, err = Solve(KindSine, Pt(1, -0.25), Pt(3, 0.75))
	require.NoError(t, err)
	require.IsType(t, Sine{}, f)
	assert.InDelta(t, 0.75, f.Eval(3), 1e-12)

	f, err = Solve(KindCubic, Pt(0.5, 0), Pt(0.5, 1))
	require.ErrorIs(t, err, ErrDegenerateInput)
	assert.Nil(t, f)

	_, err = Solve(Kind(3), p0, p1)
	require.ErrorIs(t, err, ErrUnknownKind)
}
