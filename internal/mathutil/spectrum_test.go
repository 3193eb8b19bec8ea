package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-parametric-segment/internal/testutil"
)

func nan() float64         { return math.NaN() }
func inf(sign int) float64 { return math.Inf(sign) }

// TestDominantFrequency samples sinusoids with a whole number of cycles
// over [0, 2π] and recovers their angular frequency.
func TestDominantFrequency(t *testing.T) {
	const n = 900
	span := 2 * math.Pi

	for _, w := range []float64{1, 2, 4, 7} {
		samples := make([]float64, n)
		for i := range samples {
			x := span * float64(i) / float64(n-1)
			samples[i] = 0.3*math.Sin(w*x) + 0.25
		}

		got := DominantFrequency(samples, span)
		testutil.AssertRelativeError(t, w, got, testutil.FrequencyTolerance)
	}
}

func TestDominantFrequency_Degenerate(t *testing.T) {
	assert.Zero(t, DominantFrequency([]float64{1, 2}, 1))
	assert.Zero(t, DominantFrequency(make([]float64, 16), 0))
}
