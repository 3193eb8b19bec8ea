package mathutil

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// DominantFrequency returns the angular frequency (radians per unit of the
// sampled variable) of the strongest non-DC component of samples, which
// are assumed to be evenly spaced over a domain of length span.
//
// Resolution is one FFT bin, 2π/span. It returns 0 when fewer than
// minSpectrumSamples samples are given or span is not positive.
func DominantFrequency(samples []float64, span float64) float64 {
	n := len(samples)
	if n < minSpectrumSamples || span <= 0 {
		return 0
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	peak := 0
	peakMag := 0.0
	for k := 1; k < len(coeffs); k++ {
		if mag := cmplx.Abs(coeffs[k]); mag > peakMag {
			peak = k
			peakMag = mag
		}
	}

	// Bin k completes k cycles over n sample intervals of width dt.
	dt := span / float64(n-1)
	return 2 * math.Pi * float64(peak) / (float64(n) * dt)
}
