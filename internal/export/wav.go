package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-parametric-segment/internal/sampler"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// WriteWAV encodes the range of curve as a mono PCM waveform.
//
// The range is centred and scaled so that its minimum and maximum map to
// negative and positive full scale. A flat curve encodes as silence.
// The domain is not stored; samples are spaced 1/sampleRate apart.
func WriteWAV(w io.WriteSeeker, curve sampler.Curve, sampleRate, bitDepth int) error {
	if curve.Len() == 0 {
		return ErrEmptyCurve
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, sampleRate)
	}
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           quantize(curve.Range, maxVal),
		SourceBitDepth: bitDepth,
	}

	encoder := wav.NewEncoder(w, sampleRate, bitDepth, monoChannels, pcmFormat)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}

	return nil
}

// ReadWAV decodes a mono PCM waveform written by WriteWAV into samples in
// [-1, 1] and returns them with the stream's sample rate.
func ReadWAV(r io.ReadSeeker) (samples []float64, sampleRate int, err error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: not a valid WAV stream", ErrMalformedInput)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if buf.Format == nil || buf.Format.NumChannels != monoChannels {
		return nil, 0, fmt.Errorf("%w: expected a mono stream", ErrMalformedInput)
	}

	maxVal, err := getMaxValue(int(decoder.BitDepth))
	if err != nil {
		return nil, 0, err
	}

	samples = make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v)
	}
	f64.Scale(samples, samples, 1/maxVal)

	return samples, buf.Format.SampleRate, nil
}

// quantize maps values into [-maxVal, maxVal] around their midpoint.
// Halves are taken before subtracting so ranges wider than MaxFloat64
// do not overflow.
func quantize(values []float64, maxVal float64) []int {
	lo, hi := floats.Min(values), floats.Max(values)
	half := hi/2 - lo/2
	mid := lo/2 + hi/2

	data := make([]int, len(values))
	if half == 0 {
		return data
	}

	scaled := make([]float64, len(values))
	copy(scaled, values)
	floats.AddConst(-mid, scaled)
	for i := range scaled {
		scaled[i] /= half
	}
	f64.Scale(scaled, scaled, maxVal)

	for i, v := range scaled {
		data[i] = int(math.Round(math.Max(-maxVal, math.Min(maxVal, v))))
	}
	return data
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bitDepth)
	}
}
