// Package export writes sampled curves to CSV tables and WAV waveforms.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tphakala/go-parametric-segment/internal/sampler"
)

// Errors returned by the exporters.
var (
	// ErrEmptyCurve indicates a curve without samples.
	ErrEmptyCurve = errors.New("curve has no samples")

	// ErrMalformedInput indicates an unreadable CSV or WAV stream.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupportedFormat indicates a sample rate or bit depth that cannot be written.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// WriteCSV writes curve as a two-column table with a "domain,range" header.
// Values use the shortest representation that parses back to the same float64.
func WriteCSV(w io.Writer, curve sampler.Curve) error {
	if curve.Len() == 0 {
		return ErrEmptyCurve
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{csvDomainColumn, csvRangeColumn}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, csvColumns)
	for i := range curve.Len() {
		x, y := curve.At(i)
		record[0] = strconv.FormatFloat(x, 'g', -1, 64)
		record[1] = strconv.FormatFloat(y, 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (sampler.Curve, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvColumns
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return sampler.Curve{}, fmt.Errorf("%w: CSV header: %v", ErrMalformedInput, err)
	}
	if header[0] != csvDomainColumn || header[1] != csvRangeColumn {
		return sampler.Curve{}, fmt.Errorf("%w: unexpected CSV header %q", ErrMalformedInput, header)
	}

	var curve sampler.Curve
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sampler.Curve{}, fmt.Errorf("%w: CSV row %d: %v", ErrMalformedInput, row, err)
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return sampler.Curve{}, fmt.Errorf("%w: CSV row %d domain: %v", ErrMalformedInput, row, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return sampler.Curve{}, fmt.Errorf("%w: CSV row %d range: %v", ErrMalformedInput, row, err)
		}

		curve.Domain = append(curve.Domain, x)
		curve.Range = append(curve.Range, y)
	}

	if curve.Len() == 0 {
		return sampler.Curve{}, ErrEmptyCurve
	}
	return curve, nil
}
