package segment

import "github.com/tphakala/go-parametric-segment/internal/engine"

// Sampling constants
const (
	// DefaultPointCount is the number of samples per segment (9 × 100).
	DefaultPointCount = engine.DefaultPointCount

	// minPointCount is the fewest samples that span a domain
	minPointCount = 2
)

