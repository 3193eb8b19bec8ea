package sampler

// Sampling limits
const (
	// minPointCount is the fewest samples that can span a domain
	minPointCount = 2
)
