package pipeline

// Path decomposition constants
const (
	// minPathPoints is the shortest path that yields a segment
	minPathPoints = 2

	// pointsPerSegment is the number of control points a segment consumes
	pointsPerSegment = 2
)
