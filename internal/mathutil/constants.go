package mathutil

// Turning-point system constants
const (
	// CubicUnknowns is the number of cubic coefficients (a, b, c, d)
	CubicUnknowns = 4

	// Derivative factors: d/dx x³ = 3x², d/dx x² = 2x
	cubicDerivCoeff = 3.0
	quadDerivCoeff  = 2.0

	// conditionNorm selects the 2-norm for mat.Cond
	conditionNorm = 2
)

// Spectrum constants
const (
	// minSpectrumSamples is the shortest sequence with a non-DC bin
	minSpectrumSamples = 4
)
