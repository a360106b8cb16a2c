package hexgrid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Euclidean returns sqrt(Σ (a[i]-b[i])²).
// Returns ErrDimensionMismatch if a and b differ in length.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, 2), nil
}
