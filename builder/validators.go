// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "math"

// validateMin ensures that got ≥ min, returning ErrTooFewVertices otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d (must be ≥ %d)", name, got, min)
	}

	return nil
}

// validateRadius ensures r is positive and finite.
func validateRadius(method string, r float64) error {
	if !(r > 0) || math.IsInf(r, 1) {
		return builderErrorf(method, ErrInvalidRadius, "radius=%g", r)
	}

	return nil
}
