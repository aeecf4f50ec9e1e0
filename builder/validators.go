// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf when its
// precondition is violated.
package builder

import "math"

// validateMin ensures that the agent count got is ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewAgents, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateMean ensures mean is finite and ≥ 0 (> 0 when positive is set).
// Complexity: O(1).
func validateMean(method string, mean float64, positive bool) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || mean < 0 || (positive && mean == 0) {
		return builderErrorf(method, ErrBadMean, "mean=%g", mean)
	}

	return nil
}

// validateIndexRange ensures n fits int32 agent indices.
// Complexity: O(1).
func validateIndexRange(method string, n int) error {
	if n > math.MaxInt32 {
		return builderErrorf(method, ErrConstructFailed, "n=%d exceeds int32 indices", n)
	}

	return nil
}
