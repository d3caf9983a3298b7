// SPDX-License-Identifier: MIT

// Package value: elementwise classification tests consumed by the expression
// layer when classifying constant leaves. All tests follow the numeric policy
// anchored by DefaultEpsilon.
package value

import "math"

// DefaultEpsilon defines the non-negative tolerance used by the elementwise
// classification tests. An entry within ±DefaultEpsilon counts as zero.
const DefaultEpsilon = 1e-9

// IsZero reports whether every entry is numerically zero.
// Complexity: O(r*c).
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if math.Abs(v) > DefaultEpsilon {
			return false
		}
	}

	return true
}

// AllNonNegative reports whether every entry is ≥ 0 within tolerance.
// Complexity: O(r*c).
func (m *Dense) AllNonNegative() bool {
	for _, v := range m.data {
		if v < -DefaultEpsilon {
			return false
		}
	}

	return true
}

// AllNonPositive reports whether every entry is ≤ 0 within tolerance.
// Complexity: O(r*c).
func (m *Dense) AllNonPositive() bool {
	for _, v := range m.data {
		if v > DefaultEpsilon {
			return false
		}
	}

	return true
}
