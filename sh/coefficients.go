package sh

import "gonum.org/v1/gonum/floats"

// IsZero reports whether every coefficient is exactly zero.
func IsZero(coefficients []float64) bool {
	for _, c := range coefficients {
		if c != 0 {
			return false
		}
	}
	return true
}

// L1Distance is the sum of absolute per-index differences. Panics when the
// lengths differ.
func L1Distance(lhs, rhs []float64) float64 { return floats.Distance(lhs, rhs, 1) }

// L2Distance is the Euclidean distance between two coefficient vectors, the
// rotation-invariant shape descriptor distance. Panics when the lengths
// differ.
func L2Distance(lhs, rhs []float64) float64 { return floats.Distance(lhs, rhs, 2) }
