package sh

import (
	"math"

	"github.com/notargets/gosh/special"
)

// Point packs an evaluated scalar with the direction it was evaluated at,
// azimuth Theta in [0,2pi) and polar angle Phi in [0,pi].
type Point struct {
	Value, Theta, Phi float64
}

// CoefficientCount returns the number of basis functions through degree
// maxDegree.
func CoefficientCount(maxDegree int) int { return (maxDegree + 1) * (maxDegree + 1) }

// MaximumDegree inverts CoefficientCount. Undefined when count is not of the
// form (maxDegree+1)^2.
func MaximumDegree(count int) int { return int(math.Sqrt(float64(count))) - 1 }

// CoefficientIndex flattens (l,m) to the linear basis ordering. Requires
// l >= 0 and -l <= m <= l.
func CoefficientIndex(l, m int) int { return l*(l+1) + m }

// CoefficientLM inverts CoefficientIndex for every non-negative index.
func CoefficientLM(i int) (l, m int) {
	l = int(math.Sqrt(float64(i)))
	m = i - l*l - l
	return
}

// Evaluate computes the real spherical harmonic basis function of degree l
// and order m at a direction.
func Evaluate(l, m int, theta, phi float64) float64 {
	switch {
	case m > 0:
		return math.Sqrt2 * normalization(l, m) *
			math.Cos(float64(m)*theta) * special.Legendre(l, m, math.Cos(phi))
	case m < 0:
		return math.Sqrt2 * normalization(l, -m) *
			math.Sin(float64(-m)*theta) * special.Legendre(l, -m, math.Cos(phi))
	default:
		return normalization(l, 0) * special.Legendre(l, 0, math.Cos(phi))
	}
}

// EvaluateIndex evaluates the basis function at a flattened index.
func EvaluateIndex(i int, theta, phi float64) float64 {
	l, m := CoefficientLM(i)
	return Evaluate(l, m, theta, phi)
}

// EvaluateSum is the serial reference reconstruction, the sum of every basis
// function through maxDegree weighted by its coefficient.
func EvaluateSum(maxDegree int, theta, phi float64, coefficients []float64) (sum float64) {
	for l := 0; l <= maxDegree; l++ {
		for m := -l; m <= l; m++ {
			sum += Evaluate(l, m, theta, phi) * coefficients[CoefficientIndex(l, m)]
		}
	}
	return
}

// normalization is sqrt((2l+1) (l-m)! / (4 pi (l+m)!)), m >= 0.
func normalization(l, m int) float64 {
	return math.Sqrt(float64(2*l+1) * special.Factorial(l-m) /
		(4 * math.Pi * special.Factorial(l+m)))
}
