package special

import (
	"math"

	"github.com/notargets/gosh/utils"
)

// ClebschGordan evaluates <l1 m1 l2 m2 | l3 m3> by Racah's closed form.
// Outside the selection rules (m1+m2 = m3, |mi| <= li, triangle rule on the
// degrees) the coefficient is zero.
func ClebschGordan(l1, l2, l3, m1, m2, m3 int) (cg float64) {
	if m1+m2 != m3 {
		return
	}
	if l3 < iabs(l1-l2) || l3 > l1+l2 {
		return
	}
	if iabs(m1) > l1 || iabs(m2) > l2 || iabs(m3) > l3 {
		return
	}

	var (
		kMin = max(0, l2-l3-m1, l1-l3+m2)
		kMax = min(l1+l2-l3, l1-m1, l2+m2)
		sum  float64
	)
	for k := kMin; k <= kMax; k++ {
		den := Factorial(k) *
			Factorial(l1+l2-l3-k) *
			Factorial(l1-m1-k) *
			Factorial(l2+m2-k) *
			Factorial(l3-l2+m1+k) *
			Factorial(l3-l1-m2+k)
		sum += utils.POW(-1, k) / den
	}

	norm := float64(2*l3+1) * triangleCoefficient(l1, l2, l3)
	cg = math.Sqrt(norm*
		Factorial(l3+m3)*Factorial(l3-m3)*
		Factorial(l1+m1)*Factorial(l1-m1)*
		Factorial(l2+m2)*Factorial(l2-m2)) * sum
	return
}

// triangleCoefficient is Racah's delta for a degree triple.
func triangleCoefficient(l1, l2, l3 int) float64 {
	return Factorial(l1+l2-l3) * Factorial(l1-l2+l3) * Factorial(-l1+l2+l3) /
		Factorial(l1+l2+l3+1)
}

func iabs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
