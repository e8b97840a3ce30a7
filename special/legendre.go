package special

import "math"

// Legendre evaluates the associated Legendre polynomial P(l,m,x) with the
// Condon-Shortley phase. Requires m >= 0, l >= m and x in [-1,1].
func Legendre(l, m int, x float64) float64 {
	// P(m,m,x) = (-1)^m (2m-1)!! (1-x^2)^(m/2)
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}

	// P(m+1,m,x) = x (2m+1) P(m,m,x)
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}

	// Upward recurrence in degree:
	// (l-m) P(l,m) = x (2l-1) P(l-1,m) - (l+m-1) P(l-2,m)
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}
