package special

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorial(t *testing.T) {
	exact := []float64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800}
	for n, want := range exact {
		assert.Equal(t, want, Factorial(n))
	}
	// n! = n (n-1)! holds through the growth range the couplers reach
	for n := 1; n <= 30; n++ {
		assert.InEpsilon(t, Factorial(n), float64(n)*Factorial(n-1), 1e-15)
	}
}
