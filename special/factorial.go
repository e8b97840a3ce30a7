package special

// Factorial returns n! in float64. Exact through n = 20.
func Factorial(n int) (f float64) {
	f = 1
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return
}
