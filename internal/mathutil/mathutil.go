package mathutil

import (
	"math"
	"strconv"
)

const (
	// MaxExp is the largest power of ten representable in a float64.
	MaxExp = 308
	// MinExp is the exponent of the smallest positive denormal float64.
	MinExp = -324

	// MaxSafeInteger is the largest integer a float64 represents exactly.
	MaxSafeInteger = 1<<53 - 1
)

var powersOf10 = makePowersOf10()

// makePowersOf10 fills the cache with 10^e for every e in [MinExp, MaxExp].
// The entries come from decimal string conversion: repeated multiplication
// drifts from the correctly rounded values for large exponents.
func makePowersOf10() []float64 {
	table := make([]float64, MaxExp-MinExp+1)
	for i := range table {
		table[i], _ = strconv.ParseFloat("1e"+strconv.Itoa(i+MinExp), 64)
	}
	return table
}

// PowerOf10 returns 10^e. e must be in [MinExp, MaxExp].
func PowerOf10(e int) float64 {
	return powersOf10[e-MinExp]
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsSafeInteger reports whether f is an integer in [-MaxSafeInteger, MaxSafeInteger].
func IsSafeInteger(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= MaxSafeInteger
}
