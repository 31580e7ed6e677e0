package bignum

import (
	mu "github.com/avdva/bignum/internal/mathutil"
)

const (
	// MaxSignificantDigits is the number of decimal digits operations preserve.
	// The mantissa is a float64, anything past its precision would be noise.
	MaxSignificantDigits = 17

	// ExpLimit bounds the exponent, values at or above it are treated as infinite.
	// The bound is the whole float64 range. A stricter alternative would be
	// 9e15, past which exponent arithmetic itself stops being exact,
	// but exponents of that size do not survive any realistic use.
	ExpLimit = 1.79e308

	// NumberExpMax is the largest power of ten representable in a float64.
	NumberExpMax = mu.MaxExp
	// NumberExpMin is the exponent of the smallest denormal float64.
	NumberExpMin = mu.MinExp

	// RoundTolerance is the maximum distance at which Float64 snaps results
	// to the nearest integer.
	RoundTolerance = 1e-10
)
