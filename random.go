package bignum

import (
	"math"
	"math/rand"
)

// RandomDecimal returns a value with a random mantissa and an exponent
// uniform in [-absMaxExponent, absMaxExponent).
// The distribution is not sane in any statistical sense, use it for
// tests and fuzzing only.
func RandomDecimal(rnd *rand.Rand, absMaxExponent int) Decimal {
	// 5% of the time return zero
	if rnd.Float64()*20 < 1 {
		return Zero
	}
	mantissa := rnd.Float64() * 10
	// 10% of the time have a simple mantissa
	if rnd.Float64()*10 < 1 {
		mantissa = math.Round(mantissa)
	}
	if rnd.Intn(2) == 0 {
		mantissa = -mantissa
	}
	var exponent int
	if absMaxExponent > 0 {
		exponent = rnd.Intn(2*absMaxExponent) - absMaxExponent
	}
	return FromMantAndExp(mantissa, float64(exponent))
}
