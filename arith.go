package bignum

import (
	"math"

	mu "github.com/avdva/bignum/internal/mathutil"
)

// Add returns d + o.
// If the exponents differ by more than MaxSignificantDigits, the smaller
// operand carries no representable digits and the bigger one is returned
// unchanged. Otherwise both mantissas are scaled into a shared integer-like
// window, which bounds cancellation error at the cost of the last digits.
func (d Decimal) Add(o Decimal) Decimal {
	if d.IsNaN() || o.IsNaN() {
		return NaN
	}
	if d.mantissa == 0 {
		return o
	}
	if o.mantissa == 0 {
		return d
	}
	bigger, smaller := d, o
	if bigger.exponent < smaller.exponent {
		bigger, smaller = smaller, bigger
	}
	if bigger.exponent-smaller.exponent > MaxSignificantDigits {
		return bigger
	}
	mant := math.Round(1e14*bigger.mantissa + 1e14*smaller.mantissa*mu.PowerOf10(int(math.Round(smaller.exponent-bigger.exponent))))
	return FromMantAndExp(mant, bigger.exponent-14)
}

// Sub returns d - o.
func (d Decimal) Sub(o Decimal) Decimal {
	return d.Add(o.Neg())
}

// Neg returns the value with the opposite sign.
func (d Decimal) Neg() Decimal {
	return FromMantAndExpRaw(-d.mantissa, d.exponent)
}

// Abs returns the absolute value.
func (d Decimal) Abs() Decimal {
	return FromMantAndExpRaw(math.Abs(d.mantissa), d.exponent)
}

// Mul returns d * o.
func (d Decimal) Mul(o Decimal) Decimal {
	return FromMantAndExp(d.mantissa*o.mantissa, d.exponent+o.exponent)
}

// Div returns d / o. Division by zero produces NaN.
func (d Decimal) Div(o Decimal) Decimal {
	return d.Mul(o.Recip())
}

// Recip returns 1 / d. The reciprocal of zero is NaN.
func (d Decimal) Recip() Decimal {
	return FromMantAndExp(1/d.mantissa, -d.exponent)
}
