package bignum

import (
	"math"

	mu "github.com/avdva/bignum/internal/mathutil"
)

const (
	sqrt10  = 3.16227766016838
	cbrt10  = 2.154434690031883 // 10^(1/3)
	cbrt100 = 4.641588833612778 // 10^(2/3)

	log2Of10 = 3.321928094887362
)

// Pow10 returns 10^e for an arbitrary float64 exponent.
func Pow10(e float64) Decimal {
	if mu.IsFinite(e) && e == math.Trunc(e) {
		return FromMantAndExpRaw(1, e)
	}
	return FromMantAndExp(math.Pow(10, math.Mod(e, 1)), math.Trunc(e))
}

// Pow returns d^o.
// A negative base with a non-integer exponent produces NaN.
func (d Decimal) Pow(o Decimal) Decimal {
	return d.powFloat(o.Float64())
}

func (d Decimal) powFloat(x float64) Decimal {
	if d.mantissa == 0 {
		// 0^0 is defined as 1
		switch {
		case x == 0:
			return One
		case x > 0:
			return Zero
		default:
			return NaN
		}
	}
	temp := d.exponent * x
	var newMant float64
	if mu.IsSafeInteger(temp) {
		newMant = math.Pow(d.mantissa, x)
		if mu.IsFinite(newMant) && newMant != 0 {
			return FromMantAndExp(newMant, temp)
		}
	}
	newExp := math.Trunc(temp)
	residue := temp - newExp
	newMant = math.Pow(10, x*math.Log10(d.mantissa)+residue)
	if mu.IsFinite(newMant) && newMant != 0 {
		return FromMantAndExp(newMant, newExp)
	}
	result := Pow10(x * d.AbsLog10())
	if d.Sign() == -1 {
		switch mod := math.Abs(math.Mod(x, 2)); {
		case mod == 1:
			return result.Neg()
		case mod == 0:
			return result
		default:
			return NaN
		}
	}
	return result
}

// Exp returns e^d.
func (d Decimal) Exp() Decimal {
	x := d.Float64()
	// the fast path covers the whole range where math.Exp stays finite
	if -706 < x && x < 709 {
		return FromFloat64(math.Exp(x))
	}
	return FromFloat64(math.E).powFloat(x)
}

// Sqrt returns the square root, NaN for negative values.
func (d Decimal) Sqrt() Decimal {
	if d.mantissa < 0 {
		return NaN
	}
	if math.Mod(d.exponent, 2) != 0 {
		// an odd exponent leaves a factor of sqrt(10) for the mantissa.
		// mod of a negative number is negative, so != covers 1 and -1.
		return FromMantAndExp(math.Sqrt(d.mantissa)*sqrt10, math.Floor(d.exponent/2))
	}
	return FromMantAndExp(math.Sqrt(d.mantissa), math.Floor(d.exponent/2))
}

// Cbrt returns the cube root.
func (d Decimal) Cbrt() Decimal {
	sign := 1.0
	mantissa := d.mantissa
	if mantissa < 0 {
		sign = -1
		mantissa = -mantissa
	}
	newMant := sign * math.Pow(mantissa, 1.0/3)
	// the correction constant matches the remainder the floor division drops:
	// exponents of the form 3k+1 leave 10^(1/3), 3k+2 leave 10^(2/3).
	switch math.Mod(d.exponent, 3) {
	case 1, -2:
		return FromMantAndExp(newMant*cbrt10, math.Floor(d.exponent/3))
	case 2, -1:
		return FromMantAndExp(newMant*cbrt100, math.Floor(d.exponent/3))
	}
	return FromMantAndExp(newMant, d.exponent/3)
}

// Sqr returns d^2.
func (d Decimal) Sqr() Decimal {
	return FromMantAndExp(math.Pow(d.mantissa, 2), d.exponent*2)
}

// Cube returns d^3.
func (d Decimal) Cube() Decimal {
	return FromMantAndExp(math.Pow(d.mantissa, 3), d.exponent*3)
}

// AbsLog10 returns log10(|d|).
// The value never materializes as a float64, so any magnitude works.
func (d Decimal) AbsLog10() float64 {
	return d.exponent + math.Log10(math.Abs(d.mantissa))
}

// Log10 returns the decimal logarithm, NaN for negative values.
func (d Decimal) Log10() float64 {
	return d.exponent + math.Log10(d.mantissa)
}

// PLog10 returns Log10 for values of at least 1, and 0 for everything smaller.
func (d Decimal) PLog10() float64 {
	if d.mantissa <= 0 || d.exponent < 0 {
		return 0
	}
	return d.Log10()
}

// Log returns the logarithm of d in the given base.
func (d Decimal) Log(base float64) float64 {
	return math.Ln10 / math.Log(base) * d.Log10()
}

// Log2 returns the binary logarithm.
func (d Decimal) Log2() float64 {
	return log2Of10 * d.Log10()
}

// Ln returns the natural logarithm.
func (d Decimal) Ln() float64 {
	return math.Ln10 * d.Log10()
}

// Sinh returns the hyperbolic sine.
func (d Decimal) Sinh() Decimal {
	return d.Exp().Sub(d.Neg().Exp()).Div(two)
}

// Cosh returns the hyperbolic cosine.
func (d Decimal) Cosh() Decimal {
	return d.Exp().Add(d.Neg().Exp()).Div(two)
}

// Tanh returns the hyperbolic tangent.
func (d Decimal) Tanh() Decimal {
	return d.Sinh().Div(d.Cosh())
}

// Asinh returns the inverse hyperbolic sine as a float64.
func (d Decimal) Asinh() float64 {
	return d.Add(d.Sqr().Add(One).Sqrt()).Ln()
}

// Acosh returns the inverse hyperbolic cosine as a float64, NaN for values below 1.
func (d Decimal) Acosh() float64 {
	return d.Add(d.Sqr().Sub(One).Sqrt()).Ln()
}

// Atanh returns the inverse hyperbolic tangent as a float64, NaN outside (-1, 1).
func (d Decimal) Atanh() float64 {
	if d.Abs().Gte(One) {
		return math.NaN()
	}
	return d.Add(One).Div(One.Sub(d)).Ln() / 2
}

// Factorial approximates d! with Stirling's formula.
// The result is not exact even for small integers, and the relative error
// grows as the input approaches zero.
func (d Decimal) Factorial() Decimal {
	n := d.Float64() + 1
	base := n / math.E * math.Sqrt(n*math.Sinh(1/n)+1/(810*math.Pow(n, 6)))
	return FromFloat64(base).powFloat(n).Mul(FromFloat64(math.Sqrt(2 * math.Pi / n)))
}

// DecimalPlaces returns the number of significant fractional digits
// of the mantissa, at most MaxSignificantDigits. Zero and NaN have none.
func (d Decimal) DecimalPlaces() int {
	if d.mantissa == 0 || d.IsNaN() {
		return 0
	}
	places, probe := 0, 1.0
	for places < MaxSignificantDigits {
		if math.Abs(math.Round(d.mantissa*probe)/probe-d.mantissa) < RoundTolerance {
			break
		}
		probe *= 10
		places++
	}
	return places
}
