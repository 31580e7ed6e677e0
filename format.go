package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	su "github.com/avdva/bignum/internal/strutil"
)

// String formats the value. Exponents inside a human-readable window
// (-7, 21) render as a plain number, anything bigger uses the
// `<mantissa>e<signed exponent>` form.
// NaN, the infinities, and zero have fixed literals.
func (d Decimal) String() string {
	if math.IsNaN(d.mantissa) || math.IsNaN(d.exponent) {
		return "NaN"
	}
	if d.exponent >= ExpLimit {
		if d.mantissa > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	if d.exponent <= -ExpLimit || d.mantissa == 0 {
		return "0"
	}
	if d.exponent > -7 && d.exponent < 21 {
		return formatFloat(d.Float64())
	}
	return formatFloat(d.mantissa) + sciExponent(d.exponent)
}

// GoString returns a debug representation.
func (d Decimal) GoString() string {
	return d.String() + fmt.Sprintf(" {%v, %v}", d.mantissa, d.exponent)
}

// ToExponential formats the value in exponential notation with places
// digits after the decimal point. Negative places are treated as zero.
func (d Decimal) ToExponential(places int) string {
	if math.IsNaN(d.mantissa) || math.IsNaN(d.exponent) {
		return "NaN"
	}
	if d.exponent >= ExpLimit {
		if d.mantissa > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	if places < 0 {
		places = 0
	}
	if d.exponent <= -ExpLimit || d.mantissa == 0 {
		if places == 0 {
			return "0e+0"
		}
		return "0." + su.Zeros(places) + "e+0"
	}
	length := places + 1
	numDigits := int(math.Max(1, math.Ceil(math.Log10(math.Abs(d.mantissa)))))
	rounded := d.mantissa
	if diff := length - numDigits; diff <= MaxSignificantDigits {
		// past the float64 digits rounding is an identity
		rounded = math.Round(d.mantissa*math.Pow(10, float64(diff))) * math.Pow(10, float64(-diff))
	}
	return strconv.FormatFloat(rounded, 'f', max(length-numDigits, 0), 64) + sciExponent(d.exponent)
}

// ToFixed formats the value with places digits after the decimal point.
// Negative places are treated as zero.
// Exponents at or past MaxSignificantDigits leave no resolvable fractional
// digits, so the digit string is reconstructed from the mantissa and
// padded with zeros instead of going through a float64.
func (d Decimal) ToFixed(places int) string {
	if math.IsNaN(d.mantissa) || math.IsNaN(d.exponent) {
		return "NaN"
	}
	if d.exponent >= ExpLimit {
		if d.mantissa > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	if places < 0 {
		places = 0
	}
	if d.exponent <= -ExpLimit || d.mantissa == 0 {
		if places == 0 {
			return "0"
		}
		return "0." + su.Zeros(places)
	}
	if d.exponent >= MaxSignificantDigits {
		mant := strings.Replace(strconv.FormatFloat(d.mantissa, 'f', -1, 64), ".", "", 1)
		var sign string
		if mant[0] == '-' {
			sign, mant = "-", mant[1:]
		}
		result := sign + su.PadEnd(mant, int(d.exponent)+1, '0')
		if places > 0 {
			result += "." + su.Zeros(places)
		}
		return result
	}
	return strconv.FormatFloat(d.Float64(), 'f', places, 64)
}

// ToPrecision formats the value with places significant digits:
// exponential notation for exponents below -7, positional while places
// cover the integer digits, exponential again otherwise.
func (d Decimal) ToPrecision(places int) string {
	if d.exponent <= -7 {
		return d.ToExponential(places - 1)
	}
	if float64(places) > d.exponent {
		return d.ToFixed(places - int(d.exponent) - 1)
	}
	return d.ToExponential(places - 1)
}

// MantissaWithDecimalPlaces returns the mantissa alone rounded to places
// digits after the decimal point. Handy for compact displays that render
// the exponent part separately.
func (d Decimal) MantissaWithDecimalPlaces(places int) float64 {
	if d.IsNaN() {
		return math.NaN()
	}
	if d.mantissa == 0 {
		return 0
	}
	length := places + 1
	numDigits := int(math.Ceil(math.Log10(math.Abs(d.mantissa))))
	rounded := math.Round(d.mantissa*math.Pow(10, float64(length-numDigits))) * math.Pow(10, float64(numDigits-length))
	f, _ := strconv.ParseFloat(strconv.FormatFloat(rounded, 'f', max(length-numDigits, 0), 64), 64)
	return f
}

// formatFloat renders f as the shortest digit string that parses back
// exactly: plain notation for magnitudes within [1e-6, 1e21),
// exponential outside of that window.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return trimExpZeros(strconv.FormatFloat(f, 'e', -1, 64))
}

// trimExpZeros drops the zero padding strconv puts into single-digit
// exponents: `1e+07` becomes `1e+7`.
func trimExpZeros(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	j := i + 2 // the byte after 'e' is always a sign
	k := j
	for k < len(s)-1 && s[k] == '0' {
		k++
	}
	if k == j {
		return s
	}
	return s[:j] + s[k:]
}

func sciExponent(e float64) string {
	if e >= 0 {
		return "e+" + formatFloat(e)
	}
	return "e" + formatFloat(e)
}
