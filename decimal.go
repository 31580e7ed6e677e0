// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package bignum implements a floating-point number, where both mantissa
// and exponent are stored as separate float64 values.
// It can represent magnitudes up to 1e(1.79e308) with about 17 significant
// digits of precision, and is intended for simulations whose quantities
// quickly outgrow the native float64 range.
package bignum

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/bignum/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as strings, like `"1.234e+1000"`.
	JSONModeString = iota
	// JSONModeME marshals values with mantissa and exponent, like `{"m":1.234,"e":1000}`.
	JSONModeME
	// JSONModeCompact chooses the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

var (
	// Zero is the canonical zero value. Also the zero value of the Decimal type.
	Zero = Decimal{}
	// One is the value 1.
	One = Decimal{mantissa: 1}
	// NaN is the not-a-number sentinel. It is the result of undefined
	// operations and propagates through arithmetic.
	NaN = Decimal{mantissa: math.NaN(), exponent: math.NaN()}
	// Inf and NegInf are the saturation values for magnitudes
	// beyond the representable exponent range.
	Inf = Decimal{mantissa: 1, exponent: ExpLimit}
	// NegInf is the negative infinity value.
	NegInf = Decimal{mantissa: -1, exponent: ExpLimit}

	two = Decimal{mantissa: 2}

	jsonParts = []string{`{"m":`, `,"e":`, `}`}

	errEmptyJSON  = fmt.Errorf("empty json")
	errNotANumber = errors.New("not a number")
)

// ParseError is returned by FromString for inputs it cannot parse.
type ParseError struct {
	Input string
	Part  string // "mantissa", "exponent", or "number"
	Err   error
}

func newParseError(input, part string, err error) *ParseError {
	return &ParseError{Input: input, Part: part, Err: err}
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: bad %s: %v", pe.Input, pe.Part, pe.Err)
}

func (pe *ParseError) Unwrap() error { return pe.Err }

// Decimal is a number of the form mantissa*10^exponent.
// Normalized values keep 1 <= |mantissa| < 10, zero is stored as (0, 0),
// NaN as (NaN, NaN), and infinities as (±1, ExpLimit).
// All operations take and return normalized values, and the results
// of all operations are accurate to MaxSignificantDigits.
// The zero value for Decimal is the number 0, no constructor is required.
type Decimal struct {
	mantissa float64
	exponent float64
}

// FromMantAndExp returns a normalized value equal to mant*10^exp.
// A NaN mantissa or exponent produces NaN, an infinite mantissa produces NaN,
// an infinite exponent saturates to Inf/NegInf or collapses to Zero.
func FromMantAndExp(mant, exp float64) Decimal {
	if math.IsNaN(mant) || math.IsNaN(exp) || math.IsInf(mant, 0) {
		return NaN
	}
	if math.IsInf(exp, 0) {
		if exp < 0 { // the magnitude is below anything representable
			return Decimal{mantissa: math.Copysign(0, mant)}
		}
		if mant > 0 {
			return Inf
		}
		if mant < 0 {
			return NegInf
		}
		return NaN
	}
	return Decimal{mantissa: mant, exponent: exp}.normalize()
}

// FromMantAndExpRaw returns a value with the given mantissa and exponent,
// skipping normalization.
// The caller must guarantee that either 1 <= |mant| < 10, or that the pair
// is one of the canonical special forms. Useful for constants known to be
// normalized already.
func FromMantAndExpRaw(mant, exp float64) Decimal {
	return Decimal{mantissa: mant, exponent: exp}
}

// FromFloat64 returns a value equal to f.
// All float64 values are accepted, including infinities and NaN.
func FromFloat64(f float64) Decimal {
	switch {
	case math.IsNaN(f):
		return NaN
	case f == 0:
		return Zero
	case math.IsInf(f, 1):
		return Inf
	case math.IsInf(f, -1):
		return NegInf
	}
	return Decimal{mantissa: f}.normalize()
}

// FromInteger returns a value for any integer v.
// Integers of more than 17 significant digits lose precision,
// as they pass through a float64 conversion.
func FromInteger[T constraints.Integer](v T) Decimal {
	return FromFloat64(float64(v))
}

// FromString parses a string into a value.
// Accepted forms are a plain number parseable as a float64, like "123.456",
// a mantissa/exponent pair, like "2.5e1000" or "1e-15", and the literals
// "NaN", "Infinity", "-Infinity".
// On failure it returns Zero and a *ParseError.
func FromString(s string) (Decimal, error) {
	if s == "NaN" {
		return NaN, nil
	}
	if mant, exp, found := strings.Cut(s, "e"); found {
		m, err := parseFloatSaturating(mant)
		if err != nil {
			return Zero, newParseError(s, "mantissa", err)
		}
		e, err := parseFloatSaturating(exp)
		if err != nil {
			return Zero, newParseError(s, "exponent", err)
		}
		return FromMantAndExp(m, e), nil
	}
	f, err := parseFloatSaturating(s)
	if err != nil {
		return Zero, newParseError(s, "number", err)
	}
	if math.IsNaN(f) {
		return Zero, newParseError(s, "number", errNotANumber)
	}
	return FromFloat64(f), nil
}

// parseFloatSaturating parses like strconv.ParseFloat, but treats range
// errors as success: the clamped value strconv returns is exactly the
// saturation behavior big values follow anyway.
func parseFloatSaturating(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// MustFromString is like FromString, but panics on parse errors.
func MustFromString(s string) Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Mantissa returns the mantissa part. For finite non-zero values it is in [1, 10).
func (d Decimal) Mantissa() float64 { return d.mantissa }

// Exponent returns the decimal exponent part.
func (d Decimal) Exponent() float64 { return d.exponent }

// MantAndExp returns both parts of the value.
func (d Decimal) MantAndExp() (mant, exp float64) {
	return d.mantissa, d.exponent
}

// IsNaN reports whether the value is not-a-number.
func (d Decimal) IsNaN() bool {
	return math.IsNaN(d.mantissa)
}

// IsInf reports whether the value saturated to an infinity, see Inf and NegInf.
func (d Decimal) IsInf() bool {
	return !d.IsNaN() && d.exponent >= ExpLimit
}

// IsZero reports whether the value is exactly zero.
func (d Decimal) IsZero() bool {
	return d.mantissa == 0
}

// Sign returns 1 for positive values, -1 for negative ones, and 0 for zero or NaN.
func (d Decimal) Sign() int {
	if d.mantissa > 0 {
		return 1
	}
	if d.mantissa < 0 {
		return -1
	}
	return 0
}

// Normalized returns the value brought to the form, where 1 <= |mantissa| < 10.
// Values produced by constructors and arithmetic are already normalized,
// this only needs calling after FromMantAndExpRaw with an unchecked pair.
func (d Decimal) Normalized() Decimal {
	return FromMantAndExp(d.mantissa, d.exponent)
}

// normalize expects a finite mantissa and exponent.
func (d Decimal) normalize() Decimal {
	if am := math.Abs(d.mantissa); am >= 1 && am < 10 {
		return d
	}
	if d.mantissa == 0 {
		return Zero
	}
	shift := math.Floor(math.Log10(math.Abs(d.mantissa)))
	mant := d.mantissa
	if int(shift) == NumberExpMin {
		// 10^-324 is not representable, scale denormals in two steps.
		mant = mant * 10 / 1e-323
	} else {
		mant /= mu.PowerOf10(int(shift))
	}
	return Decimal{mantissa: mant, exponent: d.exponent + shift}
}

// Float64 returns the closest float64 to the value.
// Magnitudes beyond the float64 range become infinities, magnitudes below
// the smallest denormal collapse to signed zero.
// Integer results reached within RoundTolerance are snapped to the exact
// integer to compensate for accumulated error.
func (d Decimal) Float64() float64 {
	if !mu.IsFinite(d.exponent) {
		return math.NaN()
	}
	if d.exponent > NumberExpMax {
		if d.mantissa > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	if d.exponent < NumberExpMin {
		return math.Copysign(0, d.mantissa)
	}
	if d.exponent == NumberExpMin {
		// the smallest power of ten is below the denormal range,
		// so the best match is the smallest denormal itself.
		if d.mantissa > 0 {
			return 5e-324
		}
		return -5e-324
	}
	result := d.mantissa * mu.PowerOf10(int(d.exponent))
	if !mu.IsFinite(result) || d.exponent < 0 {
		return result
	}
	rounded := math.Round(result)
	if math.Abs(rounded-result) < RoundTolerance {
		return rounded
	}
	return result
}

// Round returns the value rounded to the nearest integer, halves away from zero.
// Values with exponents beyond the significant-digit budget carry
// no fractional digits and are returned unchanged.
func (d Decimal) Round() Decimal {
	if d.exponent < -1 {
		return Zero
	}
	if d.exponent < MaxSignificantDigits {
		return FromFloat64(math.Round(d.Float64()))
	}
	return d
}

// Floor returns the greatest integer value less than or equal to d.
func (d Decimal) Floor() Decimal {
	if d.exponent < -1 {
		if d.Sign() >= 0 {
			return Zero
		}
		return FromMantAndExpRaw(-1, 0)
	}
	if d.exponent < MaxSignificantDigits {
		return FromFloat64(math.Floor(d.Float64()))
	}
	return d
}

// Ceil returns the smallest integer value greater than or equal to d.
func (d Decimal) Ceil() Decimal {
	if d.exponent < -1 {
		if d.Sign() > 0 {
			return One
		}
		return Zero
	}
	if d.exponent < MaxSignificantDigits {
		return FromFloat64(math.Ceil(d.Float64()))
	}
	return d
}

// Trunc returns the integer part of d.
func (d Decimal) Trunc() Decimal {
	if d.exponent < -1 {
		return Zero
	}
	if d.exponent < MaxSignificantDigits {
		return FromFloat64(math.Trunc(d.Float64()))
	}
	return d
}

// MarshalJSON marshals the value according to the current JSONMode.
// NaN and infinities always marshal as strings, as json numbers cannot carry them.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return d.toJSON(JSONMode), nil
}

func (d Decimal) toJSON(mode int) []byte {
	if !mu.IsFinite(d.mantissa) || !mu.IsFinite(d.exponent) || d.IsInf() {
		mode = JSONModeString
	}
	switch mode {
	case JSONModeME:
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatFloat(d.mantissa, 'g', -1, 64))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatFloat(d.exponent, 'g', -1, 64))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		str, me := d.toJSON(JSONModeString), d.toJSON(JSONModeME)
		if len(str) <= len(me) {
			return str
		}
		return me
	default: // marshal as a string
		return []byte(`"` + d.String() + `"`)
	}
}

// UnmarshalJSON unmarshals a string, a number, or a {"m":..,"e":..} object into the value.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errEmptyJSON
	}
	switch data[0] {
	case '{':
		obj := struct {
			M, E float64
		}{}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*d = FromMantAndExp(obj.M, obj.E)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := FromString(s)
		if err != nil {
			return err
		}
		*d = value
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*d = value
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see FromString for the accepted forms.
func (d *Decimal) UnmarshalText(text []byte) error {
	value, err := FromString(string(text))
	if err != nil {
		return err
	}
	*d = value
	return nil
}
