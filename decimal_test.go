// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res Decimal
	}{
		{0, Zero},
		{1, FromMantAndExpRaw(1, 0)},
		{-1, FromMantAndExpRaw(-1, 0)},
		{10, FromMantAndExpRaw(1, 1)},
		{100, FromMantAndExpRaw(1, 2)},
		{0.5, FromMantAndExpRaw(5, -1)},
		{-0.5, FromMantAndExpRaw(-5, -1)},
		{2.5, FromMantAndExpRaw(2.5, 0)},
		{116, FromMantAndExpRaw(1.16, 2)},
		{1e12, FromMantAndExpRaw(1, 12)},
		{1e308, FromMantAndExpRaw(1, 308)},
		{1e-308, FromMantAndExpRaw(1, -308)},
		{5e-324, FromMantAndExpRaw(5, -324)},
		{-5e-324, FromMantAndExpRaw(-5, -324)},
		{math.Inf(1), Inf},
		{math.Inf(-1), NegInf},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromFloat64(test.f)
			a.Equal(test.res, v)
			a.Equal(test.f, v.Float64())
		})
	}
}

func TestFromFloat64Inexact(t *testing.T) {
	a := assert.New(t)
	tests := []float64{123.456, -456.7, 0.3, 15.0 / 7.0, 3.141592653589793e100, 2.5e-201}
	for i, f := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromFloat64(f)
			am := math.Abs(v.Mantissa())
			a.True(am >= 1 && am < 10)
			a.InEpsilon(f, v.Float64(), 1e-14)
		})
	}
}

func TestFromFloat64NaN(t *testing.T) {
	a := assert.New(t)
	v := FromFloat64(math.NaN())
	a.True(v.IsNaN())
	a.True(math.IsNaN(v.Float64()))
}

func TestFromMantAndExp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant, exp float64
		res       Decimal
	}{
		{0, 5, Zero},
		{1, 0, One},
		{1.5, 3, FromMantAndExpRaw(1.5, 3)},
		{-3.5, 2, FromMantAndExpRaw(-3.5, 2)},
		{10, 0, FromMantAndExpRaw(1, 1)},
		{100, 0, FromMantAndExpRaw(1, 2)},
		{35, 2, FromMantAndExpRaw(3.5, 3)},
		{0.5, 0, FromMantAndExpRaw(5, -1)},
		{-0.5, -10, FromMantAndExpRaw(-5, -11)},
		{12345, 10, FromMantAndExpRaw(1.2345, 14)},
		{2, math.Inf(1), Inf},
		{-2, math.Inf(1), NegInf},
		{2, math.Inf(-1), Zero},
		{1, 1e300, FromMantAndExpRaw(1, 1e300)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FromMantAndExp(test.mant, test.exp))
		})
	}
}

func TestFromMantAndExpNaN(t *testing.T) {
	a := assert.New(t)
	a.True(FromMantAndExp(math.NaN(), 0).IsNaN())
	a.True(FromMantAndExp(1, math.NaN()).IsNaN())
	a.True(FromMantAndExp(math.Inf(1), 0).IsNaN())
	a.True(FromMantAndExp(math.Inf(-1), 5).IsNaN())
	a.True(FromMantAndExp(0, math.Inf(1)).IsNaN())
}

func TestFromInteger(t *testing.T) {
	a := assert.New(t)
	a.Equal(Zero, FromInteger(0))
	a.Equal(One, FromInteger(1))
	a.Equal(FromMantAndExpRaw(4.2, 1), FromInteger(42))
	a.Equal(FromMantAndExpRaw(-7, 0), FromInteger(int8(-7)))
	a.Equal(FromMantAndExpRaw(2.55, 2), FromInteger(uint8(255)))
	a.Equal(FromMantAndExpRaw(1, 6), FromInteger(int32(1000000)))
	a.Equal(FromMantAndExpRaw(-1.5, 9), FromInteger(int64(-1500000000)))
	a.Equal(FromMantAndExpRaw(1.8446744073709552, 19), FromInteger(uint64(math.MaxUint64)))
}

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		res  Decimal
		part string // failed part for error cases
	}{
		{"0", Zero, ""},
		{"1", One, ""},
		{"100", FromMantAndExpRaw(1, 2), ""},
		{".5", FromMantAndExpRaw(5, -1), ""},
		{"-0.5", FromMantAndExpRaw(-5, -1), ""},
		{"1e5", FromMantAndExpRaw(1, 5), ""},
		{"2.5e-3", FromMantAndExpRaw(2.5, -3), ""},
		{"-1.5e-10", FromMantAndExpRaw(-1.5, -10), ""},
		{"1e+308", FromMantAndExpRaw(1, 308), ""},
		{"1e1000", FromMantAndExpRaw(1, 1000), ""},
		{"25e2", FromMantAndExpRaw(2.5, 3), ""},
		{"1E5", FromMantAndExpRaw(1, 5), ""},
		{"Infinity", Inf, ""},
		{"-Infinity", NegInf, ""},

		{"", Zero, "number"},
		{"abc", Zero, "number"},
		{"nan", Zero, "number"},
		{"1.2.3", Zero, "number"},
		{"e5", Zero, "mantissa"},
		{"xe5", Zero, "mantissa"},
		{"1e", Zero, "exponent"},
		{"1eabc", Zero, "exponent"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromString(test.s)
			if len(test.part) == 0 {
				if a.NoError(err) {
					a.Equal(test.res, v)
				}
				return
			}
			var pe *ParseError
			if a.ErrorAs(err, &pe) {
				a.Equal(test.part, pe.Part)
				a.Equal(test.s, pe.Input)
			}
			a.Equal(Zero, v)
		})
	}
}

func TestFromStringNaN(t *testing.T) {
	a := assert.New(t)
	v, err := FromString("NaN")
	a.NoError(err)
	a.True(v.IsNaN())
}

func TestMustFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(One, MustFromString("1"))
	a.Panics(func() {
		MustFromString("not a number")
	})
}

func TestNormalized(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v, res Decimal
	}{
		{FromMantAndExpRaw(12345, 10), FromMantAndExpRaw(1.2345, 14)},
		{FromMantAndExpRaw(0.02, 5), FromMantAndExpRaw(2, 3)},
		{FromMantAndExpRaw(0, 100), Zero},
		{FromMantAndExpRaw(-2.5, 3), FromMantAndExpRaw(-2.5, 3)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n := test.v.Normalized()
			a.Equal(test.res, n)
			a.Equal(n, n.Normalized())
		})
	}
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Decimal
		res float64
	}{
		{Zero, 0},
		{One, 1},
		{FromMantAndExpRaw(-1, 0), -1},
		{FromMantAndExpRaw(5, -1), 0.5},
		{FromMantAndExpRaw(1, 21), 1e21},
		{FromMantAndExpRaw(1, -3), 1e-3},
		{FromMantAndExpRaw(5, -324), 5e-324},
		{FromMantAndExpRaw(-5, -324), -5e-324},
		{FromMantAndExpRaw(5, 400), math.Inf(1)},
		{FromMantAndExpRaw(-5, 400), math.Inf(-1)},
		{FromMantAndExpRaw(5, -400), 0},
		{Inf, math.Inf(1)},
		{NegInf, math.Inf(-1)},
		// the raw result is off the integer by a few ulps, Float64 snaps it back
		{FromMantAndExpRaw(1.9999999999999998, 0), 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.v.Float64())
		})
	}
}

func TestFloat64SignedZero(t *testing.T) {
	a := assert.New(t)
	f := FromMantAndExpRaw(-5, -400).Float64()
	a.Equal(0.0, f)
	a.True(math.Signbit(f))
}

func TestAccessors(t *testing.T) {
	a := assert.New(t)
	v := FromMantAndExpRaw(-2.5, 42)
	a.Equal(-2.5, v.Mantissa())
	a.Equal(42.0, v.Exponent())
	m, e := v.MantAndExp()
	a.Equal(-2.5, m)
	a.Equal(42.0, e)

	a.True(Zero.IsZero())
	a.False(One.IsZero())
	a.True(NaN.IsNaN())
	a.False(One.IsNaN())
	a.True(Inf.IsInf())
	a.True(NegInf.IsInf())
	a.False(One.IsInf())
	a.False(NaN.IsInf())

	a.Equal(1, One.Sign())
	a.Equal(-1, FromFloat64(-0.25).Sign())
	a.Equal(0, Zero.Sign())
	a.Equal(0, NaN.Sign())
}

func TestRounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v                        Decimal
		round, floor, ceil, trun Decimal
	}{
		{FromFloat64(1.5), FromFloat64(2), One, FromFloat64(2), One},
		{FromFloat64(-1.5), FromFloat64(-2), FromFloat64(-2), FromFloat64(-1), FromFloat64(-1)},
		{FromFloat64(2.5), FromFloat64(3), FromFloat64(2), FromFloat64(3), FromFloat64(2)},
		{FromFloat64(123.456), FromFloat64(123), FromFloat64(123), FromFloat64(124), FromFloat64(123)},
		{FromFloat64(-123.456), FromFloat64(-123), FromFloat64(-124), FromFloat64(-123), FromFloat64(-123)},
		{FromFloat64(0.05), Zero, Zero, One, Zero},
		{FromFloat64(-0.05), Zero, FromFloat64(-1), Zero, Zero},
		{Zero, Zero, Zero, Zero, Zero},
		{One, One, One, One, One},
		// no fractional digits left at this magnitude
		{FromMantAndExpRaw(1.5, 20), FromMantAndExpRaw(1.5, 20), FromMantAndExpRaw(1.5, 20), FromMantAndExpRaw(1.5, 20), FromMantAndExpRaw(1.5, 20)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.round, test.v.Round())
			a.Equal(test.floor, test.v.Floor())
			a.Equal(test.ceil, test.v.Ceil())
			a.Equal(test.trun, test.v.Trunc())
		})
	}
}

func TestRoundingNaN(t *testing.T) {
	a := assert.New(t)
	a.True(NaN.Round().IsNaN())
	a.True(NaN.Floor().IsNaN())
	a.True(NaN.Ceil().IsNaN())
	a.True(NaN.Trunc().IsNaN())
}

func TestJSON(t *testing.T) {
	type testItem struct {
		v        Decimal
		expected []string
	}
	a := assert.New(t)
	meTemplate := `{"m":%v,"e":%v}`

	modes := []int{JSONModeString, JSONModeME, JSONModeCompact}

	tests := []testItem{
		{Zero, []string{`"0"`, fmt.Sprintf(meTemplate, 0, 0), `"0"`}},
		{One, []string{`"1"`, fmt.Sprintf(meTemplate, 1, 0), `"1"`}},
		{FromFloat64(0.5), []string{`"0.5"`, fmt.Sprintf(meTemplate, 5, -1), `"0.5"`}},
		{
			MustFromString("1.5e300"),
			[]string{`"1.5e+300"`, `{"m":1.5,"e":300}`, `"1.5e+300"`},
		},
		{
			// the plain form spells out 21 digits, the m/e pair is shorter
			MustFromString("1.23456e20"),
			[]string{`"123456000000000000000"`, `{"m":1.23456,"e":20}`, `{"m":1.23456,"e":20}`},
		},
		{
			MustFromString("-2.5e-10"),
			[]string{`"-2.5e-10"`, `{"m":-2.5,"e":-10}`, `"-2.5e-10"`},
		},
	}
	for i, item := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for j, mode := range modes {
				data := item.v.toJSON(mode)
				a.Equalf(item.expected[j], string(data), "marshalled value error for mode %v", mode)
				var v Decimal
				if a.NoError(json.Unmarshal(data, &v)) {
					a.Equalf(item.v, v, "unmarshalled value error for mode %v", mode)
				}
			}
			compact := item.v.toJSON(JSONModeCompact)
			for _, mode := range modes {
				a.LessOrEqual(len(compact), len(item.v.toJSON(mode)))
			}
		})
	}
}

func TestJSONSpecials(t *testing.T) {
	a := assert.New(t)
	for _, mode := range []int{JSONModeString, JSONModeME, JSONModeCompact} {
		a.Equal(`"NaN"`, string(NaN.toJSON(mode)))
		a.Equal(`"Infinity"`, string(Inf.toJSON(mode)))
		a.Equal(`"-Infinity"`, string(NegInf.toJSON(mode)))
	}
	var v Decimal
	a.NoError(json.Unmarshal([]byte(`"NaN"`), &v))
	a.True(v.IsNaN())
	a.NoError(json.Unmarshal([]byte(`"Infinity"`), &v))
	a.Equal(Inf, v)
}

func TestUnmarshalJSON(t *testing.T) {
	type testItem struct {
		json     string
		err      bool
		expected Decimal
	}
	a := assert.New(t)

	tests := []testItem{
		{"", true, Zero},
		{"{invalid", true, Zero},
		{"1234..44", true, Zero},
		{`"1234..44"`, true, Zero},

		{"2500", false, FromMantAndExpRaw(2.5, 3)},
		{`"2500"`, false, FromMantAndExpRaw(2.5, 3)},
		{`"2.5e3"`, false, FromMantAndExpRaw(2.5, 3)},
		{`{"m":2.5,"e":3}`, false, FromMantAndExpRaw(2.5, 3)},
		{`{"m":25,"e":2}`, false, FromMantAndExpRaw(2.5, 3)},
		{"1e5", false, FromMantAndExpRaw(1, 5)},
	}

	for i, item := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var v Decimal
			err := json.Unmarshal([]byte(item.json), &v)
			if item.err {
				a.Error(err)
			} else {
				a.NoError(err)
				a.Equal(item.expected, v)
			}
		})
	}
}

func TestTextMarshaling(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Decimal
		txt string
	}{
		{Zero, "0"},
		{FromFloat64(0.5), "0.5"},
		{MustFromString("1.5e300"), "1.5e+300"},
		{Inf, "Infinity"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			data, err := test.v.MarshalText()
			a.NoError(err)
			a.Equal(test.txt, string(data))
			var v Decimal
			a.NoError(v.UnmarshalText(data))
			a.Equal(test.v, v)
		})
	}

	var v Decimal
	a.Error(v.UnmarshalText([]byte("garbage")))
}

func TestRandomDecimal(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(42))
	zeros, negatives := 0, 0
	for i := 0; i < 1000; i++ {
		v := RandomDecimal(rnd, 50)
		a.Equal(v, v.Normalized())
		if v.IsZero() {
			zeros++
			continue
		}
		if v.Sign() < 0 {
			negatives++
		}
		am := math.Abs(v.Mantissa())
		a.True(am >= 1 && am < 10)
		a.GreaterOrEqual(v.Exponent(), -50.0)
		a.LessOrEqual(v.Exponent(), 50.0)
	}
	a.Greater(zeros, 0)
	a.Greater(negatives, 0)
}

func BenchmarkAdd(b *testing.B) {
	x, y := FromFloat64(123456789.0), FromFloat64(1234.0)
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	x, y := decimal.NewFromFloat(123456789.0), decimal.NewFromFloat(1234.0)
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}

func BenchmarkAddFixed(b *testing.B) {
	x, y := of.NewF(123456789.0), of.NewF(1234.0)
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := FromFloat64(123456789.0), FromFloat64(1234.0)
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	x, y := decimal.NewFromFloat(123456789.0), decimal.NewFromFloat(1234.0)
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkMulFixed(b *testing.B) {
	x, y := of.NewF(123456789.0), of.NewF(1234.0)
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FromFloat64(float64(i) * 1.5)
	}
}

func BenchmarkFloat64(b *testing.B) {
	v := MustFromString("1.2345e67")
	for i := 0; i < b.N; i++ {
		v.Float64()
	}
}

func BenchmarkNormalized(b *testing.B) {
	v := FromMantAndExpRaw(12345.678, 10)
	for i := 0; i < b.N; i++ {
		v.Normalized()
	}
}

func BenchmarkCmp(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	v1 := RandomDecimal(rnd, 100)
	v2 := RandomDecimal(rnd, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v1.Cmp(v2)
	}
}

func BenchmarkString(b *testing.B) {
	v := MustFromString("1.2345e67")
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkPow(b *testing.B) {
	x, y := MustFromString("1.5e10"), FromFloat64(2.5)
	for i := 0; i < b.N; i++ {
		x.Pow(y)
	}
}
