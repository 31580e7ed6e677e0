package bignum

// Cmp compares two values and returns
//
//	-1 if d < o
//	 0 if d == o
//	+1 if d > o
//
// The order is total except for NaN: if either operand is NaN, Cmp
// returns 0, and the ordering predicates all report false.
// Use IsNaN to tell the cases apart.
func (d Decimal) Cmp(o Decimal) int {
	if d.IsNaN() || o.IsNaN() {
		return 0
	}
	if d.mantissa == 0 {
		if o.mantissa == 0 {
			return 0
		}
		if o.mantissa < 0 {
			return 1
		}
		return -1
	}
	if o.mantissa == 0 {
		if d.mantissa < 0 {
			return -1
		}
		return 1
	}
	if d.mantissa > 0 {
		if o.mantissa < 0 {
			return 1
		}
		switch {
		case d.exponent > o.exponent:
			return 1
		case d.exponent < o.exponent:
			return -1
		case d.mantissa > o.mantissa:
			return 1
		case d.mantissa < o.mantissa:
			return -1
		}
		return 0
	}
	// both negative, a bigger exponent means a bigger magnitude,
	// so the exponent order inverts.
	if o.mantissa > 0 {
		return -1
	}
	switch {
	case d.exponent > o.exponent:
		return -1
	case d.exponent < o.exponent:
		return 1
	case d.mantissa > o.mantissa:
		return 1
	case d.mantissa < o.mantissa:
		return -1
	}
	return 0
}

// Eq reports whether the values are equal. NaN is not equal to anything,
// including itself.
func (d Decimal) Eq(o Decimal) bool {
	return d.mantissa == o.mantissa && d.exponent == o.exponent
}

// Neq reports whether the values are not equal.
func (d Decimal) Neq(o Decimal) bool {
	return !d.Eq(o)
}

// Lt reports whether d < o.
func (d Decimal) Lt(o Decimal) bool {
	if d.IsNaN() || o.IsNaN() {
		return false
	}
	return d.Cmp(o) < 0
}

// Lte reports whether d <= o.
func (d Decimal) Lte(o Decimal) bool {
	if d.IsNaN() || o.IsNaN() {
		return false
	}
	return d.Cmp(o) <= 0
}

// Gt reports whether d > o.
func (d Decimal) Gt(o Decimal) bool {
	if d.IsNaN() || o.IsNaN() {
		return false
	}
	return d.Cmp(o) > 0
}

// Gte reports whether d >= o.
func (d Decimal) Gte(o Decimal) bool {
	if d.IsNaN() || o.IsNaN() {
		return false
	}
	return d.Cmp(o) >= 0
}

// Max returns the bigger of the two values.
func (d Decimal) Max(o Decimal) Decimal {
	if d.Lt(o) {
		return o
	}
	return d
}

// Min returns the smaller of the two values.
func (d Decimal) Min(o Decimal) Decimal {
	if d.Gt(o) {
		return o
	}
	return d
}

// Clamp limits the value to the [min, max] range.
func (d Decimal) Clamp(min, max Decimal) Decimal {
	return d.Max(min).Min(max)
}

// ClampMin limits the value from below.
func (d Decimal) ClampMin(min Decimal) Decimal {
	return d.Max(min)
}

// ClampMax limits the value from above.
func (d Decimal) ClampMax(max Decimal) Decimal {
	return d.Min(max)
}

// EqTolerance reports whether the values differ by no more than
// tolerance*max(|d|, |o|). For the default choice of the tolerance
// see RoundTolerance.
func (d Decimal) EqTolerance(o, tolerance Decimal) bool {
	return d.Sub(o).Abs().Lte(d.Abs().Max(o.Abs()).Mul(tolerance))
}

// NeqTolerance is the negation of EqTolerance.
func (d Decimal) NeqTolerance(o, tolerance Decimal) bool {
	return !d.EqTolerance(o, tolerance)
}

// CmpTolerance is like Cmp, but returns 0 for values equal within the tolerance.
func (d Decimal) CmpTolerance(o, tolerance Decimal) int {
	if d.EqTolerance(o, tolerance) {
		return 0
	}
	return d.Cmp(o)
}

// LtTolerance reports whether d < o and the values are not equal within the tolerance.
func (d Decimal) LtTolerance(o, tolerance Decimal) bool {
	return !d.EqTolerance(o, tolerance) && d.Lt(o)
}

// LteTolerance reports whether d < o or the values are equal within the tolerance.
func (d Decimal) LteTolerance(o, tolerance Decimal) bool {
	return d.EqTolerance(o, tolerance) || d.Lt(o)
}

// GtTolerance reports whether d > o and the values are not equal within the tolerance.
func (d Decimal) GtTolerance(o, tolerance Decimal) bool {
	return !d.EqTolerance(o, tolerance) && d.Gt(o)
}

// GteTolerance reports whether d > o or the values are equal within the tolerance.
func (d Decimal) GteTolerance(o, tolerance Decimal) bool {
	return d.EqTolerance(o, tolerance) || d.Gt(o)
}
