package bignum

// AffordGeometricSeries returns how many sequential purchases a budget covers
// when the next purchase costs priceStart*priceRatio^owned.
func AffordGeometricSeries(resourcesAvailable, priceStart, priceRatio, currentOwned Decimal) Decimal {
	actualStart := priceStart.Mul(priceRatio.Pow(currentOwned))
	return FromFloat64(
		resourcesAvailable.Div(actualStart).Mul(priceRatio.Sub(One)).Add(One).Log10() / priceRatio.Log10(),
	).Floor()
}

// SumGeometricSeries returns the total cost of numItems sequential purchases
// under the same progression AffordGeometricSeries assumes.
func SumGeometricSeries(numItems, priceStart, priceRatio, currentOwned Decimal) Decimal {
	return priceStart.Mul(priceRatio.Pow(currentOwned)).
		Mul(One.Sub(priceRatio.Pow(numItems))).
		Div(One.Sub(priceRatio))
}

// AffordArithmeticSeries returns how many sequential purchases a budget covers
// when every purchase raises the next price by priceAdd.
func AffordArithmeticSeries(resourcesAvailable, priceStart, priceAdd, currentOwned Decimal) Decimal {
	actualStart := priceStart.Add(currentOwned.Mul(priceAdd))
	// n = (-(2b-a) + sqrt((2b-a)^2 + 8an)) / (2a)
	b := actualStart.Sub(priceAdd.Div(two))
	b2 := b.Pow(two)
	return b.Neg().
		Add(b2.Add(priceAdd.Mul(resourcesAvailable).Mul(two)).Sqrt()).
		Div(priceAdd).
		Floor()
}

// SumArithmeticSeries returns the total cost of numItems sequential purchases
// under the same progression AffordArithmeticSeries assumes.
func SumArithmeticSeries(numItems, priceStart, priceAdd, currentOwned Decimal) Decimal {
	actualStart := priceStart.Add(currentOwned.Mul(priceAdd))
	// (n/2)*(2*a+(n-1)*d)
	return numItems.Div(two).Mul(actualStart.Mul(two).Add(numItems.Sub(One).Mul(priceAdd)))
}

// EfficiencyOfPurchase weighs a purchase: the cost in current production
// plus the cost in the production gain it brings. Lower is better.
func EfficiencyOfPurchase(cost, currentRpS, deltaRpS Decimal) Decimal {
	return cost.Div(currentRpS).Add(cost.Div(deltaRpS))
}
