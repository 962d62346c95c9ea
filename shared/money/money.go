// Package money converts between major-unit decimal amounts and the minor
// currency units the payment gateway charges in.
package money

import (
	"math"
	"strings"
)

// Currencies the gateway treats as zero-decimal: amounts are already expressed
// in their smallest unit, so no scaling is applied.
var zeroDecimal = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {},
	"krw": {}, "mga": {}, "pyg": {}, "rwf": {}, "ugx": {}, "vnd": {},
	"vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

// ToMinorUnits converts a major-unit amount (e.g. 50.00 USD) into the
// gateway's minor units (5000 cents).
func ToMinorUnits(amount float64, currency string) int64 {
	if isZeroDecimal(currency) {
		return int64(math.Round(amount))
	}

	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts the gateway's minor units back into a major-unit
// amount.
func FromMinorUnits(minor int64, currency string) float64 {
	if isZeroDecimal(currency) {
		return float64(minor)
	}

	return float64(minor) / 100
}

func isZeroDecimal(currency string) bool {
	_, ok := zeroDecimal[strings.ToLower(currency)]

	return ok
}
