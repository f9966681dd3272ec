// Package money formats integer cent amounts for presentation. Amounts are stored
// and computed as int64 cents everywhere; decimals only appear at the edge.
package money

import "github.com/shopspring/decimal"

// FromCents returns the decimal value of an amount in cents.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents as a fixed two-place decimal string, e.g. -1234 → "-12.34".
func Format(cents int64) string {
	return FromCents(cents).StringFixed(2)
}

// ToCents converts a decimal amount to cents, rounding half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
