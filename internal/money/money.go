// Package money renders decimal balances for display.
package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = gomoney.USD

// Known reports whether code is an ISO 4217 currency known to go-money.
func Known(code string) bool {
	return gomoney.GetCurrency(strings.ToUpper(code)) != nil
}

// Format renders amount in currency, rounded to the currency's minor unit.
// Stored balances keep their full precision; only the display is rounded.
// Unknown codes fall back to DefaultCurrency.
func Format(amount decimal.Decimal, code string) string {
	cur := gomoney.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		cur = gomoney.GetCurrency(DefaultCurrency)
	}
	fraction := int32(cur.Fraction)
	minor := amount.Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart())
}
