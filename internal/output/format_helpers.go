package output

import (
	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// FormatCurrency formats an amount as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount money.Money) string { return amount.Format() }

// FormatRate formats a fractional rate (0.12) as a percentage ("12.00%").
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
