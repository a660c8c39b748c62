package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// LineTotal computes a single line's extension: quantity times unit price,
// rounded to cents.
func LineTotal(item domain.LineItem) (money.Money, error) {
	if item.Quantity.IsNegative() {
		return money.Zero(), &domain.InvalidInputError{
			Field:  "quantity",
			Value:  item.Quantity.String(),
			Reason: "quantity must not be negative",
		}
	}
	if item.UnitPrice.IsNegative() {
		return money.Zero(), &domain.InvalidInputError{
			Field:  "unit_price",
			Value:  item.UnitPrice.String(),
			Reason: "unit price must not be negative",
		}
	}
	return money.Extend(item.Quantity, item.UnitPrice), nil
}

// Subtotal sums the line totals of all items, rounding once after summation.
func Subtotal(items []domain.LineItem) (money.Money, error) {
	lineTotals := make([]money.Money, 0, len(items))
	for _, item := range items {
		lt, err := LineTotal(item)
		if err != nil {
			return money.Zero(), err
		}
		lineTotals = append(lineTotals, lt)
	}
	return money.Sum(lineTotals), nil
}

// Tax applies a single tax rate to a subtotal.
func Tax(subtotal money.Money, taxRate decimal.Decimal) (money.Money, error) {
	if err := validateRate("tax_rate", taxRate); err != nil {
		return money.Zero(), err
	}
	return subtotal.ApplyRate(taxRate), nil
}

// GrandTotal adds tax to a subtotal, rounded to cents.
func GrandTotal(subtotal, tax money.Money) money.Money {
	return subtotal.Add(tax).Round()
}

// InvoiceTotals computes line totals, subtotal, tax, and grand total for an
// invoice in one pass.
func InvoiceTotals(items []domain.LineItem, taxRate decimal.Decimal) (*domain.InvoiceTotals, error) {
	if err := validateRate("tax_rate", taxRate); err != nil {
		return nil, err
	}
	lineTotals := make([]money.Money, 0, len(items))
	for _, item := range items {
		lt, err := LineTotal(item)
		if err != nil {
			return nil, err
		}
		lineTotals = append(lineTotals, lt)
	}
	subtotal := money.Sum(lineTotals)
	tax := subtotal.ApplyRate(taxRate)
	return &domain.InvoiceTotals{
		LineTotals: lineTotals,
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: GrandTotal(subtotal, tax),
	}, nil
}

// TaxInclusive splits a tax-inclusive total into net and tax portions:
// subtotal = total / (1 + rate), tax = total - subtotal. Recombining the
// parts via GrandTotal need not reproduce the original total to the last
// cent; the rounding drift is a documented property of the inversion, and no
// iterative adjustment is applied.
func TaxInclusive(totalWithTax money.Money, taxRate decimal.Decimal) (*domain.TaxInclusiveBreakdown, error) {
	if err := validateRate("tax_rate", taxRate); err != nil {
		return nil, err
	}
	divisor := decimal.NewFromInt(1).Add(taxRate)
	subtotal := totalWithTax.Div(divisor).Round()
	tax := totalWithTax.Sub(subtotal).Round()
	return &domain.TaxInclusiveBreakdown{Subtotal: subtotal, Tax: tax}, nil
}

// CompoundTax applies each rate independently to the same subtotal (not
// cascaded) and sums the per-rate amounts.
func CompoundTax(subtotal money.Money, taxRates []decimal.Decimal) (*domain.CompoundTaxBreakdown, error) {
	perRate := make([]money.Money, 0, len(taxRates))
	for _, rate := range taxRates {
		if err := validateRate("tax_rate", rate); err != nil {
			return nil, err
		}
		perRate = append(perRate, subtotal.ApplyRate(rate))
	}
	return &domain.CompoundTaxBreakdown{
		PerRateAmounts: perRate,
		Total:          money.Sum(perRate),
	}, nil
}

// validateRate rejects rates outside [0,1].
func validateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return &domain.InvalidInputError{
			Field:  field,
			Value:  rate.String(),
			Reason: "rate must be within [0,1]",
		}
	}
	return nil
}

// validateNonNegative rejects negative amounts for fields that require
// non-negativity.
func validateNonNegative(field string, amount money.Money) error {
	if amount.IsNegative() {
		return &domain.InvalidInputError{
			Field:  field,
			Value:  amount.String(),
			Reason: "amount must not be negative",
		}
	}
	return nil
}
