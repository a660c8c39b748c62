package domain

import (
	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// LineItem represents a single invoice line. Quantity may be fractional
// (e.g. hours); UnitPrice is a currency amount.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   money.Money     `json:"unit_price"`
}

// InvoiceTotals is the computed summary of an invoice.
type InvoiceTotals struct {
	LineTotals []money.Money `json:"line_totals"`
	Subtotal   money.Money   `json:"subtotal"`
	Tax        money.Money   `json:"tax"`
	GrandTotal money.Money   `json:"grand_total"`
}

// TaxInclusiveBreakdown splits a tax-inclusive total into its net and tax
// portions. Recombining the parts does not always reproduce the original
// total to the last cent; rounding is not perfectly invertible.
type TaxInclusiveBreakdown struct {
	Subtotal money.Money `json:"subtotal"`
	Tax      money.Money `json:"tax"`
}

// CompoundTaxBreakdown holds the result of applying several independent tax
// rates to the same subtotal (not cascaded).
type CompoundTaxBreakdown struct {
	PerRateAmounts []money.Money `json:"per_rate_amounts"`
	Total          money.Money   `json:"total"`
}
