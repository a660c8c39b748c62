package domain

import (
	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// TaxType selects the computation shape for a tax.
type TaxType string

const (
	// TaxTypeProgressiveIncome taxes increasing slices of income at
	// increasing marginal rates from a BracketSchedule.
	TaxTypeProgressiveIncome TaxType = "progressive_income"
	// TaxTypeFlatRate applies a single rate to the full taxable amount.
	TaxTypeFlatRate TaxType = "flat_rate"
)

// FilingStatus keys a bracket schedule together with the tax year.
type FilingStatus string

const (
	FilingStatusSingle          FilingStatus = "single"
	FilingStatusMarriedJointly  FilingStatus = "married_jointly"
	FilingStatusHeadOfHousehold FilingStatus = "head_of_household"
)

// TaxBracket is one slice of a progressive schedule. An Unbounded bracket has
// no upper limit and must be the last bracket of its schedule.
type TaxBracket struct {
	LowerBound money.Money     `json:"lower_bound"`
	UpperBound money.Money     `json:"upper_bound"`
	Unbounded  bool            `json:"unbounded"`
	Rate       decimal.Decimal `json:"rate"`
}

// BracketSchedule is an ordered, non-overlapping, gap-free sequence of
// brackets covering [0, inf), keyed by tax year and filing status. Brackets
// are sorted ascending by lower bound; each bracket's upper bound equals the
// next bracket's lower bound, and the last bracket is unbounded.
type BracketSchedule struct {
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`
	Brackets     []TaxBracket `json:"brackets"`
}

// TaxComputationInput carries everything a single tax computation needs.
// FilingStatus is required for progressive computations, FlatRate for
// flat-rate ones.
type TaxComputationInput struct {
	GrossIncome    money.Money     `json:"gross_income"`
	Deductions     money.Money     `json:"deductions"`
	Exemptions     money.Money     `json:"exemptions"`
	Credits        money.Money     `json:"credits"`
	PreviouslyPaid money.Money     `json:"previously_paid"`
	TaxType        TaxType         `json:"tax_type"`
	TaxYear        int             `json:"tax_year"`
	FilingStatus   FilingStatus    `json:"filing_status,omitempty"`
	FlatRate       decimal.Decimal `json:"flat_rate,omitempty"`
}

// BreakdownEntry is one line of a tax breakdown, in ascending bracket order.
type BreakdownEntry struct {
	Category string          `json:"category"`
	Amount   money.Money     `json:"amount"`
	Rate     decimal.Decimal `json:"rate"`
}

// TaxComputationResult is a pure derivation of a TaxComputationInput plus the
// applicable schedule; recomputing from the same input yields an identical
// result. RefundAmount and AmountDue are mutually exclusive; both are nil
// when the balance is exactly zero.
type TaxComputationResult struct {
	TaxableIncome money.Money      `json:"taxable_income"`
	GrossTaxOwed  money.Money      `json:"gross_tax_owed"`
	NetTaxOwed    money.Money      `json:"net_tax_owed"`
	EffectiveRate decimal.Decimal  `json:"effective_rate"`
	MarginalRate  decimal.Decimal  `json:"marginal_rate"`
	Breakdown     []BreakdownEntry `json:"breakdown"`
	RefundAmount  *money.Money     `json:"refund_amount,omitempty"`
	AmountDue     *money.Money     `json:"amount_due,omitempty"`
	Warnings      []string         `json:"warnings,omitempty"`
	Suggestions   []string         `json:"suggestions,omitempty"`
}
