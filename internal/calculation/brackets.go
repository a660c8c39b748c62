package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// ApplyBracketSchedule walks a schedule in ascending bracket order and taxes
// the slice of income falling in each bracket at that bracket's marginal
// rate. Each bracket's contribution is rounded at source; the gross tax is
// the rounded sum of contributions. Brackets the income never reaches are
// omitted from the breakdown entirely. The marginal rate is the rate of the
// highest bracket touched.
func ApplyBracketSchedule(taxableIncome money.Money, schedule *domain.BracketSchedule) (money.Money, decimal.Decimal, []domain.BreakdownEntry) {
	// Negative taxable income yields zero tax, not a negative one.
	if taxableIncome.IsNegative() {
		taxableIncome = money.Zero()
	}

	var contributions []money.Money
	var breakdown []domain.BreakdownEntry
	marginalRate := decimal.Zero

	for _, bracket := range schedule.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.LowerBound) {
			break
		}
		upper := taxableIncome
		if !bracket.Unbounded {
			upper = money.Min(taxableIncome, bracket.UpperBound)
		}
		taxedAmount := upper.Sub(bracket.LowerBound)
		contribution := taxedAmount.Mul(bracket.Rate).Round()
		contributions = append(contributions, contribution)
		breakdown = append(breakdown, domain.BreakdownEntry{
			Category: bracketCategory(bracket),
			Amount:   contribution,
			Rate:     bracket.Rate,
		})
		marginalRate = bracket.Rate
	}

	return money.Sum(contributions), marginalRate, breakdown
}

// bracketCategory labels a breakdown entry by the bracket's bounds.
func bracketCategory(b domain.TaxBracket) string {
	if b.Unbounded {
		return fmt.Sprintf("bracket %s and up", b.LowerBound.Format())
	}
	return fmt.Sprintf("bracket %s to %s", b.LowerBound.Format(), b.UpperBound.Format())
}

// ComputeTax derives a full TaxComputationResult from an input and, for
// progressive computations, the resolved schedule. The result is a pure
// function of its arguments; recomputing from the same input yields an
// identical result.
func ComputeTax(input domain.TaxComputationInput, schedule *domain.BracketSchedule) (*domain.TaxComputationResult, error) {
	if err := validateTaxInput(input); err != nil {
		return nil, err
	}

	taxableIncome := input.GrossIncome.Sub(input.Deductions).Sub(input.Exemptions).Round()
	if taxableIncome.IsNegative() {
		taxableIncome = money.Zero()
	}

	var grossTaxOwed money.Money
	var marginalRate decimal.Decimal
	var breakdown []domain.BreakdownEntry

	switch input.TaxType {
	case domain.TaxTypeProgressiveIncome:
		if schedule == nil {
			return nil, &domain.ScheduleNotFoundError{TaxYear: input.TaxYear, FilingStatus: input.FilingStatus}
		}
		grossTaxOwed, marginalRate, breakdown = ApplyBracketSchedule(taxableIncome, schedule)
	case domain.TaxTypeFlatRate:
		grossTaxOwed = taxableIncome.ApplyRate(input.FlatRate)
		marginalRate = input.FlatRate
		breakdown = []domain.BreakdownEntry{{
			Category: "flat rate",
			Amount:   grossTaxOwed,
			Rate:     input.FlatRate,
		}}
	default:
		return nil, &domain.InvalidInputError{
			Field:  "tax_type",
			Value:  string(input.TaxType),
			Reason: "tax type must be progressive_income or flat_rate",
		}
	}

	netTaxOwed := money.Max(money.Zero(), grossTaxOwed.Sub(input.Credits).Round())

	// Effective rate is a ratio, not a currency amount; it is reported at
	// full precision rather than rounded to cents.
	effectiveRate := decimal.Zero
	if taxableIncome.IsPositive() {
		effectiveRate = grossTaxOwed.Decimal.Div(taxableIncome.Decimal)
	}

	result := &domain.TaxComputationResult{
		TaxableIncome: taxableIncome,
		GrossTaxOwed:  grossTaxOwed,
		NetTaxOwed:    netTaxOwed,
		EffectiveRate: effectiveRate,
		MarginalRate:  marginalRate,
		Breakdown:     breakdown,
	}

	balance := netTaxOwed.Sub(input.PreviouslyPaid).Round()
	switch {
	case balance.IsNegative():
		refund := balance.Neg()
		result.RefundAmount = &refund
	case balance.IsPositive():
		due := balance
		result.AmountDue = &due
	}

	return result, nil
}

// validateTaxInput rejects malformed inputs before any computation starts.
func validateTaxInput(input domain.TaxComputationInput) error {
	amounts := []struct {
		field  string
		amount money.Money
	}{
		{"gross_income", input.GrossIncome},
		{"deductions", input.Deductions},
		{"exemptions", input.Exemptions},
		{"credits", input.Credits},
		{"previously_paid", input.PreviouslyPaid},
	}
	for _, a := range amounts {
		if err := validateNonNegative(a.field, a.amount); err != nil {
			return err
		}
	}
	switch input.TaxType {
	case domain.TaxTypeProgressiveIncome:
		if input.FilingStatus == "" {
			return &domain.InvalidInputError{
				Field:  "filing_status",
				Value:  "",
				Reason: "filing status is required for progressive income tax",
			}
		}
	case domain.TaxTypeFlatRate:
		if err := validateRate("flat_rate", input.FlatRate); err != nil {
			return err
		}
	}
	return nil
}
