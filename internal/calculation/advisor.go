package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
)

// advisoryRule inspects a completed computation and optionally produces one
// message. Rules are independent of each other; the registration order below
// is the reporting order, so output is reproducible.
type advisoryRule struct {
	name    string
	warning bool
	apply   func(input domain.TaxComputationInput, result *domain.TaxComputationResult) (string, bool)
}

var advisoryRules = []advisoryRule{
	{
		name:    "balance-to-income",
		warning: true,
		apply: func(input domain.TaxComputationInput, result *domain.TaxComputationResult) (string, bool) {
			if result.AmountDue == nil || !input.GrossIncome.IsPositive() {
				return "", false
			}
			threshold := input.GrossIncome.Mul(decimal.NewFromFloat(0.10))
			if result.AmountDue.GreaterThan(threshold) {
				return fmt.Sprintf("balance due %s exceeds 10%% of gross income", result.AmountDue.Format()), true
			}
			return "", false
		},
	},
	{
		name:    "credits-exceed-gross-tax",
		warning: true,
		apply: func(input domain.TaxComputationInput, result *domain.TaxComputationResult) (string, bool) {
			if input.Credits.GreaterThan(result.GrossTaxOwed) {
				return fmt.Sprintf("credits %s exceed gross tax owed %s; the excess is not refundable", input.Credits.Format(), result.GrossTaxOwed.Format()), true
			}
			return "", false
		},
	},
	{
		name: "deduction-adequacy",
		apply: func(input domain.TaxComputationInput, result *domain.TaxComputationResult) (string, bool) {
			if !input.GrossIncome.IsPositive() {
				return "", false
			}
			threshold := input.GrossIncome.Mul(decimal.NewFromFloat(0.10))
			if input.Deductions.LessThan(threshold) {
				return "deductions are below 10% of gross income; review available deductions", true
			}
			return "", false
		},
	},
	{
		name: "effective-rate",
		apply: func(input domain.TaxComputationInput, result *domain.TaxComputationResult) (string, bool) {
			if result.EffectiveRate.GreaterThan(decimal.NewFromFloat(0.25)) {
				return "effective tax rate is above 25%; consider tax-advantaged contributions", true
			}
			return "", false
		},
	},
}

// Advise runs the fixed advisory rule set over a completed result and returns
// warnings and suggestions in registration order. It does not modify the
// result.
func Advise(input domain.TaxComputationInput, result *domain.TaxComputationResult) (warnings, suggestions []string) {
	for _, rule := range advisoryRules {
		msg, ok := rule.apply(input, result)
		if !ok {
			continue
		}
		if rule.warning {
			warnings = append(warnings, msg)
		} else {
			suggestions = append(suggestions, msg)
		}
	}
	return warnings, suggestions
}
