package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercalc/accounting-calculator/internal/calculation"
	"github.com/ledgercalc/accounting-calculator/internal/config"
	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/internal/output"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// TestEndToEndComputation loads a schedule catalog from disk and runs the
// full pipeline: resolution, bracket computation, advisory annotation, and
// formatting.
func TestEndToEndComputation(t *testing.T) {
	store, err := config.LoadFromFile("../testdata/schedules.yaml")
	require.NoError(t, err)

	engine := calculation.NewTaxEngine(store)
	result, err := engine.Compute(domain.TaxComputationInput{
		GrossIncome:    money.NewFromInt(75000),
		Deductions:     money.NewFromInt(13850),
		Credits:        money.NewFromInt(500),
		PreviouslyPaid: money.NewFromInt(8000),
		TaxType:        domain.TaxTypeProgressiveIncome,
		TaxYear:        2023,
		FilingStatus:   domain.FilingStatusSingle,
	})
	require.NoError(t, err)

	// taxable = 75000 - 13850 = 61150
	// 11000*0.10 + 33725*0.12 + (61150-44725)*0.22 = 1100 + 4047 + 3613.50
	assert.Equal(t, "61150.00", result.TaxableIncome.String())
	assert.Equal(t, "8760.50", result.GrossTaxOwed.String())
	assert.Equal(t, "8260.50", result.NetTaxOwed.String())
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.22)))
	require.NotNil(t, result.AmountDue)
	assert.Equal(t, "260.50", result.AmountDue.String())
	assert.Nil(t, result.RefundAmount)

	text, err := output.ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Gross tax owed:  $8760.50")
	assert.Contains(t, string(text), "Amount due:      $260.50")

	jsonBytes, err := output.JSONFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), "\"net_tax_owed\"")
}

// TestEndToEndScheduleNotFound verifies the lookup failure surfaces as a
// distinct error through the whole stack.
func TestEndToEndScheduleNotFound(t *testing.T) {
	store, err := config.LoadFromFile("../testdata/schedules.yaml")
	require.NoError(t, err)

	engine := calculation.NewTaxEngine(store)
	_, err = engine.Compute(domain.TaxComputationInput{
		GrossIncome:  money.NewFromInt(50000),
		TaxType:      domain.TaxTypeProgressiveIncome,
		TaxYear:      2031,
		FilingStatus: domain.FilingStatusSingle,
	})

	var notFound *domain.ScheduleNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 2031, notFound.TaxYear)
}
