package calculation

import (
	"github.com/ledgercalc/accounting-calculator/internal/domain"
)

// ScheduleResolver resolves the bracket schedule for a tax year and filing
// status. Tax law changes independently of this engine, so schedules are
// always supplied by a collaborator; the engine never hardcodes jurisdiction
// data. A missing key must surface as *domain.ScheduleNotFoundError, never a
// silently substituted schedule.
type ScheduleResolver interface {
	Resolve(taxYear int, status domain.FilingStatus) (*domain.BracketSchedule, error)
}

// TaxEngine orchestrates a full tax computation: schedule resolution, the
// bracket or flat-rate computation, and advisory annotation.
type TaxEngine struct {
	Schedules ScheduleResolver
	Logger    Logger
}

// NewTaxEngine creates a tax engine backed by the given schedule resolver.
func NewTaxEngine(schedules ScheduleResolver) *TaxEngine {
	return &TaxEngine{
		Schedules: schedules,
		Logger:    NopLogger{},
	}
}

// Compute runs the full pipeline for one input and returns the annotated
// result. It is pure apart from logging: no shared state is read or written,
// so concurrent calls are safe and identical inputs yield identical results.
func (e *TaxEngine) Compute(input domain.TaxComputationInput) (*domain.TaxComputationResult, error) {
	var schedule *domain.BracketSchedule
	if input.TaxType == domain.TaxTypeProgressiveIncome {
		resolved, err := e.Schedules.Resolve(input.TaxYear, input.FilingStatus)
		if err != nil {
			e.Logger.Warnf("schedule resolution failed for year=%d status=%s: %v", input.TaxYear, input.FilingStatus, err)
			return nil, err
		}
		schedule = resolved
	}

	result, err := ComputeTax(input, schedule)
	if err != nil {
		return nil, err
	}

	result.Warnings, result.Suggestions = Advise(input, result)
	e.Logger.Debugf("computed tax: taxable=%s gross=%s net=%s", result.TaxableIncome, result.GrossTaxOwed, result.NetTaxOwed)
	return result, nil
}
