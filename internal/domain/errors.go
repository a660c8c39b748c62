package domain

import (
	"fmt"
)

// InvalidInputError rejects a computation before it starts: a negative amount
// where non-negativity is required, a non-finite number, or a rate outside
// [0,1]. It carries the offending field and value so the caller can show a
// field-level message.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: field %s=%s: %s", e.Field, e.Value, e.Reason)
}

// ScheduleNotFoundError signals that no bracket schedule exists for the
// requested tax year and filing status. It is distinct from InvalidInputError
// because it indicates a data-availability problem in the schedule provider,
// not a user-input problem; it is never silently defaulted.
type ScheduleNotFoundError struct {
	TaxYear      int
	FilingStatus FilingStatus
}

func (e *ScheduleNotFoundError) Error() string {
	return fmt.Sprintf("no bracket schedule for tax year %d, filing status %q", e.TaxYear, e.FilingStatus)
}
