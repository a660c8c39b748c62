package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// Prorate scales a periodic amount to a partial period by day count:
// periodAmount * usedDays / totalPeriodDays, rounded to cents. Callers supply
// the actual calendar day counts (28-31 for a month, 365/366 for a year); the
// function performs no calendar math of its own. A usedDays greater than
// totalPeriodDays is a caller contract violation and is rejected, not
// clamped.
func Prorate(periodAmount money.Money, totalPeriodDays, usedDays int) (money.Money, error) {
	if err := validateNonNegative("period_amount", periodAmount); err != nil {
		return money.Zero(), err
	}
	if totalPeriodDays <= 0 {
		return money.Zero(), &domain.InvalidInputError{
			Field:  "total_period_days",
			Value:  fmt.Sprintf("%d", totalPeriodDays),
			Reason: "total period days must be positive",
		}
	}
	if usedDays < 0 {
		return money.Zero(), &domain.InvalidInputError{
			Field:  "used_days",
			Value:  fmt.Sprintf("%d", usedDays),
			Reason: "used days must not be negative",
		}
	}
	if usedDays > totalPeriodDays {
		return money.Zero(), &domain.InvalidInputError{
			Field:  "used_days",
			Value:  fmt.Sprintf("%d", usedDays),
			Reason: fmt.Sprintf("used days exceeds total period days (%d)", totalPeriodDays),
		}
	}
	return periodAmount.
		Mul(decimal.NewFromInt(int64(usedDays))).
		Div(decimal.NewFromInt(int64(totalPeriodDays))).
		Round(), nil
}
