package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/dateutil"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

func TestProrate(t *testing.T) {
	tests := []struct {
		name            string
		periodAmount    string
		totalPeriodDays int
		usedDays        int
		expected        string
	}{
		{"half of a 30-day month", "1000", 30, 15, "500.00"},
		{"full period", "1000", 30, 30, "1000.00"},
		{"zero days used", "1000", 30, 0, "0.00"},
		{"single day of a 31-day month", "310.00", 31, 1, "10.00"},
		{"uneven split rounds to cents", "100", 31, 10, "32.26"}, // 100/31*10 = 32.258...
		{"annual amount over leap year", "3660", 366, 61, "610.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := money.NewFromString(tt.periodAmount)
			require.NoError(t, err)
			prorated, err := Prorate(amount, tt.totalPeriodDays, tt.usedDays)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prorated.String())
		})
	}
}

// TestProrateWithCalendarHelpers tests the intended pairing: callers derive
// day counts from the calendar, the proration itself stays calendar-free.
func TestProrateWithCalendarHelpers(t *testing.T) {
	annual := money.NewFromInt(73200)
	prorated, err := Prorate(annual, dateutil.DaysInYear(2024), 90)
	require.NoError(t, err)
	assert.Equal(t, "18000.00", prorated.String()) // 73200/366*90
}

func TestProrateRejectsContractViolations(t *testing.T) {
	tests := []struct {
		name            string
		periodAmount    money.Money
		totalPeriodDays int
		usedDays        int
		field           string
	}{
		{"used days exceed period", money.NewFromInt(1000), 30, 31, "used_days"},
		{"negative used days", money.NewFromInt(1000), 30, -1, "used_days"},
		{"zero period days", money.NewFromInt(1000), 0, 0, "total_period_days"},
		{"negative period amount", money.NewFromInt(-1000), 30, 15, "period_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prorate(tt.periodAmount, tt.totalPeriodDays, tt.usedDays)
			var invalid *domain.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}
