package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

func obligations(amounts ...float64) []domain.Obligation {
	obs := make([]domain.Obligation, len(amounts))
	for i, a := range amounts {
		obs[i] = domain.Obligation{
			ObligationID:      string(rune('A' + i)),
			OutstandingAmount: money.NewFromFloat(a),
		}
	}
	return obs
}

func TestAllocatePayment(t *testing.T) {
	tests := []struct {
		name              string
		outstanding       []float64
		payment           float64
		expectedAllocs    []string
		expectedRemainder string
	}{
		{
			name:              "partial coverage in order",
			outstanding:       []float64{500, 300, 200},
			payment:           750,
			expectedAllocs:    []string{"500.00", "250.00", "0.00"},
			expectedRemainder: "0.00",
		},
		{
			name:              "exact coverage",
			outstanding:       []float64{500, 300, 200},
			payment:           1000,
			expectedAllocs:    []string{"500.00", "300.00", "200.00"},
			expectedRemainder: "0.00",
		},
		{
			name:              "overpayment reports remainder",
			outstanding:       []float64{500, 300},
			payment:           1000,
			expectedAllocs:    []string{"500.00", "300.00"},
			expectedRemainder: "200.00",
		},
		{
			name:              "payment smaller than first obligation",
			outstanding:       []float64{500, 300},
			payment:           120.50,
			expectedAllocs:    []string{"120.50", "0.00"},
			expectedRemainder: "0.00",
		},
		{
			name:              "no obligations",
			outstanding:       nil,
			payment:           250,
			expectedAllocs:    nil,
			expectedRemainder: "250.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AllocatePayment(domain.PaymentAllocationRequest{
				Obligations:   obligations(tt.outstanding...),
				PaymentAmount: money.NewFromFloat(tt.payment),
			})
			require.NoError(t, err)

			require.Len(t, result.Allocations, len(tt.expectedAllocs))
			for i, expected := range tt.expectedAllocs {
				assert.Equal(t, expected, result.Allocations[i].AllocatedAmount.String(), "allocation %d", i)
			}
			assert.Equal(t, tt.expectedRemainder, result.Remainder.Round().String())
		})
	}
}

// TestAllocationConservation tests that every cent of the payment is
// accounted for: allocations plus remainder equal the payment, and the total
// allocated never exceeds either the payment or the total outstanding.
func TestAllocationConservation(t *testing.T) {
	req := domain.PaymentAllocationRequest{
		Obligations:   obligations(123.45, 67.89, 500.01, 0, 42.42),
		PaymentAmount: money.NewFromFloat(400.00),
	}

	result, err := AllocatePayment(req)
	require.NoError(t, err)

	totalAllocated := money.Zero()
	for _, a := range result.Allocations {
		totalAllocated = totalAllocated.Add(a.AllocatedAmount)
	}
	totalOutstanding := money.Zero()
	for _, ob := range req.Obligations {
		totalOutstanding = totalOutstanding.Add(ob.OutstandingAmount)
	}

	assert.True(t, totalAllocated.Add(result.Remainder).Equal(req.PaymentAmount),
		"allocated %s + remainder %s != payment %s", totalAllocated, result.Remainder, req.PaymentAmount)
	assert.True(t, totalAllocated.Equal(money.Min(req.PaymentAmount, totalOutstanding)))
}

// TestAllocationDeterministic tests that allocation is order-sensitive and
// repeatable: the engine never re-sorts obligations internally.
func TestAllocationDeterministic(t *testing.T) {
	req := domain.PaymentAllocationRequest{
		Obligations: []domain.Obligation{
			{ObligationID: "newest-but-first", OutstandingAmount: money.NewFromInt(100)},
			{ObligationID: "largest", OutstandingAmount: money.NewFromInt(900)},
		},
		PaymentAmount: money.NewFromInt(150),
	}

	first, err := AllocatePayment(req)
	require.NoError(t, err)
	second, err := AllocatePayment(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// The first-listed obligation is paid first regardless of size.
	assert.Equal(t, "100.00", first.Allocations[0].AllocatedAmount.String())
	assert.Equal(t, "50.00", first.Allocations[1].AllocatedAmount.String())
}

func TestAllocatePaymentValidation(t *testing.T) {
	_, err := AllocatePayment(domain.PaymentAllocationRequest{
		PaymentAmount: money.NewFromInt(-5),
	})
	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "payment_amount", invalid.Field)

	_, err = AllocatePayment(domain.PaymentAllocationRequest{
		Obligations:   []domain.Obligation{{ObligationID: "X", OutstandingAmount: money.NewFromInt(-1)}},
		PaymentAmount: money.NewFromInt(100),
	})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "obligations[0].outstanding_amount", invalid.Field)
}
