package calculation

import (
	"fmt"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// AllocatePayment distributes a single payment across obligations greedily,
// strictly in input order; callers establish priority by ordering the slice
// (typically oldest-due-first). There is no implicit sorting by amount or
// date inside the engine, so re-running with the same ordered input always
// yields the same allocation. Any payment left after all obligations are
// covered is reported as the remainder, never discarded; overpayment is an
// expected business scenario, not an error.
func AllocatePayment(req domain.PaymentAllocationRequest) (*domain.PaymentAllocationResult, error) {
	if err := validateNonNegative("payment_amount", req.PaymentAmount); err != nil {
		return nil, err
	}
	for i, ob := range req.Obligations {
		if ob.OutstandingAmount.IsNegative() {
			return nil, &domain.InvalidInputError{
				Field:  fmt.Sprintf("obligations[%d].outstanding_amount", i),
				Value:  ob.OutstandingAmount.String(),
				Reason: "outstanding amount must not be negative",
			}
		}
	}

	remaining := req.PaymentAmount
	allocations := make([]domain.AllocatedObligation, 0, len(req.Obligations))
	for _, ob := range req.Obligations {
		allocated := money.Min(remaining, ob.OutstandingAmount)
		remaining = remaining.Sub(allocated)
		allocations = append(allocations, domain.AllocatedObligation{
			ObligationID:    ob.ObligationID,
			AllocatedAmount: allocated,
		})
	}

	return &domain.PaymentAllocationResult{
		Allocations: allocations,
		Remainder:   remaining,
	}, nil
}
