package domain

import (
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// Obligation is one outstanding amount a payment can be applied to. Callers
// establish priority by ordering the slice, typically oldest-due-first.
type Obligation struct {
	ObligationID      string      `json:"obligation_id"`
	OutstandingAmount money.Money `json:"outstanding_amount"`
}

// PaymentAllocationRequest asks for a single payment to be distributed across
// obligations in the order given.
type PaymentAllocationRequest struct {
	Obligations   []Obligation `json:"obligations"`
	PaymentAmount money.Money  `json:"payment_amount"`
}

// AllocatedObligation records how much of the payment went to one obligation.
type AllocatedObligation struct {
	ObligationID    string      `json:"obligation_id"`
	AllocatedAmount money.Money `json:"allocated_amount"`
}

// PaymentAllocationResult holds allocations parallel to the request's
// obligations plus the unapplied remainder. Remainder is positive only when
// the payment exceeded the sum of outstanding amounts; overpayment is an
// expected business scenario, not an error.
type PaymentAllocationResult struct {
	Allocations []AllocatedObligation `json:"allocations"`
	Remainder   money.Money           `json:"remainder"`
}
