package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ledgercalc/accounting-calculator/internal/calculation"
	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/dateutil"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// Quick sanity check for proration and allocation behavior across month
// lengths, handy when eyeballing rounding output.
func main() {
	monthly := money.NewFromInt(1000)
	year := 2024
	for m := time.January; m <= time.December; m++ {
		days := dateutil.DaysInMonth(year, m)
		half, err := calculation.Prorate(monthly, days, days/2)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-10s %2d days, half month of %s = %s\n", m, days, monthly.Format(), half.Format())
	}

	fmt.Println()
	result, err := calculation.AllocatePayment(domain.PaymentAllocationRequest{
		Obligations: []domain.Obligation{
			{ObligationID: "INV-001", OutstandingAmount: money.NewFromInt(500)},
			{ObligationID: "INV-002", OutstandingAmount: money.NewFromInt(300)},
			{ObligationID: "INV-003", OutstandingAmount: money.NewFromInt(200)},
		},
		PaymentAmount: money.NewFromInt(750),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Payment of $750.00 across 500/300/200:")
	for _, a := range result.Allocations {
		fmt.Printf("  %s: %s\n", a.ObligationID, a.AllocatedAmount.Format())
	}
	fmt.Printf("  remainder: %s\n", result.Remainder.Format())
}
