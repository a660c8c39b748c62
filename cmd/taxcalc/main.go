// Command taxcalc computes a tax liability from a bracket schedule catalog
// and command-line inputs. It is a thin shell over the calculation engines;
// no computation logic lives here.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgercalc/accounting-calculator/internal/calculation"
	"github.com/ledgercalc/accounting-calculator/internal/config"
	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/internal/output"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taxcalc",
		Short:         "Tax and invoice computation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newComputeCmd())
	return root
}

type computeFlags struct {
	schedulesFile  string
	taxYear        int
	filingStatus   string
	taxType        string
	flatRate       float64
	grossIncome    string
	deductions     string
	exemptions     string
	credits        string
	previouslyPaid string
	format         string
}

func newComputeCmd() *cobra.Command {
	flags := &computeFlags{}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a tax liability from a schedule catalog and inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.schedulesFile, "schedules", "", "YAML bracket schedule catalog (required for progressive computations)")
	cmd.Flags().IntVar(&flags.taxYear, "year", 0, "tax year")
	cmd.Flags().StringVar(&flags.filingStatus, "status", "", "filing status (single, married_jointly, head_of_household)")
	cmd.Flags().StringVar(&flags.taxType, "type", "progressive_income", "tax type (progressive_income or flat_rate)")
	cmd.Flags().Float64Var(&flags.flatRate, "flat-rate", 0, "rate for flat_rate computations, within [0,1]")
	cmd.Flags().StringVar(&flags.grossIncome, "income", "0", "gross income")
	cmd.Flags().StringVar(&flags.deductions, "deductions", "0", "total deductions")
	cmd.Flags().StringVar(&flags.exemptions, "exemptions", "0", "total exemptions")
	cmd.Flags().StringVar(&flags.credits, "credits", "0", "total tax credits")
	cmd.Flags().StringVar(&flags.previouslyPaid, "paid", "0", "tax already paid or withheld")
	cmd.Flags().StringVar(&flags.format, "format", "console", "output format (console or json)")
	return cmd
}

func runCompute(cmd *cobra.Command, flags *computeFlags) error {
	input, err := buildInput(flags)
	if err != nil {
		return err
	}

	store := config.NewScheduleStore()
	if flags.schedulesFile != "" {
		store, err = config.LoadFromFile(flags.schedulesFile)
		if err != nil {
			return err
		}
	}

	formatter := output.GetFormatterByName(flags.format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", flags.format)
	}

	engine := calculation.NewTaxEngine(store)
	result, err := engine.Compute(input)
	if err != nil {
		return err
	}

	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func buildInput(flags *computeFlags) (domain.TaxComputationInput, error) {
	input := domain.TaxComputationInput{
		TaxType:      domain.TaxType(flags.taxType),
		TaxYear:      flags.taxYear,
		FilingStatus: domain.FilingStatus(flags.filingStatus),
		FlatRate:     decimal.NewFromFloat(flags.flatRate),
	}
	fields := []struct {
		name  string
		value string
		dst   *money.Money
	}{
		{"income", flags.grossIncome, &input.GrossIncome},
		{"deductions", flags.deductions, &input.Deductions},
		{"exemptions", flags.exemptions, &input.Exemptions},
		{"credits", flags.credits, &input.Credits},
		{"paid", flags.previouslyPaid, &input.PreviouslyPaid},
	}
	for _, f := range fields {
		amount, err := money.NewFromString(f.value)
		if err != nil {
			return domain.TaxComputationInput{}, fmt.Errorf("invalid --%s value %q: %w", f.name, f.value, err)
		}
		*f.dst = amount
	}
	return input, nil
}
