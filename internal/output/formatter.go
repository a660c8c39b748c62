package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(result *domain.TaxComputationResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// ConsoleFormatter renders a tax computation result as a plain-text summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Taxable income:  %s\n", FormatCurrency(result.TaxableIncome))
	fmt.Fprintf(&b, "Gross tax owed:  %s\n", FormatCurrency(result.GrossTaxOwed))
	fmt.Fprintf(&b, "Net tax owed:    %s\n", FormatCurrency(result.NetTaxOwed))
	fmt.Fprintf(&b, "Effective rate:  %s\n", FormatRate(result.EffectiveRate))
	fmt.Fprintf(&b, "Marginal rate:   %s\n", FormatRate(result.MarginalRate))
	if len(result.Breakdown) > 0 {
		b.WriteString("Breakdown:\n")
		for _, entry := range result.Breakdown {
			fmt.Fprintf(&b, "  %-32s %12s at %s\n", entry.Category, FormatCurrency(entry.Amount), FormatRate(entry.Rate))
		}
	}
	switch {
	case result.RefundAmount != nil:
		fmt.Fprintf(&b, "Refund:          %s\n", FormatCurrency(*result.RefundAmount))
	case result.AmountDue != nil:
		fmt.Fprintf(&b, "Amount due:      %s\n", FormatCurrency(*result.AmountDue))
	default:
		b.WriteString("Balance settled in full.\n")
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}
	for _, s := range result.Suggestions {
		fmt.Fprintf(&b, "Suggestion: %s\n", s)
	}
	return []byte(b.String()), nil
}

// JSONFormatter renders a tax computation result as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
