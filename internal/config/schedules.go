// Package config loads and validates bracket schedule catalogs. The store is
// the schedule lookup collaborator the computation engines consume; it owns
// all jurisdiction data so that tax law changes never touch the engines.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ledgercalc/accounting-calculator/internal/domain"
	"github.com/ledgercalc/accounting-calculator/pkg/money"
)

// scheduleFile is the YAML document shape for a schedule catalog.
type scheduleFile struct {
	Schedules []scheduleConfig `yaml:"schedules"`
}

type scheduleConfig struct {
	TaxYear      int             `yaml:"tax_year"`
	FilingStatus string          `yaml:"filing_status"`
	Brackets     []bracketConfig `yaml:"brackets"`
}

type bracketConfig struct {
	LowerBound float64 `yaml:"lower_bound"`
	UpperBound float64 `yaml:"upper_bound"`
	Unbounded  bool    `yaml:"unbounded"`
	Rate       float64 `yaml:"rate"`
}

type scheduleKey struct {
	taxYear int
	status  domain.FilingStatus
}

// ScheduleStore holds validated bracket schedules keyed by tax year and
// filing status. It is immutable after loading, so concurrent resolution
// needs no locking.
type ScheduleStore struct {
	schedules map[scheduleKey]*domain.BracketSchedule
}

// NewScheduleStore creates an empty store.
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{schedules: make(map[scheduleKey]*domain.BracketSchedule)}
}

// LoadFromFile loads a schedule catalog from a YAML file.
func LoadFromFile(filename string) (*ScheduleStore, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	store, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules from %s: %w", filename, err)
	}
	return store, nil
}

// LoadFromBytes parses and validates a YAML schedule catalog.
func LoadFromBytes(data []byte) (*ScheduleStore, error) {
	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Schedules) == 0 {
		return nil, fmt.Errorf("no schedules provided")
	}

	store := NewScheduleStore()
	for i, sc := range file.Schedules {
		schedule, err := buildSchedule(sc)
		if err != nil {
			return nil, fmt.Errorf("schedule %d validation failed: %w", i, err)
		}
		key := scheduleKey{taxYear: schedule.TaxYear, status: schedule.FilingStatus}
		if _, exists := store.schedules[key]; exists {
			return nil, fmt.Errorf("schedule %d: duplicate schedule for year %d, status %q", i, schedule.TaxYear, schedule.FilingStatus)
		}
		store.schedules[key] = schedule
	}
	return store, nil
}

// Add validates a schedule and registers it in the store, replacing any
// schedule already registered under the same key.
func (s *ScheduleStore) Add(schedule *domain.BracketSchedule) error {
	if err := ValidateSchedule(schedule); err != nil {
		return err
	}
	s.schedules[scheduleKey{taxYear: schedule.TaxYear, status: schedule.FilingStatus}] = schedule
	return nil
}

// Resolve returns the schedule for a tax year and filing status. A missing
// key is a data-availability problem and surfaces as a distinct
// *domain.ScheduleNotFoundError; it is never silently defaulted, since
// defaulting would hide stale catalog data.
func (s *ScheduleStore) Resolve(taxYear int, status domain.FilingStatus) (*domain.BracketSchedule, error) {
	schedule, ok := s.schedules[scheduleKey{taxYear: taxYear, status: status}]
	if !ok {
		return nil, &domain.ScheduleNotFoundError{TaxYear: taxYear, FilingStatus: status}
	}
	return schedule, nil
}

// buildSchedule converts a parsed schedule config into a validated domain
// schedule.
func buildSchedule(sc scheduleConfig) (*domain.BracketSchedule, error) {
	if sc.TaxYear == 0 {
		return nil, fmt.Errorf("tax year is required")
	}
	if sc.FilingStatus == "" {
		return nil, fmt.Errorf("filing status is required")
	}
	brackets := make([]domain.TaxBracket, 0, len(sc.Brackets))
	for _, bc := range sc.Brackets {
		brackets = append(brackets, domain.TaxBracket{
			LowerBound: money.NewFromFloat(bc.LowerBound),
			UpperBound: money.NewFromFloat(bc.UpperBound),
			Unbounded:  bc.Unbounded,
			Rate:       decimal.NewFromFloat(bc.Rate),
		})
	}
	schedule := &domain.BracketSchedule{
		TaxYear:      sc.TaxYear,
		FilingStatus: domain.FilingStatus(sc.FilingStatus),
		Brackets:     brackets,
	}
	if err := ValidateSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ValidateSchedule checks the structural invariants of a bracket schedule:
// brackets sorted ascending and contiguous (each upper bound equals the next
// lower bound), the first bracket starting at zero, rates within [0,1], and
// exactly the last bracket unbounded so the schedule covers [0, inf).
func ValidateSchedule(schedule *domain.BracketSchedule) error {
	if len(schedule.Brackets) == 0 {
		return fmt.Errorf("schedule must have at least one bracket")
	}
	one := decimal.NewFromInt(1)
	for i, b := range schedule.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d: rate %s outside [0,1]", i, b.Rate)
		}
		last := i == len(schedule.Brackets)-1
		if b.Unbounded != last {
			if b.Unbounded {
				return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
			}
			return fmt.Errorf("bracket %d: last bracket must be unbounded", i)
		}
		if i == 0 {
			if !b.LowerBound.IsZero() {
				return fmt.Errorf("bracket 0: schedule must start at zero, got %s", b.LowerBound)
			}
		} else {
			prev := schedule.Brackets[i-1]
			if !b.LowerBound.Equal(prev.UpperBound) {
				return fmt.Errorf("bracket %d: lower bound %s does not meet previous upper bound %s", i, b.LowerBound, prev.UpperBound)
			}
		}
		if !b.Unbounded && b.UpperBound.LessThanOrEqual(b.LowerBound) {
			return fmt.Errorf("bracket %d: upper bound %s must exceed lower bound %s", i, b.UpperBound, b.LowerBound)
		}
	}
	return nil
}
