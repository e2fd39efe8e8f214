// Package models defines the core domain entities for the jackpotlab application.
// These models represent simulated draws, per-number statistics, scoring weights
// and generated tickets. All models include built-in validation so that invalid
// configuration is rejected before any analysis is built.
//
// Terminology:
//   - Main number: one of the primary values drawn from the larger range (1-50).
//   - Euro number: one of the secondary values drawn from the smaller range (1-12).
package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration failure so callers can
// tell programmer errors apart from anything else with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// GameRules describes the number ranges and how many values are drawn from each.
type GameRules struct {
	MainMin   int `json:"main_min" yaml:"main_min"`
	MainMax   int `json:"main_max" yaml:"main_max"`
	MainPicks int `json:"main_picks" yaml:"main_picks"`
	EuroMin   int `json:"euro_min" yaml:"euro_min"`
	EuroMax   int `json:"euro_max" yaml:"euro_max"`
	EuroPicks int `json:"euro_picks" yaml:"euro_picks"`
}

// DefaultRules returns the 5 of 1-50 plus 2 of 1-12 format.
func DefaultRules() GameRules {
	return GameRules{
		MainMin:   1,
		MainMax:   50,
		MainPicks: 5,
		EuroMin:   1,
		EuroMax:   12,
		EuroPicks: 2,
	}
}

// MainSpan returns the number of candidate main values.
func (r GameRules) MainSpan() int {
	return r.MainMax - r.MainMin + 1
}

// EuroSpan returns the number of candidate euro values.
func (r GameRules) EuroSpan() int {
	return r.EuroMax - r.EuroMin + 1
}

// EuroLowCutoff is the largest euro value counted as "low" (lower half of the range).
func (r GameRules) EuroLowCutoff() int {
	return r.EuroMin + (r.EuroSpan()-1)/2
}

// Validate checks that both ranges are well formed and large enough for the picks.
func (r GameRules) Validate() error {
	if r.MainMin < 1 {
		return fmt.Errorf("%w: main range must start at 1 or above, got %d", ErrInvalidConfig, r.MainMin)
	}
	if r.MainMax < r.MainMin {
		return fmt.Errorf("%w: main range %d..%d is empty", ErrInvalidConfig, r.MainMin, r.MainMax)
	}
	if r.MainPicks < 1 {
		return fmt.Errorf("%w: main picks must be at least 1", ErrInvalidConfig)
	}
	if r.MainPicks > r.MainSpan() {
		return fmt.Errorf("%w: cannot pick %d main numbers from %d candidates", ErrInvalidConfig, r.MainPicks, r.MainSpan())
	}
	if r.EuroMin < 1 {
		return fmt.Errorf("%w: euro range must start at 1 or above, got %d", ErrInvalidConfig, r.EuroMin)
	}
	if r.EuroMax < r.EuroMin {
		return fmt.Errorf("%w: euro range %d..%d is empty", ErrInvalidConfig, r.EuroMin, r.EuroMax)
	}
	if r.EuroPicks < 1 {
		return fmt.Errorf("%w: euro picks must be at least 1", ErrInvalidConfig)
	}
	if r.EuroPicks > r.EuroSpan() {
		return fmt.Errorf("%w: cannot pick %d euro numbers from %d candidates", ErrInvalidConfig, r.EuroPicks, r.EuroSpan())
	}
	return nil
}

// validateSet checks count, bounds and uniqueness of one side of a draw or ticket.
func validateSet(kind string, values []int, lo, hi, want int) error {
	if len(values) != want {
		return fmt.Errorf("%s numbers: expected %d values, got %d", kind, want, len(values))
	}
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if v < lo || v > hi {
			return fmt.Errorf("%s number %d outside range %d..%d", kind, v, lo, hi)
		}
		if seen[v] {
			return fmt.Errorf("%s number %d appears twice", kind, v)
		}
		seen[v] = true
	}
	return nil
}

func isAscending(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}
	return true
}
