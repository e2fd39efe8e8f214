package models

import (
	"fmt"
	"time"
)

// Draw is one historical drawing. Main and Euro are stored ascending; their
// order carries no meaning.
type Draw struct {
	Index int       `json:"index" yaml:"index"` // 0 = oldest draw
	Date  time.Time `json:"date" yaml:"date"`
	Main  []int     `json:"main" yaml:"main"`
	Euro  []int     `json:"euro" yaml:"euro"`
}

// Validate checks the draw against the game rules.
func (d *Draw) Validate(rules GameRules) error {
	if d.Index < 0 {
		return fmt.Errorf("draw index must not be negative, got %d", d.Index)
	}
	if err := validateSet("main", d.Main, rules.MainMin, rules.MainMax, rules.MainPicks); err != nil {
		return fmt.Errorf("draw %d: %w", d.Index, err)
	}
	if err := validateSet("euro", d.Euro, rules.EuroMin, rules.EuroMax, rules.EuroPicks); err != nil {
		return fmt.Errorf("draw %d: %w", d.Index, err)
	}
	return nil
}

// MainSum returns the sum of the main numbers.
func (d *Draw) MainSum() int {
	sum := 0
	for _, v := range d.Main {
		sum += v
	}
	return sum
}

// MainEven returns how many main numbers are even.
func (d *Draw) MainEven() int {
	n := 0
	for _, v := range d.Main {
		if v%2 == 0 {
			n++
		}
	}
	return n
}

// EuroLow returns how many euro numbers are at or below cutoff.
func (d *Draw) EuroLow(cutoff int) int {
	n := 0
	for _, v := range d.Euro {
		if v <= cutoff {
			n++
		}
	}
	return n
}

// DistributionSummary aggregates descriptive statistics over a whole draw history.
type DistributionSummary struct {
	TotalDraws      int     `json:"total_draws" yaml:"total_draws"`
	AverageMainSum  float64 `json:"average_main_sum" yaml:"average_main_sum"`
	AverageMainEven float64 `json:"average_main_even" yaml:"average_main_even"`
	AverageEuroLow  float64 `json:"average_euro_low" yaml:"average_euro_low"`
	RecentWindow    int     `json:"recent_window" yaml:"recent_window"`
}
