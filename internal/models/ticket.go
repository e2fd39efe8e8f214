package models

import (
	"fmt"
	"strings"
)

// Ticket is one playable combination. Both sides are ascending.
type Ticket struct {
	Main []int `json:"main" yaml:"main"`
	Euro []int `json:"euro" yaml:"euro"`
}

// Validate checks counts, ranges, uniqueness and ordering.
func (t *Ticket) Validate(rules GameRules) error {
	if err := validateSet("main", t.Main, rules.MainMin, rules.MainMax, rules.MainPicks); err != nil {
		return err
	}
	if err := validateSet("euro", t.Euro, rules.EuroMin, rules.EuroMax, rules.EuroPicks); err != nil {
		return err
	}
	if !isAscending(t.Main) || !isAscending(t.Euro) {
		return fmt.Errorf("ticket numbers must be sorted ascending")
	}
	return nil
}

// String renders the ticket as "03 - 11 - 19 - 27 - 44 / 02 - 09".
func (t Ticket) String() string {
	return joinPadded(t.Main) + " / " + joinPadded(t.Euro)
}

func joinPadded(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%02d", v)
	}
	return strings.Join(parts, " - ")
}

// Recommendation is a precomputed ticket with descriptive metadata.
type Recommendation struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Weights     ScoringWeights `json:"weights" yaml:"weights"`
	Seed        uint32         `json:"seed" yaml:"seed"`
	Ticket      Ticket         `json:"ticket" yaml:"ticket"`
}
