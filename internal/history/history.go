// Package history builds the synthetic draw history that every statistic is
// derived from. The history is a documented simulation: uniform draws without
// replacement from a fixed-seed mulberry32 source, so it is identical across runs.
package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/rewired-gh/jackpotlab/internal/logger"
	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/prng"
)

const (
	// DefaultSeed is the internal seed of the simulated history.
	DefaultSeed uint32 = 20220325
	// DefaultTotalDraws is roughly two years of twice-weekly draws.
	DefaultTotalDraws = 200
)

// DefaultStart is the first simulated draw day, a Friday.
var DefaultStart = time.Date(2022, time.March, 25, 0, 0, 0, 0, time.UTC)

// Generate produces total draws, oldest first. Each draw samples main and then
// euro numbers by rejection on duplicates.
func Generate(rules models.GameRules, total int, seed uint32, start time.Time) ([]models.Draw, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if total < 1 {
		return nil, fmt.Errorf("%w: history needs at least 1 draw, got %d", models.ErrInvalidConfig, total)
	}

	src := prng.New(seed)
	draws := make([]models.Draw, total)
	for i := range draws {
		draws[i] = models.Draw{
			Index: i,
			Date:  DrawDate(start, i),
			Main:  drawUnique(src, rules.MainMin, rules.MainMax, rules.MainPicks),
			Euro:  drawUnique(src, rules.EuroMin, rules.EuroMax, rules.EuroPicks),
		}
	}

	logger.Debug("generated draw history", "draws", total, "seed", seed,
		"first", draws[0].Date.Format(time.DateOnly), "last", draws[total-1].Date.Format(time.DateOnly))
	return draws, nil
}

// drawUnique collects n distinct values in [lo,hi], retrying on duplicates.
// Callers guarantee n <= hi-lo+1.
func drawUnique(src prng.Source, lo, hi, n int) []int {
	span := hi - lo + 1
	seen := make([]bool, span)
	picked := make([]int, 0, n)
	for len(picked) < n {
		v := lo + prng.Intn(src, span)
		if seen[v-lo] {
			continue
		}
		seen[v-lo] = true
		picked = append(picked, v)
	}
	sort.Ints(picked)
	return picked
}

// DrawDate returns the date of the draw at index, following a Tuesday/Friday
// cadence from start. A start on any other weekday moves to the next draw day.
func DrawDate(start time.Time, index int) time.Time {
	d := start
	for d.Weekday() != time.Tuesday && d.Weekday() != time.Friday {
		d = d.AddDate(0, 0, 1)
	}
	for i := 0; i < index; i++ {
		if d.Weekday() == time.Tuesday {
			d = d.AddDate(0, 0, 3)
		} else {
			d = d.AddDate(0, 0, 4)
		}
	}
	return d
}
