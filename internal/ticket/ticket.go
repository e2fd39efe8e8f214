// Package ticket draws playable tickets by weighted sampling without replacement.
//
// Every candidate is weighted by its composite score under the caller's weights.
// Each pick spins a roulette wheel over the remaining pool, then removes the
// winner so it cannot be drawn again. When the remaining pool carries no weight
// at all the pick falls back to a uniform choice from the same source, so a
// full-size ticket is produced even under all-zero weights.
//
// Generate is pure: the same stats, weights and source state yield the same ticket.
package ticket

import (
	"fmt"
	"math"
	"sort"

	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/prng"
	"github.com/rewired-gh/jackpotlab/internal/scoring"
)

// Generate draws rules.MainPicks main numbers and then rules.EuroPicks euro
// numbers from src. Configuration problems are reported before anything is drawn.
func Generate(mainStats, euroStats []models.NumberStat, weights models.ScoringWeights, rules models.GameRules, src prng.Source) (models.Ticket, error) {
	if err := weights.Validate(); err != nil {
		return models.Ticket{}, err
	}
	if err := rules.Validate(); err != nil {
		return models.Ticket{}, err
	}
	if len(mainStats) < rules.MainPicks {
		return models.Ticket{}, fmt.Errorf("%w: main pool has %d numbers, need %d", models.ErrInvalidConfig, len(mainStats), rules.MainPicks)
	}
	if len(euroStats) < rules.EuroPicks {
		return models.Ticket{}, fmt.Errorf("%w: euro pool has %d numbers, need %d", models.ErrInvalidConfig, len(euroStats), rules.EuroPicks)
	}

	if err := validatePool("main", mainStats, rules.MainMin, rules.MainMax); err != nil {
		return models.Ticket{}, err
	}
	if err := validatePool("euro", euroStats, rules.EuroMin, rules.EuroMax); err != nil {
		return models.Ticket{}, err
	}

	mainPool := newPool(mainStats, weights)
	euroPool := newPool(euroStats, weights)
	return models.Ticket{
		Main: mainPool.drawN(rules.MainPicks, src),
		Euro: euroPool.drawN(rules.EuroPicks, src),
	}, nil
}

// Probabilities returns the chance of each stat being chosen by the first pick
// under weights, in the order of stats. Zero total weight yields a uniform split.
func Probabilities(stats []models.NumberStat, weights models.ScoringWeights) []float64 {
	p := newPool(stats, weights)
	out := make([]float64, len(p.weights))
	if len(out) == 0 {
		return out
	}

	total := p.total()
	for i, w := range p.weights {
		if total <= 0 {
			out[i] = 1 / float64(len(out))
			continue
		}
		out[i] = w / total
	}
	return out
}

// validatePool rejects stats that could not have come from the range lo..hi or
// whose signals fall outside [0,1]. Sampling never starts on such a pool.
func validatePool(kind string, stats []models.NumberStat, lo, hi int) error {
	seen := make(map[int]bool, len(stats))
	for _, s := range stats {
		if s.Value < lo || s.Value > hi {
			return fmt.Errorf("%w: %s number %d outside range %d..%d", models.ErrInvalidConfig, kind, s.Value, lo, hi)
		}
		if seen[s.Value] {
			return fmt.Errorf("%w: %s number %d appears twice in the pool", models.ErrInvalidConfig, kind, s.Value)
		}
		seen[s.Value] = true

		signals := []struct {
			name  string
			value float64
		}{
			{"hit rate", s.HitRate},
			{"recent weight", s.RecentWeight},
			{"overdue weight", s.OverdueWeight},
			{"noise", s.Noise},
		}
		for _, sig := range signals {
			if math.IsNaN(sig.value) || sig.value < 0 || sig.value > 1 {
				return fmt.Errorf("%w: %s number %d has %s %v outside [0,1]", models.ErrInvalidConfig, kind, s.Value, sig.name, sig.value)
			}
		}
	}
	return nil
}

// pool is the mutable sampling arena: parallel value and weight slices that
// shrink by one entry per pick.
type pool struct {
	values  []int
	weights []float64
}

func newPool(stats []models.NumberStat, weights models.ScoringWeights) *pool {
	p := &pool{
		values:  make([]int, len(stats)),
		weights: scoring.Score(stats, weights),
	}
	for i, s := range stats {
		p.values[i] = s.Value
	}
	return p
}

// total sums the remaining weight from scratch so removals never accumulate drift.
func (p *pool) total() float64 {
	var sum float64
	for _, w := range p.weights {
		sum += w
	}
	return sum
}

// pick selects one index. Exactly one value is consumed from src per call.
func (p *pool) pick(src prng.Source) int {
	total := p.total()
	r := src.Next()
	if total > 0 {
		target := r * total
		var acc float64
		lastPositive := -1
		for i, w := range p.weights {
			if w > 0 {
				lastPositive = i
			}
			acc += w
			if target < acc {
				return i
			}
		}
		// Rounding can leave target at the very top of the wheel.
		if lastPositive >= 0 {
			return lastPositive
		}
	}

	i := int(r * float64(len(p.values)))
	if i >= len(p.values) {
		i = len(p.values) - 1
	}
	return i
}

func (p *pool) remove(i int) {
	p.values = append(p.values[:i], p.values[i+1:]...)
	p.weights = append(p.weights[:i], p.weights[i+1:]...)
}

func (p *pool) drawN(n int, src prng.Source) []int {
	picked := make([]int, 0, n)
	for k := 0; k < n; k++ {
		i := p.pick(src)
		picked = append(picked, p.values[i])
		p.remove(i)
	}
	sort.Ints(picked)
	return picked
}
