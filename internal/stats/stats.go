// Package stats aggregates a draw history into one NumberStat per candidate
// value. Aggregation is a single pass over the history with per-value state,
// so it costs O(draws + range) rather than O(draws × range).
package stats

import (
	"fmt"

	"github.com/rewired-gh/jackpotlab/internal/models"
)

// Picker selects which side of a draw (main or euro) is aggregated.
type Picker func(d models.Draw) []int

// MainNumbers picks the main numbers of a draw.
func MainNumbers(d models.Draw) []int { return d.Main }

// EuroNumbers picks the euro numbers of a draw.
func EuroNumbers(d models.Draw) []int { return d.Euro }

// counter is the running per-value state of the single pass.
type counter struct {
	hits    int
	last    int // index of the most recent containing draw, -1 if never seen
	longest int
	recent  int
}

// Aggregate computes statistics for every value in [lo,hi]. recentWindow is the
// number of trailing draws counted as "recent" and must lie in 1..len(draws).
// Noise and CompositeScore are left zero for the scoring engine.
func Aggregate(draws []models.Draw, lo, hi, recentWindow int, pick Picker) ([]models.NumberStat, error) {
	total := len(draws)
	if total == 0 {
		return nil, fmt.Errorf("%w: draw history is empty", models.ErrInvalidConfig)
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: range %d..%d is empty", models.ErrInvalidConfig, lo, hi)
	}
	if recentWindow < 1 || recentWindow > total {
		return nil, fmt.Errorf("%w: recent window %d must be within 1..%d", models.ErrInvalidConfig, recentWindow, total)
	}

	counters := make([]counter, hi-lo+1)
	for i := range counters {
		counters[i].last = -1
	}

	// seenIn[k] is the position of the last draw that contained lo+k, so a value
	// repeated within one draw is caught without a per-draw allocation.
	seenIn := make([]int, len(counters))
	for k := range seenIn {
		seenIn[k] = -1
	}

	recentStart := total - recentWindow
	for i, d := range draws {
		for _, v := range pick(d) {
			if v < lo || v > hi {
				return nil, fmt.Errorf("%w: draw %d: value %d outside range %d..%d", models.ErrInvalidConfig, d.Index, v, lo, hi)
			}
			if seenIn[v-lo] == i {
				return nil, fmt.Errorf("%w: draw %d: value %d appears twice", models.ErrInvalidConfig, d.Index, v)
			}
			seenIn[v-lo] = i
			c := &counters[v-lo]
			// Absence run since the previous hit (or since the start of history).
			if gap := i - c.last - 1; gap > c.longest {
				c.longest = gap
			}
			c.hits++
			c.last = i
			if i >= recentStart {
				c.recent++
			}
		}
	}

	result := make([]models.NumberStat, len(counters))
	for k, c := range counters {
		lastSeen := total - 1 - c.last
		longest := c.longest
		if lastSeen > longest {
			longest = lastSeen
		}
		result[k] = models.NumberStat{
			Value:            lo + k,
			Hits:             c.hits,
			HitRate:          float64(c.hits) / float64(total),
			RecentHits:       c.recent,
			RecentWeight:     float64(c.recent) / float64(recentWindow),
			LastSeenDrawsAgo: lastSeen,
			LongestGap:       longest,
			OverdueWeight:    OverdueWeight(total, c.hits, lastSeen),
		}
	}
	return result, nil
}

// OverdueWeight compares the current absence with the value's own average gap
// (total / hits). Being absent for exactly one average gap scores 0; being
// absent for two or more average gaps scores 1. Never-seen values score 1.
func OverdueWeight(total, hits, lastSeen int) float64 {
	if hits == 0 {
		return 1.0
	}
	avgGap := float64(total) / float64(hits)
	return clamp01((float64(lastSeen) - avgGap) / avgGap)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MainStats aggregates the main numbers of draws under rules.
func MainStats(draws []models.Draw, rules models.GameRules, recentWindow int) ([]models.NumberStat, error) {
	return Aggregate(draws, rules.MainMin, rules.MainMax, recentWindow, MainNumbers)
}

// EuroStats aggregates the euro numbers of draws under rules.
func EuroStats(draws []models.Draw, rules models.GameRules, recentWindow int) ([]models.NumberStat, error) {
	return Aggregate(draws, rules.EuroMin, rules.EuroMax, recentWindow, EuroNumbers)
}

// Summarize computes the distribution summary for the whole history.
func Summarize(draws []models.Draw, rules models.GameRules, recentWindow int) models.DistributionSummary {
	summary := models.DistributionSummary{
		TotalDraws:   len(draws),
		RecentWindow: recentWindow,
	}
	if len(draws) == 0 {
		return summary
	}

	cutoff := rules.EuroLowCutoff()
	var sum, even, low int
	for i := range draws {
		sum += draws[i].MainSum()
		even += draws[i].MainEven()
		low += draws[i].EuroLow(cutoff)
	}
	n := float64(len(draws))
	summary.AverageMainSum = float64(sum) / n
	summary.AverageMainEven = float64(even) / n
	summary.AverageEuroLow = float64(low) / n
	return summary
}
