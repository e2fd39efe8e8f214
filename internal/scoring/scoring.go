// Package scoring turns per-number statistics into a single composite score.
//
// Each number is scored with a four-factor weighted average:
//
//	score = (wf·hitNorm + wm·recentWeight + wo·overdueWeight + wr·noise) / (wf + wm + wo + wr)
//
// hitNorm rescales the hit rate between the coldest (0) and hottest (1) number
// in the candidate range. recentWeight captures momentum over the trailing
// window. overdueWeight measures how far the current absence exceeds the
// number's own average gap. noise is a fixed per-snapshot perturbation, drawn
// once so the randomness weight is meaningful but stable within a session.
//
// All-zero weights score every number 0, which makes ticket sampling uniform.
// That is intended behaviour, not an error.
//
// Hottest, Coldest and MostOverdue rank stats for display with deterministic
// tie-breaks on the number value.
package scoring

import (
	"sort"

	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/prng"
)

// overdueRecencyBias nudges MostOverdue towards longer absences when several
// numbers share the clamped overdue weight of 1.
const overdueRecencyBias = 0.01

// NormalizeHitRates rescales hit rates to [0,1] relative to the min and max of
// the range. When every rate is equal all numbers are top performers and get 1.
func NormalizeHitRates(stats []models.NumberStat) []float64 {
	out := make([]float64, len(stats))
	if len(stats) == 0 {
		return out
	}

	lo, hi := stats[0].HitRate, stats[0].HitRate
	for _, s := range stats[1:] {
		if s.HitRate < lo {
			lo = s.HitRate
		}
		if s.HitRate > hi {
			hi = s.HitRate
		}
	}

	spread := hi - lo
	for i, s := range stats {
		if spread <= 0 {
			out[i] = 1.0
			continue
		}
		out[i] = (s.HitRate - lo) / spread
	}
	return out
}

// CompositeScore combines the four normalized sub-signals under w.
func CompositeScore(w models.ScoringWeights, hitNorm, recent, overdue, noise float64) float64 {
	total := w.Sum()
	if total <= 0 {
		return 0
	}
	// Explicit conversions keep each product rounded on its own so scores are
	// bit-identical on platforms that would otherwise fuse multiply-adds.
	sum := float64(w.Frequency*hitNorm) + float64(w.Momentum*recent)
	sum += float64(w.Overdue * overdue)
	sum += float64(w.Randomness * noise)
	return sum / total
}

// Score returns the composite score of every stat under w without modifying stats.
func Score(stats []models.NumberStat, w models.ScoringWeights) []float64 {
	hitNorm := NormalizeHitRates(stats)
	scores := make([]float64, len(stats))
	for i, s := range stats {
		scores[i] = CompositeScore(w, hitNorm[i], s.RecentWeight, s.OverdueWeight, s.Noise)
	}
	return scores
}

// Apply returns a copy of stats with CompositeScore filled in under w.
func Apply(stats []models.NumberStat, w models.ScoringWeights) []models.NumberStat {
	scores := Score(stats, w)
	out := make([]models.NumberStat, len(stats))
	copy(out, stats)
	for i := range out {
		out[i].CompositeScore = scores[i]
	}
	return out
}

// AssignNoise returns a copy of stats with one noise value per number drawn from
// src in ascending value order. src must be dedicated to noise; sharing it with
// ticket sampling would couple score stability to ticket variability.
func AssignNoise(stats []models.NumberStat, src prng.Source) []models.NumberStat {
	out := make([]models.NumberStat, len(stats))
	copy(out, stats)
	for i := range out {
		out[i].Noise = src.Next()
	}
	return out
}

// Hottest returns up to k stats with the highest composite score.
func Hottest(stats []models.NumberStat, k int) []models.NumberStat {
	return topK(stats, k, func(a, b models.NumberStat) bool {
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		return a.Value < b.Value
	})
}

// Coldest returns up to k stats with the fewest hits.
func Coldest(stats []models.NumberStat, k int) []models.NumberStat {
	return topK(stats, k, func(a, b models.NumberStat) bool {
		if a.Hits != b.Hits {
			return a.Hits < b.Hits
		}
		return a.Value < b.Value
	})
}

// MostOverdue returns up to k stats ranked by overdue weight, with the current
// absence as a small bias so clamped weights still order by how long they wait.
func MostOverdue(stats []models.NumberStat, k int) []models.NumberStat {
	return topK(stats, k, func(a, b models.NumberStat) bool {
		pa, pb := overduePressure(a), overduePressure(b)
		if pa != pb {
			return pa > pb
		}
		return a.Value < b.Value
	})
}

func overduePressure(s models.NumberStat) float64 {
	return s.OverdueWeight + float64(float64(s.LastSeenDrawsAgo)*overdueRecencyBias)
}

// MomentumShare is the summed recent hits of the given stats per recent draw,
// e.g. how often the five hottest numbers appeared in the last window.
func MomentumShare(stats []models.NumberStat, recentWindow int) float64 {
	if recentWindow <= 0 {
		return 0
	}
	hits := 0
	for _, s := range stats {
		hits += s.RecentHits
	}
	return float64(hits) / float64(recentWindow)
}

func topK(stats []models.NumberStat, k int, less func(a, b models.NumberStat) bool) []models.NumberStat {
	sorted := make([]models.NumberStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if k <= 0 {
		return []models.NumberStat{}
	}
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}
