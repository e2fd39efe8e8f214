package models

import (
	"errors"
	"fmt"
	"math"
)

// NumberStat holds the historical statistics for one candidate value.
//
// HitRate, RecentWeight, OverdueWeight and Noise are already normalized to [0,1]
// and feed the scoring engine directly. CompositeScore is an output of scoring,
// filled in under whatever weights the stat was last scored with.
type NumberStat struct {
	Value            int     `json:"value" yaml:"value"`
	Hits             int     `json:"hits" yaml:"hits"`
	HitRate          float64 `json:"hit_rate" yaml:"hit_rate"`
	RecentHits       int     `json:"recent_hits" yaml:"recent_hits"`
	RecentWeight     float64 `json:"recent_weight" yaml:"recent_weight"`
	LastSeenDrawsAgo int     `json:"last_seen_draws_ago" yaml:"last_seen_draws_ago"` // 0 = most recent draw
	LongestGap       int     `json:"longest_gap" yaml:"longest_gap"`
	OverdueWeight    float64 `json:"overdue_weight" yaml:"overdue_weight"`
	Noise            float64 `json:"noise" yaml:"noise"` // fixed per snapshot
	CompositeScore   float64 `json:"composite_score" yaml:"composite_score"`
}

// Validate checks the normalized fields and the hits/hit-rate relationship.
func (s *NumberStat) Validate(totalDraws int) error {
	if totalDraws < 1 {
		return errors.New("total draws must be at least 1")
	}
	if s.Hits < 0 || s.Hits > totalDraws {
		return fmt.Errorf("number %d: hits %d outside 0..%d", s.Value, s.Hits, totalDraws)
	}
	if s.HitRate < 0.0 || s.HitRate > 1.0 {
		return fmt.Errorf("number %d: hit rate must be between 0.0 and 1.0", s.Value)
	}
	if s.RecentWeight < 0.0 || s.RecentWeight > 1.0 {
		return fmt.Errorf("number %d: recent weight must be between 0.0 and 1.0", s.Value)
	}
	if s.OverdueWeight < 0.0 || s.OverdueWeight > 1.0 {
		return fmt.Errorf("number %d: overdue weight must be between 0.0 and 1.0", s.Value)
	}
	if s.Noise < 0.0 || s.Noise >= 1.0 {
		return fmt.Errorf("number %d: noise must be in [0.0, 1.0)", s.Value)
	}
	if int(math.Round(s.HitRate*float64(totalDraws))) != s.Hits {
		return fmt.Errorf("number %d: hits %d inconsistent with hit rate %.4f", s.Value, s.Hits, s.HitRate)
	}
	if s.LastSeenDrawsAgo < 0 || s.LastSeenDrawsAgo > totalDraws {
		return fmt.Errorf("number %d: last seen %d outside 0..%d", s.Value, s.LastSeenDrawsAgo, totalDraws)
	}
	if s.LongestGap < s.LastSeenDrawsAgo {
		return fmt.Errorf("number %d: longest gap %d shorter than current absence %d", s.Value, s.LongestGap, s.LastSeenDrawsAgo)
	}
	return nil
}
