// Package analysis assembles the immutable snapshot a session works from: the
// simulated history, per-number statistics scored under the configured weights,
// the distribution summary and a fixed set of recommended tickets.
//
// A snapshot never changes after Build returns, so it can be shared by any
// number of goroutines generating tickets concurrently.
package analysis

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rewired-gh/jackpotlab/internal/config"
	"github.com/rewired-gh/jackpotlab/internal/history"
	"github.com/rewired-gh/jackpotlab/internal/logger"
	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/prng"
	"github.com/rewired-gh/jackpotlab/internal/scoring"
	"github.com/rewired-gh/jackpotlab/internal/stats"
	"github.com/rewired-gh/jackpotlab/internal/ticket"
)

// Snapshot is the result of one analysis run.
type Snapshot struct {
	ID              uuid.UUID                  `json:"id" yaml:"id"`
	Rules           models.GameRules           `json:"rules" yaml:"rules"`
	Weights         models.ScoringWeights      `json:"weights" yaml:"weights"`
	MainStats       []models.NumberStat        `json:"main_stats" yaml:"main_stats"`
	EuroStats       []models.NumberStat        `json:"euro_stats" yaml:"euro_stats"`
	Distribution    models.DistributionSummary `json:"distribution" yaml:"distribution"`
	Recommendations []models.Recommendation    `json:"recommendations" yaml:"recommendations"`
	Draws           []models.Draw              `json:"-" yaml:"-"`
}

// Build runs history, stats and scoring once for cfg.
func Build(cfg *config.Config) (*Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rules := cfg.Game.Rules()
	start, err := cfg.History.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidConfig, err)
	}

	draws, err := history.Generate(rules, cfg.History.TotalDraws, cfg.History.Seed, start)
	if err != nil {
		return nil, fmt.Errorf("failed to generate history: %w", err)
	}

	mainStats, err := stats.MainStats(draws, rules, cfg.History.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate main numbers: %w", err)
	}
	euroStats, err := stats.EuroStats(draws, rules, cfg.History.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate euro numbers: %w", err)
	}

	// One noise stream for the whole snapshot: main numbers first, then euro.
	noise := prng.New(cfg.Scoring.NoiseSeed)
	mainStats = scoring.AssignNoise(mainStats, noise)
	euroStats = scoring.AssignNoise(euroStats, noise)

	mainStats = scoring.Apply(mainStats, cfg.Scoring.Weights)
	euroStats = scoring.Apply(euroStats, cfg.Scoring.Weights)

	recs, err := Recommend(mainStats, euroStats, rules, DefaultProfiles())
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendations: %w", err)
	}

	snap := &Snapshot{
		ID:              snapshotID(cfg),
		Rules:           rules,
		Weights:         cfg.Scoring.Weights,
		MainStats:       mainStats,
		EuroStats:       euroStats,
		Distribution:    stats.Summarize(draws, rules, cfg.History.RecentWindow),
		Recommendations: recs,
		Draws:           draws,
	}

	logger.Debug("built analysis snapshot", "id", snap.ID.String(),
		"draws", len(draws), "main", len(mainStats), "euro", len(euroStats))
	return snap, nil
}

// BuildDefault builds the snapshot for the built-in configuration.
func BuildDefault() (*Snapshot, error) {
	return Build(config.Default())
}

// GenerateTicket draws a ticket from the snapshot's stats under weights.
func (s *Snapshot) GenerateTicket(weights models.ScoringWeights, src prng.Source) (models.Ticket, error) {
	return ticket.Generate(s.MainStats, s.EuroStats, weights, s.Rules, src)
}

// Stat returns the stat for value from the main or euro range.
func (s *Snapshot) Stat(value int, euro bool) (models.NumberStat, bool) {
	set := s.MainStats
	if euro {
		set = s.EuroStats
	}
	for _, st := range set {
		if st.Value == value {
			return st, true
		}
	}
	return models.NumberStat{}, false
}

// snapshotID derives a stable ID from every input that shapes the snapshot.
func snapshotID(cfg *config.Config) uuid.UUID {
	fingerprint := fmt.Sprintf("jackpotlab/v1 game=%+v history=%+v scoring=%+v",
		cfg.Game, cfg.History, cfg.Scoring)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fingerprint))
}
