package analysis

import (
	"fmt"

	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/prng"
	"github.com/rewired-gh/jackpotlab/internal/ticket"
)

// Profile is a named weighting with the seed its recommendation is drawn from.
type Profile struct {
	ID          string
	Title       string
	Description string
	Weights     models.ScoringWeights
	Seed        uint32
}

// DefaultProfiles returns the three fixed recommendation profiles.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			ID:          "balanced",
			Title:       "Balanced blend",
			Description: "Mostly long-run frequency with a share of momentum and overdue pressure.",
			Weights:     models.ScoringWeights{Frequency: 0.45, Momentum: 0.25, Overdue: 0.2, Randomness: 0.1},
			Seed:        101,
		},
		{
			ID:          "momentum",
			Title:       "Momentum chaser",
			Description: "Favours numbers that hit often in the recent window.",
			Weights:     models.ScoringWeights{Frequency: 0.2, Momentum: 0.6, Overdue: 0.1, Randomness: 0.1},
			Seed:        202,
		},
		{
			ID:          "overdue",
			Title:       "Overdue hunter",
			Description: "Leans on numbers whose current absence exceeds their usual gap.",
			Weights:     models.ScoringWeights{Frequency: 0.2, Momentum: 0.1, Overdue: 0.6, Randomness: 0.1},
			Seed:        303,
		},
	}
}

// Recommend draws one ticket per profile, each from its own seeded source.
func Recommend(mainStats, euroStats []models.NumberStat, rules models.GameRules, profiles []Profile) ([]models.Recommendation, error) {
	recs := make([]models.Recommendation, 0, len(profiles))
	for _, p := range profiles {
		t, err := ticket.Generate(mainStats, euroStats, p.Weights, rules, prng.New(p.Seed))
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.ID, err)
		}
		recs = append(recs, models.Recommendation{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Weights:     p.Weights,
			Seed:        p.Seed,
			Ticket:      t,
		})
	}
	return recs, nil
}
