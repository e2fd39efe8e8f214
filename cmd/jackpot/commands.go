package main

import (
	"fmt"
	"time"

	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/prng"
	"github.com/rewired-gh/jackpotlab/internal/ticket"
)

type AnalyzeCmd struct {
	Output string `help:"Output format." enum:"text,json,yaml" default:"text" short:"o"`
	Top    int    `help:"Entries per hot/cold/overdue panel." default:"5"`
}

func (c *AnalyzeCmd) Run(s *session) error {
	switch c.Output {
	case "json":
		return writeJSON(s.out, s.snap)
	case "yaml":
		return writeYAML(s.out, s.snap)
	default:
		printAnalysis(s.out, s.snap, s.cfg.History.RecentWindow, c.Top)
		return nil
	}
}

// Weight flags left unset fall back to the configured profile.
type TicketCmd struct {
	Seed       *uint32  `help:"Seed for the draw (defaults to the current time)."`
	Frequency  *float64 `help:"Frequency weight in [0,1]."`
	Momentum   *float64 `help:"Momentum weight in [0,1]."`
	Overdue    *float64 `help:"Overdue weight in [0,1]."`
	Randomness *float64 `help:"Randomness weight in [0,1]."`
}

func (c *TicketCmd) Run(s *session) error {
	weights := c.weights(s.cfg.Scoring.Weights)
	seed := c.seed(time.Now())

	t, err := s.snap.GenerateTicket(weights, prng.New(seed))
	if err != nil {
		return fmt.Errorf("failed to generate ticket: %w", err)
	}
	printTicket(s.out, t, weights, seed)
	return nil
}

func (c *TicketCmd) weights(base models.ScoringWeights) models.ScoringWeights {
	w := base
	if c.Frequency != nil {
		w.Frequency = *c.Frequency
	}
	if c.Momentum != nil {
		w.Momentum = *c.Momentum
	}
	if c.Overdue != nil {
		w.Overdue = *c.Overdue
	}
	if c.Randomness != nil {
		w.Randomness = *c.Randomness
	}
	return w
}

func (c *TicketCmd) seed(now time.Time) uint32 {
	if c.Seed != nil {
		return *c.Seed
	}
	return uint32(now.UnixMilli() % 100000)
}

type HistoryCmd struct {
	Limit int `help:"Number of most recent draws to show." default:"10" short:"n"`
}

func (c *HistoryCmd) Run(s *session) error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	printHistory(s.out, s.snap.Draws, c.Limit)
	return nil
}

type ExplainCmd struct {
	Number int  `help:"Number to explain." required:""`
	Euro   bool `help:"Look the number up in the euro range."`
}

func (c *ExplainCmd) Run(s *session) error {
	set := s.snap.MainStats
	if c.Euro {
		set = s.snap.EuroStats
	}

	stat, ok := s.snap.Stat(c.Number, c.Euro)
	if !ok {
		return fmt.Errorf("number %d is outside the %s range", c.Number, rangeName(c.Euro))
	}

	probs := ticket.Probabilities(set, s.cfg.Scoring.Weights)
	var p float64
	for i, st := range set {
		if st.Value == c.Number {
			p = probs[i]
			break
		}
	}

	printExplain(s.out, stat, p, s.snap.Distribution.TotalDraws, c.Euro)
	return nil
}

func rangeName(euro bool) string {
	if euro {
		return "euro"
	}
	return "main"
}
