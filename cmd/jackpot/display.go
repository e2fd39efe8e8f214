package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rewired-gh/jackpotlab/internal/analysis"
	"github.com/rewired-gh/jackpotlab/internal/models"
	"github.com/rewired-gh/jackpotlab/internal/scoring"
)

// euroPanelSize is half the default euro range.
const euroPanelSize = 6

// percent renders a [0,1] ratio as a fixed two-decimal percentage.
func percent(ratio float64) string {
	return decimal.NewFromFloat(ratio).Shift(2).StringFixed(2) + "%"
}

func writeJSON(w io.Writer, snap *analysis.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, snap *analysis.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

// printAnalysis displays the snapshot summary, ranking panels and recommendations
func printAnalysis(w io.Writer, snap *analysis.Snapshot, window, top int) {
	dist := snap.Distribution
	fmt.Fprintf(w, "Snapshot %s\n", snap.ID)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "  Draws analyzed:   %d (recent window %d)\n", dist.TotalDraws, dist.RecentWindow)
	fmt.Fprintf(w, "  Avg main sum:     %.2f\n", dist.AverageMainSum)
	fmt.Fprintf(w, "  Avg even mains:   %.2f\n", dist.AverageMainEven)
	fmt.Fprintf(w, "  Avg low euros:    %.2f\n", dist.AverageEuroLow)

	hot := scoring.Hottest(snap.MainStats, top)
	fmt.Fprintf(w, "\nHot numbers (momentum share %s):\n", percent(scoring.MomentumShare(hot, window)))
	printStatRows(w, hot, func(s models.NumberStat) string {
		return fmt.Sprintf("score %.3f, %d recent", s.CompositeScore, s.RecentHits)
	})

	fmt.Fprintln(w, "\nCold numbers:")
	printStatRows(w, scoring.Coldest(snap.MainStats, top), func(s models.NumberStat) string {
		return fmt.Sprintf("%d hits, hit rate %s", s.Hits, percent(s.HitRate))
	})

	fmt.Fprintln(w, "\nMost overdue:")
	printStatRows(w, scoring.MostOverdue(snap.MainStats, top), func(s models.NumberStat) string {
		return fmt.Sprintf("absent %d draws, overdue %.2f", s.LastSeenDrawsAgo, s.OverdueWeight)
	})

	hotEuro := scoring.Hottest(snap.EuroStats, euroPanelSize)
	fmt.Fprintln(w, "\nHot euro numbers:")
	printStatRows(w, hotEuro, func(s models.NumberStat) string {
		return fmt.Sprintf("score %.3f, %d recent", s.CompositeScore, s.RecentHits)
	})

	fmt.Fprintln(w, "\nCold euro numbers:")
	printStatRows(w, scoring.Coldest(snap.EuroStats, euroPanelSize), func(s models.NumberStat) string {
		return fmt.Sprintf("%d hits, hit rate %s", s.Hits, percent(s.HitRate))
	})

	if len(hotEuro) >= 2 {
		fmt.Fprintf(w, "\nEuro fingerprint: %02d and %02d lead with %d and %d recent hits\n",
			hotEuro[0].Value, hotEuro[1].Value, hotEuro[0].RecentHits, hotEuro[1].RecentHits)
	}

	fmt.Fprintln(w, "\nRecommendations:")
	for _, rec := range snap.Recommendations {
		fmt.Fprintf(w, "  %-16s %s\n", rec.Title, rec.Ticket)
		fmt.Fprintf(w, "  %-16s %s\n", "", rec.Description)
	}
}

func printStatRows(w io.Writer, rows []models.NumberStat, detail func(models.NumberStat) string) {
	for i, s := range rows {
		fmt.Fprintf(w, "  %d. %02d  %s\n", i+1, s.Value, detail(s))
	}
}

func printTicket(w io.Writer, t models.Ticket, weights models.ScoringWeights, seed uint32) {
	fmt.Fprintf(w, "Ticket: %s\n", t)
	fmt.Fprintf(w, "  seed %d, weights frequency=%.2f momentum=%.2f overdue=%.2f randomness=%.2f\n",
		seed, weights.Frequency, weights.Momentum, weights.Overdue, weights.Randomness)
	if weights.IsZero() {
		fmt.Fprintln(w, "  all weights are zero: numbers were drawn uniformly")
	}
}

// printHistory lists the most recent draws, newest first
func printHistory(w io.Writer, draws []models.Draw, limit int) {
	if limit > len(draws) {
		limit = len(draws)
	}
	for i := len(draws) - 1; i >= len(draws)-limit; i-- {
		d := draws[i]
		t := models.Ticket{Main: d.Main, Euro: d.Euro}
		fmt.Fprintf(w, "  #%03d  %s %s  %s\n", d.Index+1, d.Date.Weekday().String()[:3], d.Date.Format(time.DateOnly), t)
	}
}

func printExplain(w io.Writer, s models.NumberStat, p float64, total int, euro bool) {
	fmt.Fprintf(w, "%s number %02d\n", strings.ToUpper(rangeName(euro)[:1])+rangeName(euro)[1:], s.Value)
	fmt.Fprintf(w, "  Hits:            %d of %d (%s)\n", s.Hits, total, percent(s.HitRate))
	fmt.Fprintf(w, "  Recent hits:     %d (momentum %.2f)\n", s.RecentHits, s.RecentWeight)
	fmt.Fprintf(w, "  Last seen:       %d draws ago\n", s.LastSeenDrawsAgo)
	fmt.Fprintf(w, "  Longest gap:     %d draws\n", s.LongestGap)
	fmt.Fprintf(w, "  Overdue weight:  %.2f\n", s.OverdueWeight)
	fmt.Fprintf(w, "  Composite score: %.4f\n", s.CompositeScore)
	fmt.Fprintf(w, "  First-draw odds: %s\n", percent(p))
}
