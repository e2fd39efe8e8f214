package models

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestGameRulesValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *GameRules)
		wantErr bool
	}{
		{name: "default rules", mutate: func(r *GameRules) {}},
		{name: "main range starts at zero", mutate: func(r *GameRules) { r.MainMin = 0 }, wantErr: true},
		{name: "empty main range", mutate: func(r *GameRules) { r.MainMax = 0 }, wantErr: true},
		{name: "too many main picks", mutate: func(r *GameRules) { r.MainMax = 4 }, wantErr: true},
		{name: "no euro picks", mutate: func(r *GameRules) { r.EuroPicks = 0 }, wantErr: true},
		{name: "euro pool exactly fits", mutate: func(r *GameRules) { r.EuroMax = 2 }},
		{name: "euro pool too small", mutate: func(r *GameRules) { r.EuroMax = 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			err := rules.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GameRules.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected error to wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestEuroLowCutoff(t *testing.T) {
	if got := DefaultRules().EuroLowCutoff(); got != 6 {
		t.Errorf("EuroLowCutoff() = %d, expected 6", got)
	}
}

func TestDrawValidate(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name    string
		draw    Draw
		wantErr bool
	}{
		{
			name: "valid draw",
			draw: Draw{Index: 0, Date: time.Now(), Main: []int{3, 4, 5, 22, 24}, Euro: []int{8, 10}},
		},
		{
			name:    "duplicate main number",
			draw:    Draw{Main: []int{3, 3, 5, 22, 24}, Euro: []int{8, 10}},
			wantErr: true,
		},
		{
			name:    "main number out of range",
			draw:    Draw{Main: []int{3, 4, 5, 22, 51}, Euro: []int{8, 10}},
			wantErr: true,
		},
		{
			name:    "missing euro number",
			draw:    Draw{Main: []int{3, 4, 5, 22, 24}, Euro: []int{8}},
			wantErr: true,
		},
		{
			name:    "negative index",
			draw:    Draw{Index: -1, Main: []int{3, 4, 5, 22, 24}, Euro: []int{8, 10}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draw.Validate(rules)
			if (err != nil) != tt.wantErr {
				t.Errorf("Draw.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDrawAggregates(t *testing.T) {
	d := Draw{Main: []int{3, 4, 5, 22, 24}, Euro: []int{8, 2}}
	if d.MainSum() != 58 {
		t.Errorf("MainSum() = %d, expected 58", d.MainSum())
	}
	if d.MainEven() != 3 {
		t.Errorf("MainEven() = %d, expected 3", d.MainEven())
	}
	if d.EuroLow(6) != 1 {
		t.Errorf("EuroLow(6) = %d, expected 1", d.EuroLow(6))
	}
}

func TestNumberStatValidate(t *testing.T) {
	valid := NumberStat{
		Value:            1,
		Hits:             22,
		HitRate:          0.11,
		RecentHits:       2,
		RecentWeight:     0.1,
		LastSeenDrawsAgo: 15,
		LongestGap:       41,
		OverdueWeight:    0.65,
		Noise:            0.18,
	}

	tests := []struct {
		name    string
		mutate  func(s *NumberStat)
		wantErr bool
	}{
		{name: "valid stat", mutate: func(s *NumberStat) {}},
		{name: "hit rate above one", mutate: func(s *NumberStat) { s.HitRate = 1.5 }, wantErr: true},
		{name: "negative recent weight", mutate: func(s *NumberStat) { s.RecentWeight = -0.1 }, wantErr: true},
		{name: "overdue above one", mutate: func(s *NumberStat) { s.OverdueWeight = 1.01 }, wantErr: true},
		{name: "hits disagree with rate", mutate: func(s *NumberStat) { s.Hits = 30 }, wantErr: true},
		{name: "noise of one", mutate: func(s *NumberStat) { s.Noise = 1.0 }, wantErr: true},
		{name: "gap shorter than absence", mutate: func(s *NumberStat) { s.LongestGap = 10 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate(200)
			if (err != nil) != tt.wantErr {
				t.Errorf("NumberStat.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScoringWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights ScoringWeights
		wantErr bool
	}{
		{name: "default profile", weights: DefaultWeights()},
		{name: "all zero", weights: ScoringWeights{}},
		{name: "all one", weights: ScoringWeights{1, 1, 1, 1}},
		{name: "negative overdue", weights: ScoringWeights{Frequency: 0.5, Overdue: -0.1}, wantErr: true},
		{name: "momentum above one", weights: ScoringWeights{Momentum: 1.2}, wantErr: true},
		{name: "NaN randomness", weights: ScoringWeights{Randomness: math.NaN()}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ScoringWeights.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if !(ScoringWeights{}).IsZero() {
		t.Error("zero weights should report IsZero")
	}
	if DefaultWeights().IsZero() {
		t.Error("default weights should not report IsZero")
	}
}

func TestTicketValidateAndString(t *testing.T) {
	rules := DefaultRules()
	ticket := Ticket{Main: []int{1, 5, 26, 34, 50}, Euro: []int{4, 7}}
	if err := ticket.Validate(rules); err != nil {
		t.Fatalf("Ticket.Validate() unexpected error: %v", err)
	}
	if got := ticket.String(); got != "01 - 05 - 26 - 34 - 50 / 04 - 07" {
		t.Errorf("Ticket.String() = %q", got)
	}

	unsorted := Ticket{Main: []int{5, 1, 26, 34, 50}, Euro: []int{4, 7}}
	if err := unsorted.Validate(rules); err == nil {
		t.Error("expected unsorted ticket to fail validation")
	}
}
