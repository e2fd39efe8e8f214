package models

import (
	"fmt"
	"math"
)

// ScoringWeights is a caller-owned weighting profile. Each weight is expected in
// [0,1]; they need not sum to 1 because scoring normalizes by their sum.
type ScoringWeights struct {
	Frequency  float64 `json:"frequency" yaml:"frequency" mapstructure:"frequency"`
	Momentum   float64 `json:"momentum" yaml:"momentum" mapstructure:"momentum"`
	Overdue    float64 `json:"overdue" yaml:"overdue" mapstructure:"overdue"`
	Randomness float64 `json:"randomness" yaml:"randomness" mapstructure:"randomness"`
}

// DefaultWeights is the profile the analysis snapshot is scored with.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Frequency:  0.5,
		Momentum:   0.25,
		Overdue:    0.2,
		Randomness: 0.05,
	}
}

// Sum returns the total weight.
func (w ScoringWeights) Sum() float64 {
	return w.Frequency + w.Momentum + w.Overdue + w.Randomness
}

// IsZero reports whether every weight is zero.
func (w ScoringWeights) IsZero() bool {
	return w.Sum() == 0
}

// Validate rejects negative, NaN or out-of-range weights. All-zero weights are valid.
func (w ScoringWeights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"frequency", w.Frequency},
		{"momentum", w.Momentum},
		{"overdue", w.Overdue},
		{"randomness", w.Randomness},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || f.value < 0.0 || f.value > 1.0 {
			return fmt.Errorf("%w: %s weight must be between 0.0 and 1.0, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}
