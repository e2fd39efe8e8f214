package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rewired-gh/jackpotlab/internal/models"
)

func TestLoadAndValidate(t *testing.T) {
	content := `
game:
  main_min: 1
  main_max: 40
  main_picks: 5
  euro_min: 1
  euro_max: 10
  euro_picks: 2

history:
  total_draws: 120
  seed: 99
  start_date: "2023-01-03"
  recent_window: 10

scoring:
  noise_seed: 7
  weights:
    frequency: 0.4
    momentum: 0.3
    overdue: 0.2
    randomness: 0.1

logging:
  level: "debug"
  format: "json"
`
	path := filepath.Join(t.TempDir(), "jackpot.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.MainMax != 40 || cfg.Game.EuroMax != 10 {
		t.Errorf("Unexpected game ranges: %+v", cfg.Game)
	}
	if cfg.History.TotalDraws != 120 || cfg.History.Seed != 99 {
		t.Errorf("Unexpected history: %+v", cfg.History)
	}
	if cfg.Scoring.NoiseSeed != 7 {
		t.Errorf("Unexpected noise seed: %d", cfg.Scoring.NoiseSeed)
	}
	if cfg.Scoring.Weights.Momentum != 0.3 {
		t.Errorf("Unexpected momentum weight: %f", cfg.Scoring.Weights.Momentum)
	}

	start, err := cfg.History.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if start.Year() != 2023 || start.Day() != 3 {
		t.Errorf("Unexpected start date: %v", start)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Game.Rules(); got != models.DefaultRules() {
		t.Errorf("Rules() = %+v, want %+v", got, models.DefaultRules())
	}
	if cfg.Scoring.Weights != models.DefaultWeights() {
		t.Errorf("Weights = %+v, want %+v", cfg.Scoring.Weights, models.DefaultWeights())
	}
	if cfg.History.TotalDraws != 200 || cfg.History.RecentWindow != 20 {
		t.Errorf("Unexpected history defaults: %+v", cfg.History)
	}
	if cfg.History.Seed != 20220325 || cfg.Scoring.NoiseSeed != 1337 {
		t.Errorf("Unexpected seeds: %d / %d", cfg.History.Seed, cfg.Scoring.NoiseSeed)
	}
	if cfg.History.StartDate != "2022-03-25" {
		t.Errorf("Unexpected start date: %s", cfg.History.StartDate)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JACKPOT_HISTORY_TOTAL_DRAWS", "80")
	t.Setenv("JACKPOT_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.TotalDraws != 80 {
		t.Errorf("TotalDraws = %d, want 80", cfg.History.TotalDraws)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %s, want warn", cfg.Logging.Level)
	}
}

func TestDefaultIgnoresEnvironment(t *testing.T) {
	t.Setenv("JACKPOT_HISTORY_TOTAL_DRAWS", "30")
	t.Setenv("JACKPOT_HISTORY_SEED", "abc")

	cfg := Default()
	if cfg.History.TotalDraws != 200 || cfg.History.Seed != 20220325 {
		t.Errorf("Default() picked up environment: %+v", cfg.History)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadDefaultsMatchDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoadMalformedEnv(t *testing.T) {
	t.Setenv("JACKPOT_HISTORY_SEED", "abc")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unparsable JACKPOT_HISTORY_SEED")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{
			name:   "main range smaller than picks",
			mutate: func(c *Config) { c.Game.MainMax = 4 },
		},
		{
			name:   "zero history",
			mutate: func(c *Config) { c.History.TotalDraws = 0 },
		},
		{
			name:   "window larger than history",
			mutate: func(c *Config) { c.History.RecentWindow = 201 },
		},
		{
			name:   "zero window",
			mutate: func(c *Config) { c.History.RecentWindow = 0 },
		},
		{
			name:   "malformed start date",
			mutate: func(c *Config) { c.History.StartDate = "25/03/2022" },
		},
		{
			name:   "negative weight",
			mutate: func(c *Config) { c.Scoring.Weights.Overdue = -0.1 },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !errors.Is(err, models.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("configs/config.yaml = %+v, want defaults %+v", *cfg, *Default())
	}
}
