package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rewired-gh/jackpotlab/internal/history"
	"github.com/rewired-gh/jackpotlab/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	History HistoryConfig `mapstructure:"history"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds the number ranges and pick counts
type GameConfig struct {
	MainMin   int `mapstructure:"main_min"`
	MainMax   int `mapstructure:"main_max"`
	MainPicks int `mapstructure:"main_picks"`
	EuroMin   int `mapstructure:"euro_min"`
	EuroMax   int `mapstructure:"euro_max"`
	EuroPicks int `mapstructure:"euro_picks"`
}

// HistoryConfig holds the simulated draw history settings
type HistoryConfig struct {
	TotalDraws   int    `mapstructure:"total_draws"`
	Seed         uint32 `mapstructure:"seed"`
	StartDate    string `mapstructure:"start_date"` // YYYY-MM-DD
	RecentWindow int    `mapstructure:"recent_window"`
}

// ScoringConfig holds the noise seed and the default weighting profile
type ScoringConfig struct {
	NoiseSeed uint32                `mapstructure:"noise_seed"`
	Weights   models.ScoringWeights `mapstructure:"weights"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file and environment variables.
// An empty path yields the defaults plus any JACKPOT_* overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Enable environment variable override, e.g. JACKPOT_HISTORY_TOTAL_DRAWS
	v.SetEnvPrefix("JACKPOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration. Unlike Load it never consults
// the environment, so it always describes the same analysis.
func Default() *Config {
	rules := models.DefaultRules()
	return &Config{
		Game: GameConfig{
			MainMin:   rules.MainMin,
			MainMax:   rules.MainMax,
			MainPicks: rules.MainPicks,
			EuroMin:   rules.EuroMin,
			EuroMax:   rules.EuroMax,
			EuroPicks: rules.EuroPicks,
		},
		History: HistoryConfig{
			TotalDraws:   history.DefaultTotalDraws,
			Seed:         history.DefaultSeed,
			StartDate:    history.DefaultStart.Format(time.DateOnly),
			RecentWindow: 20,
		},
		Scoring: ScoringConfig{
			NoiseSeed: 1337,
			Weights:   models.DefaultWeights(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	d := Default()

	// Game defaults
	v.SetDefault("game.main_min", d.Game.MainMin)
	v.SetDefault("game.main_max", d.Game.MainMax)
	v.SetDefault("game.main_picks", d.Game.MainPicks)
	v.SetDefault("game.euro_min", d.Game.EuroMin)
	v.SetDefault("game.euro_max", d.Game.EuroMax)
	v.SetDefault("game.euro_picks", d.Game.EuroPicks)

	// History defaults
	v.SetDefault("history.total_draws", d.History.TotalDraws)
	v.SetDefault("history.seed", d.History.Seed)
	v.SetDefault("history.start_date", d.History.StartDate)
	v.SetDefault("history.recent_window", d.History.RecentWindow)

	// Scoring defaults
	v.SetDefault("scoring.noise_seed", d.Scoring.NoiseSeed)
	v.SetDefault("scoring.weights.frequency", d.Scoring.Weights.Frequency)
	v.SetDefault("scoring.weights.momentum", d.Scoring.Weights.Momentum)
	v.SetDefault("scoring.weights.overdue", d.Scoring.Weights.Overdue)
	v.SetDefault("scoring.weights.randomness", d.Scoring.Weights.Randomness)

	// Logging defaults
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Game config
	if err := c.Game.Rules().Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	// Validate History config
	if c.History.TotalDraws < 1 {
		return fmt.Errorf("%w: history.total_draws must be at least 1", models.ErrInvalidConfig)
	}
	if c.History.RecentWindow < 1 {
		return fmt.Errorf("%w: history.recent_window must be at least 1", models.ErrInvalidConfig)
	}
	if c.History.RecentWindow > c.History.TotalDraws {
		return fmt.Errorf("%w: history.recent_window must not exceed history.total_draws", models.ErrInvalidConfig)
	}
	if _, err := c.History.Start(); err != nil {
		return fmt.Errorf("%w: history.start_date must be YYYY-MM-DD: %v", models.ErrInvalidConfig, err)
	}

	// Validate Scoring config
	if err := c.Scoring.Weights.Validate(); err != nil {
		return fmt.Errorf("scoring.weights: %w", err)
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("%w: logging.level must be one of: debug, info, warn, error", models.ErrInvalidConfig)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("%w: logging.format must be one of: json, text", models.ErrInvalidConfig)
	}

	return nil
}

// Rules converts the game section into model rules.
func (g GameConfig) Rules() models.GameRules {
	return models.GameRules{
		MainMin:   g.MainMin,
		MainMax:   g.MainMax,
		MainPicks: g.MainPicks,
		EuroMin:   g.EuroMin,
		EuroMax:   g.EuroMax,
		EuroPicks: g.EuroPicks,
	}
}

// Start parses the first simulated draw date.
func (h HistoryConfig) Start() (time.Time, error) {
	return time.Parse(time.DateOnly, h.StartDate)
}
