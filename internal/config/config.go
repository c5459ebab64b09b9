package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AITurn holds all configuration for the AI turn runner.
type AITurn struct {
	LogLevel string `yaml:"log_level"`

	// Scenario file loaded into the simulated world
	Scenario string `yaml:"scenario"`

	Policy       Policy       `yaml:"policy"`
	Pathing      Pathing      `yaml:"pathing"`
	Orchestrator Orchestrator `yaml:"orchestrator"`
	Recruit      Recruit      `yaml:"recruit"`
	Journal      Journal      `yaml:"journal"`
}

// Policy holds the decision thresholds used by behaviors.
type Policy struct {
	// Minimum army value a hero must add to a town (or to a garrison hero)
	// before moving or swapping heroes is worth a goal.
	ReinforcementThreshold float64 `yaml:"reinforcement_threshold"`
	// Gold above which a new hero is recruited regardless of hero count.
	GoldThreshold int `yaml:"gold_threshold"`
	// Heroes further than this (squared tiles) from a town are not eligible to enter it.
	MaxHeroDistanceSquared int64 `yaml:"max_hero_distance_squared"`
	// Priority of goals that must happen now.
	UrgentPriority float64 `yaml:"urgent_priority"`
	// Priority of last-resort goals.
	FallbackPriority float64 `yaml:"fallback_priority"`
}

// Pathing holds settings for the path provider.
type Pathing struct {
	MaxTurns      int `yaml:"max_turns"`      // how many days of movement a path may span
	MaxIterations int `yaml:"max_iterations"` // A* node expansion cap
}

// Orchestrator holds settings for the decision loop.
type Orchestrator struct {
	MaxCyclesPerTurn      int `yaml:"max_cycles_per_turn"`
	MaxDecompositionDepth int `yaml:"max_decomposition_depth"`
	Days                  int `yaml:"days"` // days simulated by cmd/aiturn
}

// Recruit holds tavern rules.
type Recruit struct {
	HeroCost  int `yaml:"hero_cost"`
	MaxHeroes int `yaml:"max_heroes"`
}

// Journal holds settings for the decision journal.
type Journal struct {
	Enabled  bool           `yaml:"enabled"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultPolicy returns the standard decision thresholds.
func DefaultPolicy() Policy {
	return Policy{
		ReinforcementThreshold: 200,
		GoldThreshold:          10000,
		MaxHeroDistanceSquared: 4,
		UrgentPriority:         100,
		FallbackPriority:       0.0001,
	}
}

// DefaultAITurn returns AITurn config with sensible defaults.
func DefaultAITurn() AITurn {
	return AITurn{
		LogLevel: "info",
		Scenario: "config/scenario.yaml",
		Policy:   DefaultPolicy(),
		Pathing: Pathing{
			MaxTurns:      3,
			MaxIterations: 7000,
		},
		Orchestrator: Orchestrator{
			MaxCyclesPerTurn:      16,
			MaxDecompositionDepth: 8,
			Days:                  7,
		},
		Recruit: Recruit{
			HeroCost:  2500,
			MaxHeroes: 8,
		},
		Journal: Journal{
			Enabled: false,
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "vcmi",
				Password: "vcmi",
				DBName:   "vcmi_ai",
				SSLMode:  "disable",
			},
		},
	}
}

// LoadAITurn loads AI turn config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadAITurn(path string) (AITurn, error) {
	cfg := DefaultAITurn()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would make the AI loop misbehave.
func (c AITurn) Validate() error {
	if c.Policy.MaxHeroDistanceSquared < 0 {
		return fmt.Errorf("policy.max_hero_distance_squared must be >= 0, got %d", c.Policy.MaxHeroDistanceSquared)
	}
	if c.Pathing.MaxTurns < 1 {
		return fmt.Errorf("pathing.max_turns must be >= 1, got %d", c.Pathing.MaxTurns)
	}
	if c.Orchestrator.MaxCyclesPerTurn < 1 {
		return fmt.Errorf("orchestrator.max_cycles_per_turn must be >= 1, got %d", c.Orchestrator.MaxCyclesPerTurn)
	}
	if c.Orchestrator.MaxDecompositionDepth < 1 {
		return fmt.Errorf("orchestrator.max_decomposition_depth must be >= 1, got %d", c.Orchestrator.MaxDecompositionDepth)
	}
	return nil
}
