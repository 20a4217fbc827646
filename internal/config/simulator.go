package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the headless simulator.
type Simulator struct {
	// Runtime
	LogLevel        string `yaml:"log_level"`
	TickIntervalMs  int    `yaml:"tick_interval_ms"`
	StatsIntervalMs int    `yaml:"stats_interval_ms"`
	Seed            int64  `yaml:"seed"` // 0 = derive from current time

	// Simulation
	Session    SessionConfig  `yaml:"session"`
	Waves      WavesConfig    `yaml:"waves"`
	Economy    EconomyConfig  `yaml:"economy"`
	Path       []PathPoint    `yaml:"path"`
	BuildSlots []PathPoint    `yaml:"build_slots"`
	Autoplay   AutoplayConfig `yaml:"autoplay"`

	// Persistence
	Database DatabaseConfig `yaml:"database"`
	AppName  string         `yaml:"app_name"` // namespace of the local result store
}

// SessionConfig shapes one run.
type SessionConfig struct {
	BaseHealth int32 `yaml:"base_health"`
	TotalWaves int32 `yaml:"total_waves"` // 0 = endless
}

// WavesConfig shapes wave growth and pacing.
type WavesConfig struct {
	BaseCount       int32 `yaml:"base_count"`
	CountIncrement  int32 `yaml:"count_increment"`
	SpawnIntervalMs int   `yaml:"spawn_interval_ms"`
	WaveIntervalMs  int   `yaml:"wave_interval_ms"`
}

// EconomyConfig shapes the mana pool and the card hand.
type EconomyConfig struct {
	InitialMana        float64  `yaml:"initial_mana"`
	ManaCapacity       float64  `yaml:"mana_capacity"`
	ManaRegenPerSecond float64  `yaml:"mana_regen_per_second"`
	Hand               []string `yaml:"hand"` // card ids; empty = every archetype
}

// PathPoint is one waypoint in config coordinates.
type PathPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AutoplayConfig drives the built-in bot that spends mana on build slots.
type AutoplayConfig struct {
	Enabled    bool `yaml:"enabled"`
	IntervalMs int  `yaml:"interval_ms"`
}

// TickInterval returns the simulation tick period.
func (s Simulator) TickInterval() time.Duration {
	return time.Duration(s.TickIntervalMs) * time.Millisecond
}

// StatsInterval returns the period of the stats log line.
func (s Simulator) StatsInterval() time.Duration {
	return time.Duration(s.StatsIntervalMs) * time.Millisecond
}

// SpawnInterval returns the in-wave spawn cadence.
func (w WavesConfig) SpawnInterval() time.Duration {
	return time.Duration(w.SpawnIntervalMs) * time.Millisecond
}

// WaveInterval returns the pause between waves.
func (w WavesConfig) WaveInterval() time.Duration {
	return time.Duration(w.WaveIntervalMs) * time.Millisecond
}

// Interval returns the autoplay decision period.
func (a AutoplayConfig) Interval() time.Duration {
	return time.Duration(a.IntervalMs) * time.Millisecond
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:        "info",
		TickIntervalMs:  50,
		StatsIntervalMs: 5000,
		Seed:            0,
		Session: SessionConfig{
			BaseHealth: 100,
			TotalWaves: 10,
		},
		Waves: WavesConfig{
			BaseCount:       5,
			CountIncrement:  2,
			SpawnIntervalMs: 1000,
			WaveIntervalMs:  10000,
		},
		Economy: EconomyConfig{
			InitialMana:        50,
			ManaCapacity:       100,
			ManaRegenPerSecond: 2,
		},
		Path: []PathPoint{
			{X: 0, Y: 0},
			{X: 300, Y: 0},
			{X: 300, Y: 200},
			{X: 100, Y: 200},
			{X: 100, Y: 400},
			{X: 500, Y: 400},
		},
		BuildSlots: []PathPoint{
			{X: 200, Y: 80},
			{X: 220, Y: 150},
			{X: 160, Y: 300},
			{X: 300, Y: 340},
		},
		Autoplay: AutoplayConfig{
			Enabled:    true,
			IntervalMs: 500,
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "stronghold",
			Password: "stronghold",
			DBName:   "stronghold",
			SSLMode:  "disable",
		},
		AppName: "stronghold",
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

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

	return cfg, nil
}
