package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines CLI configuration.
type Config struct {
	Roster    RosterConfig    `yaml:"roster"`
	Probation ProbationConfig `yaml:"probation"`
	Log       LogConfig       `yaml:"log"`
}

type RosterConfig struct {
	Path string `yaml:"path"`
}

type ProbationConfig struct {
	WithinDays int `yaml:"within_days"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. The default log level keeps report output clean.
func Load() (Config, error) {
	cfg := Config{
		Roster: RosterConfig{
			Path: "data/roster.csv",
		},
		Probation: ProbationConfig{
			WithinDays: 30,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}

	if path := os.Getenv("ROSTERKIT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if rosterPath := os.Getenv("ROSTERKIT_ROSTER_PATH"); rosterPath != "" {
		cfg.Roster.Path = rosterPath
	}
	if withinStr := os.Getenv("ROSTERKIT_PROBATION_WITHIN_DAYS"); withinStr != "" {
		within, err := strconv.Atoi(withinStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROSTERKIT_PROBATION_WITHIN_DAYS: %w", err)
		}
		cfg.Probation.WithinDays = within
	}
	if level := os.Getenv("ROSTERKIT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
