// Package config reads and writes contavel.yaml, the per-branch
// configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the configuration file written at the data dir root.
const Filename = "contavel.yaml"

// Config represents the top-level contavel.yaml configuration.
type Config struct {
	Bank      BankConfig      `yaml:"bank"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// BankConfig identifies the branch and its defaults.
type BankConfig struct {
	Name        string `yaml:"name"`
	Branch      string `yaml:"branch"`
	DefaultTier string `yaml:"default_tier"`
}

// SchedulerConfig controls the settlement daemon.
type SchedulerConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	IntervalMinutes int    `yaml:"interval_minutes"`
}

// Load reads a contavel.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new branch.
func Default(bankName, branch string) *Config {
	return &Config{
		Bank: BankConfig{
			Name:        bankName,
			Branch:      branch,
			DefaultTier: "standard",
		},
		Scheduler: SchedulerConfig{
			ListenAddr:      ":9185",
			IntervalMinutes: 60,
		},
	}
}
