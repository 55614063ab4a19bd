// Package config reads and writes the fisc.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ohada-dev/fisc/internal/rates"
)

// Config represents the top-level fisc.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Server   ServerConfig   `yaml:"server"`
	Audit    AuditConfig    `yaml:"audit"`
}

// BusinessConfig identifies the business entity and its jurisdiction.
type BusinessConfig struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"` // ISO-2 OHADA member code
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// LedgerConfig tunes entry validation.
type LedgerConfig struct {
	BalanceTolerance float64 `yaml:"balance_tolerance"`
}

// ServerConfig controls the HTTP tool server.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// AuditConfig controls the tool-invocation audit log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a fisc.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, country string) *Config {
	if _, ok := rates.Normalize(country); !ok {
		country = string(rates.DefaultCountry)
	}
	return &Config{
		Business: BusinessConfig{
			Name:    businessName,
			Country: country,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Ledger: LedgerConfig{
			BalanceTolerance: 0.01,
		},
		Server: ServerConfig{
			Listen: "127.0.0.1:8487",
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "audit.csv",
		},
	}
}
