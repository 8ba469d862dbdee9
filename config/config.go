package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration
type Config struct {
	Version   string    `yaml:"version"`
	OutputDir string    `yaml:"output_dir,omitempty"`
	StorePath string    `yaml:"store_path,omitempty"`
	LogLevel  string    `yaml:"log_level,omitempty"`
	Accounts  []Account `yaml:"accounts"`
}

// Account is one scan target: a named credential profile plus an
// optional region override. An empty region list means all enabled
// regions.
type Account struct {
	Name    string   `yaml:"name"`
	Profile string   `yaml:"profile,omitempty"`
	RoleARN string   `yaml:"role_arn,omitempty"`
	Regions []string `yaml:"regions,omitempty"`
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is supplied: one
// account built from the ambient credential chain, all regions.
func Default() *Config {
	return &Config{
		Version:   "1",
		OutputDir: "reports",
		Accounts:  []Account{{Name: "default"}},
	}
}

// Validate ensures config has required fields
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if len(c.Accounts) == 0 {
		return fmt.Errorf("at least one account is required")
	}
	for i, acct := range c.Accounts {
		if acct.Name == "" {
			return fmt.Errorf("account %d: name is required", i)
		}
	}
	return nil
}

// ProfileName returns the credential profile for an account, defaulting
// to the account name when unset.
func (a Account) ProfileName() string {
	if a.Profile != "" {
		return a.Profile
	}
	return a.Name
}
