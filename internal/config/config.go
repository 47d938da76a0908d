package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config represents the accounts configuration file.
type Config struct {
	Accounts []Account     `yaml:"accounts"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
}

// Account declares one credential lookup: the service URL, the
// authentication realm grouping its credentials, and optionally the
// username to ask the helper for.
type Account struct {
	Realm    string `yaml:"realm"`
	URL      string `yaml:"url"`
	Username string `yaml:"username,omitempty"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug|info|warn|error
	Format string `yaml:"format,omitempty"` // text|json
}

// Load loads configuration from the specified file. Environment variables
// from .env/.env.local are overlaid first (never overriding the process
// environment) and ${VAR} references in the file body are expanded before
// unmarshalling, so passwords and usernames can stay out of the file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every account and reports all problems at once instead
// of stopping at the first, so a misconfigured file needs one edit cycle.
func (c *Config) Validate() error {
	var result *multierror.Error
	if len(c.Accounts) == 0 {
		result = multierror.Append(result, fmt.Errorf("no accounts configured"))
	}
	for i, a := range c.Accounts {
		if a.Realm == "" {
			result = multierror.Append(result, fmt.Errorf("account %d: realm is required", i))
		}
		if a.URL == "" {
			result = multierror.Append(result, fmt.Errorf("account %d: url is required", i))
		}
	}
	return result.ErrorOrNil()
}
