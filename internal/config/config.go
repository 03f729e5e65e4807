// Package config loads SplitNeat settings from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest first).
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/splitneat/internal/models"
)

// Store backends.
const (
	// StoreMemory keeps friends in a slice.
	StoreMemory = "memory"
	// StoreSQLite keeps friends in an in-memory SQLite database.
	StoreSQLite = "sqlite"
)

// Config holds runtime settings.
type Config struct {
	// Addr is the HTTP listen address for the serve command.
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Store selects the friend storage backend: memory or sqlite.
	// Both are volatile; state resets on restart.
	Store string `yaml:"store"`

	// Friends replaces the built-in seed friends when non-empty.
	Friends []SeedFriend `yaml:"friends"`
}

// SeedFriend is a friend as written in the config file.
// Balance is text so amounts like "12.50" stay exact.
type SeedFriend struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Image   string `yaml:"image"`
	Balance string `yaml:"balance"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Store:    StoreMemory,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the YAML file at path (skipped when path is empty) and applies
// the ADDR, LOG_LEVEL and STORE environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Store = getEnv("STORE", cfg.Store)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the store name and the seed friends.
func (c Config) Validate() error {
	if c.Store != StoreMemory && c.Store != StoreSQLite {
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreMemory, StoreSQLite)
	}
	_, err := c.SeedFriends()
	return err
}

// SeedFriends returns the configured seed friends, or the built-in ones.
func (c Config) SeedFriends() ([]models.Friend, error) {
	if len(c.Friends) == 0 {
		return models.SeedFriends(), nil
	}

	seen := make(map[int]bool, len(c.Friends))
	friends := make([]models.Friend, 0, len(c.Friends))
	for _, sf := range c.Friends {
		if sf.Name == "" {
			return nil, errors.New("seed friend name is required")
		}
		if seen[sf.ID] {
			return nil, fmt.Errorf("duplicate seed friend id %d", sf.ID)
		}
		seen[sf.ID] = true

		balance := decimal.Zero
		if sf.Balance != "" {
			b, err := decimal.NewFromString(sf.Balance)
			if err != nil {
				return nil, fmt.Errorf("invalid balance for seed friend %q: %w", sf.Name, err)
			}
			balance = b
		}

		friends = append(friends, models.Friend{
			ID:      sf.ID,
			Name:    sf.Name,
			Image:   sf.Image,
			Balance: balance,
		})
	}
	return friends, nil
}
