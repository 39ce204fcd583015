package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the countdown CLI.
type Config struct {
	DBPath          string
	RefreshInterval time.Duration
	SearchDebounce  time.Duration
	DefaultSort     string
	Timezone        string
	LogLevel        string
	Bell            bool
	// OpenEvent is set from -e only.
	OpenEvent string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "countdown.db"
	c.RefreshInterval = time.Second
	c.SearchDebounce = 250 * time.Millisecond
	c.DefaultSort = "time-asc"
	c.Timezone = "Local"
	c.LogLevel = "info"
	c.Bell = true
	c.OpenEvent = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if given), the environment (a .env file in the working
// directory is loaded first, if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return load(os.Args[1:], os.Getenv)
}

func load(args []string, getenv func(string) string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg, getenv)
	parseFlags(cfg, args)
	return cfg
}

// Validate rejects settings the CLI cannot run with.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("database path is empty")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", c.RefreshInterval)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("search debounce must not be negative, got %s", c.SearchDebounce)
	}
	return nil
}
