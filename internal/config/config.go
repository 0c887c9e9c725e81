// Package config loads the demo-data configuration: defaults, then an
// optional YAML file, then ADMINDEMO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/inaiurai/admindemo/internal/services"
)

const envPrefix = "ADMINDEMO_"

// Output formats accepted by Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to build a dashboard.
type Config struct {
	// Seed drives every generator. Per-kind seeds are derived from it.
	Seed uint64 `yaml:"seed"`

	// Now anchors every generated timestamp. Zero means the wall clock at
	// startup, which makes output differ between runs.
	Now time.Time `yaml:"now"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Format selects the snapshot encoding: json or yaml.
	Format string `yaml:"format"`

	// Counts is the initial record count per store.
	Counts Counts `yaml:"counts"`
}

type Counts struct {
	Users         int `yaml:"users"`
	Workspaces    int `yaml:"workspaces"`
	Subscriptions int `yaml:"subscriptions"`
	Features      int `yaml:"features"`
	APIKeys       int `yaml:"api_keys"`
	Notifications int `yaml:"notifications"`
	Tickets       int `yaml:"tickets"`
}

// ByKind returns the counts keyed by entity kind.
func (c Counts) ByKind() map[string]int {
	return map[string]int{
		services.KindUsers:         c.Users,
		services.KindWorkspaces:    c.Workspaces,
		services.KindSubscriptions: c.Subscriptions,
		services.KindFeatures:      c.Features,
		services.KindAPIKeys:       c.APIKeys,
		services.KindNotifications: c.Notifications,
		services.KindTickets:       c.Tickets,
	}
}

func (c *Counts) fields() map[string]*int {
	return map[string]*int{
		"USERS":         &c.Users,
		"WORKSPACES":    &c.Workspaces,
		"SUBSCRIPTIONS": &c.Subscriptions,
		"FEATURES":      &c.Features,
		"API_KEYS":      &c.APIKeys,
		"NOTIFICATIONS": &c.Notifications,
		"TICKETS":       &c.Tickets,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Seed:     42,
		LogLevel: "info",
		Format:   FormatJSON,
		Counts: Counts{
			Users:         50,
			Workspaces:    20,
			Subscriptions: 30,
			Features:      15,
			APIKeys:       10,
			Notifications: 20,
			Tickets:       25,
		},
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
// path may be empty, in which case ADMINDEMO_CONFIG is consulted.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv overrides cfg with ADMINDEMO_* variables.
func LoadFromEnv(cfg *Config) error {
	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(envPrefix + "NOW"); v != "" {
		now, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%sNOW: %w", envPrefix, err)
		}
		cfg.Now = now
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envPrefix + "FORMAT"); v != "" {
		cfg.Format = v
	}
	for name, dst := range cfg.Counts.fields() {
		key := envPrefix + "COUNT_" + name
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

// Validate rejects negative counts, unknown formats and unknown log levels.
func (c *Config) Validate() error {
	for kind, n := range c.Counts.ByKind() {
		if n < 0 {
			return fmt.Errorf("%w: counts.%s must be >= 0, got %d", ErrInvalidConfig, kind, n)
		}
	}
	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format must be json or yaml, got %q", ErrInvalidConfig, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return l, nil
}
