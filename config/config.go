// Package config loads the daemon configuration from YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete daemon configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Feed    FeedConfig    `json:"feed" yaml:"feed"`
	Canvas  CanvasConfig  `json:"canvas" yaml:"canvas"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// ServerConfig controls the HTTP/websocket listener.
type ServerConfig struct {
	Addr         string   `json:"addr" yaml:"addr"`
	AllowOrigins []string `json:"allow_origins,omitempty" yaml:"allow_origins,omitempty"`
}

// FeedConfig controls the market-data poller.
type FeedConfig struct {
	BaseURL      string   `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Symbols      []string `json:"symbols" yaml:"symbols"`
	PollInterval string   `json:"poll_interval" yaml:"poll_interval"` // e.g. "10s"
	CacheTTL     string   `json:"cache_ttl,omitempty" yaml:"cache_ttl,omitempty"`
}

// ParsePollInterval converts the poll interval to a time.Duration.
func (f FeedConfig) ParsePollInterval() (time.Duration, error) {
	return time.ParseDuration(f.PollInterval)
}

// ParseCacheTTL converts the cache TTL; empty means "same as the poll
// interval".
func (f FeedConfig) ParseCacheTTL() (time.Duration, error) {
	if f.CacheTTL == "" {
		return f.ParsePollInterval()
	}
	return time.ParseDuration(f.CacheTTL)
}

// CanvasConfig holds the pixel-space parameters of the annotation engine.
type CanvasConfig struct {
	PaddingFraction   float64 `json:"padding_fraction" yaml:"padding_fraction"`
	MinSeparationPx   float64 `json:"min_separation_px" yaml:"min_separation_px"`
	MoveMarginPx      float64 `json:"move_margin_px" yaml:"move_margin_px"`
	BoxWidthPx        float64 `json:"box_width_px" yaml:"box_width_px"`
	MinBoxWidthPx     float64 `json:"min_box_width_px" yaml:"min_box_width_px"`
	TPOffsetPx        float64 `json:"tp_offset_px" yaml:"tp_offset_px"`
	SLOffsetPx        float64 `json:"sl_offset_px" yaml:"sl_offset_px"`
	DuplicateOffsetPx float64 `json:"duplicate_offset_px" yaml:"duplicate_offset_px"`
}

// RiskConfig holds form defaults for the risk calculator.
type RiskConfig struct {
	DefaultAccountSize float64 `json:"default_account_size" yaml:"default_account_size"`
	DefaultRiskPercent float64 `json:"default_risk_percent" yaml:"default_risk_percent"`
	DefaultLeverage    float64 `json:"default_leverage" yaml:"default_leverage"`
}

// JournalConfig selects the plan-journal backend.
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "sqlite", "csv" or "none"
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	PlansFile string `json:"plans_file,omitempty" yaml:"plans_file,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if len(c.Feed.Symbols) == 0 {
		return fmt.Errorf("feed.symbols must name at least one symbol")
	}
	if d, err := c.Feed.ParsePollInterval(); err != nil || d <= 0 {
		return fmt.Errorf("feed.poll_interval must be a positive duration")
	}
	if _, err := c.Feed.ParseCacheTTL(); err != nil {
		return fmt.Errorf("feed.cache_ttl must be a duration")
	}
	if c.Canvas.PaddingFraction < 0 || c.Canvas.PaddingFraction >= 0.5 {
		return fmt.Errorf("canvas.padding_fraction must be in [0, 0.5)")
	}
	if c.Canvas.MinSeparationPx <= 0 {
		return fmt.Errorf("canvas.min_separation_px must be positive")
	}
	if c.Canvas.BoxWidthPx < c.Canvas.MinBoxWidthPx {
		return fmt.Errorf("canvas.box_width_px must be at least min_box_width_px")
	}
	if c.Risk.DefaultRiskPercent <= 0 || c.Risk.DefaultRiskPercent > 100 {
		return fmt.Errorf("risk.default_risk_percent must be in (0, 100]")
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.PlansFile == "" {
			return fmt.Errorf("journal.plans_file required for csv journal")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8090",
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Feed: FeedConfig{
			Symbols:      []string{"bitcoin"},
			PollInterval: "10s",
		},
		Canvas: CanvasConfig{
			PaddingFraction:   0.1,
			MinSeparationPx:   10,
			MoveMarginPx:      20,
			BoxWidthPx:        120,
			MinBoxWidthPx:     80,
			TPOffsetPx:        50,
			SLOffsetPx:        30,
			DuplicateOffsetPx: 50,
		},
		Risk: RiskConfig{
			DefaultAccountSize: 10000,
			DefaultRiskPercent: 2,
			DefaultLeverage:    10,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./chartlab.sqlite",
		},
	}
}
