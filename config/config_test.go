package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestLoadFromFile_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9000"
feed:
  symbols: [bitcoin, ethereum]
  poll_interval: 30s
journal:
  type: none
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, cfg.Feed.Symbols)

	d, err := cfg.Feed.ParsePollInterval()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	// TTL falls back to the poll interval.
	ttl, err := cfg.Feed.ParseCacheTTL()
	require.NoError(t, err)
	assert.Equal(t, d, ttl)

	// Unspecified sections keep defaults.
	assert.InDelta(t, 0.1, cfg.Canvas.PaddingFraction, 1e-9)
	assert.InDelta(t, 120.0, cfg.Canvas.BoxWidthPx, 1e-9)
}

func TestLoadFromFile_JSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server": {"addr": ":9001"}, "feed": {"symbols": ["bitcoin"], "poll_interval": "5s"}, "journal": {"type": "none"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":9001", cfg.Server.Addr)
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no addr", func(c *Config) { c.Server.Addr = "" }},
		{"no symbols", func(c *Config) { c.Feed.Symbols = nil }},
		{"bad interval", func(c *Config) { c.Feed.PollInterval = "soon" }},
		{"padding too big", func(c *Config) { c.Canvas.PaddingFraction = 0.5 }},
		{"zero separation", func(c *Config) { c.Canvas.MinSeparationPx = 0 }},
		{"narrow box", func(c *Config) { c.Canvas.BoxWidthPx = 10 }},
		{"bad risk pct", func(c *Config) { c.Risk.DefaultRiskPercent = 0 }},
		{"bad journal type", func(c *Config) { c.Journal.Type = "mongo" }},
		{"sqlite without path", func(c *Config) { c.Journal.DBPath = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
