// Package cli wires the chartd commands.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/chartlab/config"
	"github.com/rustyeddy/chartlab/journal"
)

// RootConfig carries the persistent flags shared by every subcommand.
type RootConfig struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	NoColor    bool
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "chartd",
		Short:         "chartd — chart annotation and trade-geometry engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite plan journal (overrides config)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newServeCmd(rc),
		newCalcCmd(rc),
		newPlansCmd(rc),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config, with root-flag overrides.
func loadConfig(rc *RootConfig) (*config.Config, error) {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if rc.DBPath != "" {
		cfg.Journal.Type = "sqlite"
		cfg.Journal.DBPath = rc.DBPath
	}

	return cfg, nil
}

func newLogger(rc *RootConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(rc.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("bad log level %q: %w", rc.LogLevel, err)
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: rc.NoColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

// openJournal builds the journal backend named by the config.
func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.PlansFile)
	case "none":
		return journal.Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
}
