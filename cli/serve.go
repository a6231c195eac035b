package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/chartlab/market"
	"github.com/rustyeddy/chartlab/web"
)

func newServeCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API and market-data feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc)
			if err != nil {
				return err
			}

			log, err := newLogger(rc)
			if err != nil {
				return err
			}

			jnl, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer jnl.Close()

			interval, err := cfg.Feed.ParsePollInterval()
			if err != nil {
				return err
			}
			ttl, err := cfg.Feed.ParseCacheTTL()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store := market.NewSnapshotStore()
			client := &market.Client{BaseURL: cfg.Feed.BaseURL}
			feed := market.NewFeed(client, store, cfg.Feed.Symbols,
				interval, ttl, log.With().Str("component", "feed").Logger())

			go func() {
				if err := feed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error().Err(err).Msg("feed stopped")
				}
			}()

			srv := web.NewServer(cfg, log.With().Str("component", "web").Logger(), feed, jnl)
			return srv.Run(ctx)
		},
	}
}
