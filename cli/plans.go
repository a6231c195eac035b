package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newPlansCmd(rc *RootConfig) *cobra.Command {
	var (
		symbol string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List journaled trade plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc)
			if err != nil {
				return err
			}

			jnl, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer jnl.Close()

			plans, err := jnl.ListPlans(symbol, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tSYMBOL\tSIDE\tENTRY\tSTOP\tTARGET\tR:R\tRISK\tQTY")
			for _, p := range plans {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.6f\n",
					p.Time.Format(time.RFC3339), p.Symbol, p.Side,
					p.EntryPrice, p.StopLoss, p.TakeProfit,
					p.RiskReward, p.RiskAmount, p.Quantity)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Filter by symbol")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum plans to list")

	return cmd
}
