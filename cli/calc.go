package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/chartlab/risk"
)

func newCalcCmd(rc *RootConfig) *cobra.Command {
	var (
		entry, stop, target   float64
		account, riskPct, lev float64
		sideStr               string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "One-shot risk/position calculation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc)
			if err != nil {
				return err
			}

			if account == 0 {
				account = cfg.Risk.DefaultAccountSize
			}
			if riskPct == 0 {
				riskPct = cfg.Risk.DefaultRiskPercent
			}
			if lev == 0 {
				lev = cfg.Risk.DefaultLeverage
			}

			side, err := risk.ParseSide(strings.ToLower(sideStr))
			if err != nil {
				return err
			}

			params := risk.Params{
				EntryPrice:  entry,
				StopLoss:    stop,
				TakeProfit:  target,
				AccountSize: account,
				RiskPercent: riskPct,
				Leverage:    lev,
				Side:        side,
			}

			if d := risk.Check(params); !d.Allowed {
				for _, v := range d.Violations {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", v.Code, v.Msg)
				}
				return fmt.Errorf("plan rejected")
			}

			m := risk.Calculate(params)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Side:              %s\n", side)
			fmt.Fprintf(out, "Stop distance:     %.2f%%\n", m.SLDistancePct)
			fmt.Fprintf(out, "Target distance:   %.2f%%\n", m.TPDistancePct)
			fmt.Fprintf(out, "Risk/Reward:       %.2f\n", m.RiskRewardRatio)
			fmt.Fprintf(out, "Risk amount:       %.2f\n", m.RiskAmount)
			fmt.Fprintf(out, "Position (margin): %.2f\n", m.PositionSizeLeveraged)
			fmt.Fprintf(out, "Quantity:          %.6f\n", m.Quantity)
			fmt.Fprintf(out, "Potential profit:  %.2f\n", m.PotentialProfit)
			fmt.Fprintf(out, "Potential loss:    %.2f\n", m.PotentialLoss)
			fmt.Fprintf(out, "Liquidation (est): %.2f\n", m.LiquidationPrice)
			return nil
		},
	}

	cmd.Flags().Float64Var(&entry, "entry", 0, "Entry price (required)")
	cmd.Flags().Float64Var(&stop, "stop", 0, "Stop-loss price (required)")
	cmd.Flags().Float64Var(&target, "target", 0, "Take-profit price")
	cmd.Flags().Float64Var(&account, "account", 0, "Account size (defaults from config)")
	cmd.Flags().Float64Var(&riskPct, "risk-pct", 0, "Risk percent per trade (defaults from config)")
	cmd.Flags().Float64Var(&lev, "leverage", 0, "Leverage (defaults from config)")
	cmd.Flags().StringVar(&sideStr, "side", "long", "Trade side: long|short")

	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("stop")

	return cmd
}
