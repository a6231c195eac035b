// Package risk derives position sizing and trade metrics from a trade plan.
// Every function is pure; callers recompute on each input change.
package risk

import (
	"fmt"
	"math"
)

// Side is the trade direction.
type Side int

const (
	Long Side = iota
	Short
)

func (s Side) String() string {
	if s == Short {
		return "short"
	}
	return "long"
}

// ParseSide parses "long" or "short".
func ParseSide(s string) (Side, error) {
	switch s {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	default:
		return Long, fmt.Errorf("unknown side %q (want long|short)", s)
	}
}

// MaintenanceMarginPct is the flat maintenance margin used by the
// liquidation approximation. Real exchange formulas vary per instrument
// and margin tier; this is a deliberate simplification.
const MaintenanceMarginPct = 0.5

// Params is a trade plan plus the account context it would be taken in.
type Params struct {
	EntryPrice  float64
	StopLoss    float64
	TakeProfit  float64
	AccountSize float64
	RiskPercent float64
	Leverage    float64
	Side        Side
}

// Metrics is everything derived from Params. Defined is false when entry
// or stop is missing, in which case every numeric field is zero — never
// NaN or Inf.
type Metrics struct {
	SLDistancePct         float64
	TPDistancePct         float64
	RiskRewardRatio       float64
	RiskAmount            float64
	PositionSizeNotional  float64
	PositionSizeLeveraged float64
	Quantity              float64
	PotentialLoss         float64
	PotentialProfit       float64
	LiquidationPrice      float64
	Defined               bool
}

// RR returns the reward/risk distance ratio, 0 when the stop distance is
// zero.
func RR(entry, stop, takeProfit float64) float64 {
	risk := math.Abs(entry - stop)
	reward := math.Abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

// Calculate derives the full metric set for a plan.
//
// Ratio-dependent fields degrade to 0 when the stop distance is zero; a
// plan without a positive entry and stop returns the zero Metrics with
// Defined false.
func Calculate(p Params) Metrics {
	if p.EntryPrice <= 0 || p.StopLoss <= 0 {
		return Metrics{}
	}

	slDistance := math.Abs(p.EntryPrice - p.StopLoss)
	tpDistance := math.Abs(p.TakeProfit - p.EntryPrice)

	slPct := slDistance / p.EntryPrice * 100
	tpPct := tpDistance / p.EntryPrice * 100

	rr := RR(p.EntryPrice, p.StopLoss, p.TakeProfit)

	riskAmount := p.AccountSize * p.RiskPercent / 100

	var notional float64
	if slPct > 0 {
		notional = riskAmount / (slPct / 100)
	}

	var leveraged float64
	if p.Leverage > 0 {
		leveraged = notional / p.Leverage
	}

	quantity := leveraged / p.EntryPrice

	return Metrics{
		SLDistancePct:         slPct,
		TPDistancePct:         tpPct,
		RiskRewardRatio:       rr,
		RiskAmount:            riskAmount,
		PositionSizeNotional:  notional,
		PositionSizeLeveraged: leveraged,
		Quantity:              quantity,
		PotentialLoss:         riskAmount,
		PotentialProfit:       riskAmount * rr,
		LiquidationPrice:      ApproxLiquidationPrice(p.EntryPrice, p.Leverage, p.Side),
		Defined:               true,
	}
}

// ApproxLiquidationPrice estimates the liquidation level for an isolated
// position. It ignores funding and fees and assumes a flat
// MaintenanceMarginPct, so treat it as a ballpark figure, not an exchange
// quote.
func ApproxLiquidationPrice(entry, leverage float64, side Side) float64 {
	if entry <= 0 || leverage <= 0 {
		return 0
	}

	liqDistancePct := (100 / leverage) - MaintenanceMarginPct
	if side == Short {
		return entry * (1 + liqDistancePct/100)
	}
	return entry * (1 - liqDistancePct/100)
}
