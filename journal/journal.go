// Package journal records computed trade plans so the dashboard can show
// a plan history. Annotation boxes are deliberately not journaled — they
// are ephemeral session state.
package journal

import (
	"errors"
	"time"
)

var ErrQueryUnsupported = errors.New("journal backend does not support queries")

// PlanRecord is one risk calculation: the inputs and the derived metrics
// worth listing back.
type PlanRecord struct {
	PlanID           string
	Symbol           string
	Side             string
	EntryPrice       float64
	StopLoss         float64
	TakeProfit       float64
	AccountSize      float64
	RiskPercent      float64
	Leverage         float64
	RiskAmount       float64
	RiskReward       float64
	PositionSize     float64
	Quantity         float64
	LiquidationPrice float64
	Time             time.Time
}

type Journal interface {
	RecordPlan(PlanRecord) error

	// ListPlans returns the most recent plans, newest first, optionally
	// filtered by symbol ("" means all). Backends without a query side
	// return ErrQueryUnsupported.
	ListPlans(symbol string, limit int) ([]PlanRecord, error)

	Close() error
}

// Noop discards every record; used when journaling is disabled.
type Noop struct{}

func (Noop) RecordPlan(PlanRecord) error { return nil }

func (Noop) ListPlans(string, int) ([]PlanRecord, error) { return nil, nil }

func (Noop) Close() error { return nil }
