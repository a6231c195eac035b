package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSV appends plan records to a single file. Write-only: ListPlans is not
// supported on this backend.
type CSV struct {
	w    *csv.Writer
	file *os.File
}

func NewCSV(path string) (*CSV, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)

	header := []string{
		"plan_id", "symbol", "side", "entry_price", "stop_loss",
		"take_profit", "account_size", "risk_percent", "leverage",
		"risk_amount", "risk_reward", "position_size", "quantity",
		"liquidation_price", "time",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSV{w: w, file: file}, nil
}

func (j *CSV) RecordPlan(p PlanRecord) error {
	err := j.w.Write([]string{
		p.PlanID,
		p.Symbol,
		p.Side,
		f(p.EntryPrice),
		f(p.StopLoss),
		f(p.TakeProfit),
		f(p.AccountSize),
		f(p.RiskPercent),
		f(p.Leverage),
		f(p.RiskAmount),
		f(p.RiskReward),
		f(p.PositionSize),
		f(p.Quantity),
		f(p.LiquidationPrice),
		p.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) ListPlans(string, int) ([]PlanRecord, error) {
	return nil, ErrQueryUnsupported
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
