package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordPlan(p PlanRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO plans
		(plan_id, symbol, side, entry_price, stop_loss, take_profit,
		 account_size, risk_percent, leverage, risk_amount, risk_reward,
		 position_size, quantity, liquidation_price, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PlanID, p.Symbol, p.Side, p.EntryPrice, p.StopLoss, p.TakeProfit,
		p.AccountSize, p.RiskPercent, p.Leverage, p.RiskAmount, p.RiskReward,
		p.PositionSize, p.Quantity, p.LiquidationPrice, p.Time,
	)
	return err
}

func (j *SQLite) ListPlans(symbol string, limit int) ([]PlanRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT plan_id, symbol, side, entry_price, stop_loss, take_profit,
		       account_size, risk_percent, leverage, risk_amount, risk_reward,
		       position_size, quantity, liquidation_price, time
		FROM plans`
	args := []any{}
	if symbol != "" {
		query += ` WHERE symbol = ?`
		args = append(args, symbol)
	}
	query += ` ORDER BY time DESC, plan_id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlanRecord
	for rows.Next() {
		var p PlanRecord
		if err := rows.Scan(
			&p.PlanID, &p.Symbol, &p.Side, &p.EntryPrice, &p.StopLoss,
			&p.TakeProfit, &p.AccountSize, &p.RiskPercent, &p.Leverage,
			&p.RiskAmount, &p.RiskReward, &p.PositionSize, &p.Quantity,
			&p.LiquidationPrice, &p.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
