package journal

const Schema = `
CREATE TABLE IF NOT EXISTS plans (
	plan_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	entry_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	take_profit REAL NOT NULL,
	account_size REAL NOT NULL,
	risk_percent REAL NOT NULL,
	leverage REAL NOT NULL,
	risk_amount REAL NOT NULL,
	risk_reward REAL NOT NULL,
	position_size REAL NOT NULL,
	quantity REAL NOT NULL,
	liquidation_price REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plans_time ON plans(time);
CREATE INDEX IF NOT EXISTS idx_plans_symbol ON plans(symbol);
`
