package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Decision is the result of vetting a plan before computing or journaling
// it. Allowed starts true and flips on the first violation.
type Decision struct {
	Allowed    bool
	Violations []Violation
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Check vets Params for values the calculator cannot do anything sensible
// with. It is stricter than Calculate's own guard: Calculate degrades
// quietly, Check names the problem for the UI.
func Check(p Params) Decision {
	d := Decision{Allowed: true}

	if p.EntryPrice <= 0 {
		d.add("NO_ENTRY", "entry price must be positive")
	}
	if p.StopLoss <= 0 {
		d.add("NO_STOP", "stop loss must be positive")
	}
	if p.EntryPrice > 0 && p.StopLoss == p.EntryPrice {
		d.add("ZERO_STOP_DISTANCE", "stop loss equals entry; risk is undefined")
	}
	if p.AccountSize <= 0 {
		d.add("NO_ACCOUNT", "account size must be positive")
	}
	if p.RiskPercent <= 0 || p.RiskPercent > 100 {
		d.add("BAD_RISK_PCT",
			fmt.Sprintf("risk percent %.2f out of range (0, 100]", p.RiskPercent))
	}
	if p.Leverage <= 0 {
		d.add("NO_LEVERAGE", "leverage must be positive")
	} else if p.Leverage > 125 {
		d.add("LEVERAGE_TOO_HIGH",
			fmt.Sprintf("leverage %.0fx exceeds 125x", p.Leverage))
	}

	return d
}
