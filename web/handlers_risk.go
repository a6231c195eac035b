package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/chartlab/id"
	"github.com/rustyeddy/chartlab/journal"
	"github.com/rustyeddy/chartlab/risk"
)

type riskCalcRequest struct {
	Symbol      string  `json:"symbol"`
	EntryPrice  float64 `json:"entry_price"`
	StopLoss    float64 `json:"stop_loss"`
	TakeProfit  float64 `json:"take_profit"`
	AccountSize float64 `json:"account_size"`
	RiskPercent float64 `json:"risk_percent"`
	Leverage    float64 `json:"leverage"`
	Side        string  `json:"side"`
}

func (s *Server) handleRiskCalc(c *gin.Context) {
	var req riskCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	side, err := risk.ParseSide(strings.ToLower(req.Side))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Form defaults fill unset account fields.
	if req.AccountSize == 0 {
		req.AccountSize = s.cfg.Risk.DefaultAccountSize
	}
	if req.RiskPercent == 0 {
		req.RiskPercent = s.cfg.Risk.DefaultRiskPercent
	}
	if req.Leverage == 0 {
		req.Leverage = s.cfg.Risk.DefaultLeverage
	}

	params := risk.Params{
		EntryPrice:  req.EntryPrice,
		StopLoss:    req.StopLoss,
		TakeProfit:  req.TakeProfit,
		AccountSize: req.AccountSize,
		RiskPercent: req.RiskPercent,
		Leverage:    req.Leverage,
		Side:        side,
	}

	if d := risk.Check(params); !d.Allowed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"violations": d.Violations})
		return
	}

	metrics := risk.Calculate(params)

	planID := id.New()
	rec := journal.PlanRecord{
		PlanID:           planID,
		Symbol:           req.Symbol,
		Side:             side.String(),
		EntryPrice:       params.EntryPrice,
		StopLoss:         params.StopLoss,
		TakeProfit:       params.TakeProfit,
		AccountSize:      params.AccountSize,
		RiskPercent:      params.RiskPercent,
		Leverage:         params.Leverage,
		RiskAmount:       metrics.RiskAmount,
		RiskReward:       metrics.RiskRewardRatio,
		PositionSize:     metrics.PositionSizeLeveraged,
		Quantity:         metrics.Quantity,
		LiquidationPrice: metrics.LiquidationPrice,
		Time:             time.Now().UTC(),
	}
	if err := s.journal.RecordPlan(rec); err != nil {
		// The calculation is still good; journaling is best-effort.
		s.log.Warn().Err(err).Str("plan", planID).Msg("journal plan failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id": planID,
		"metrics": metrics,
	})
}

func (s *Server) handleListPlans(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 500 {
			c.JSON(http.StatusBadRequest, &ValidationError{
				Field: "limit", Message: "must be an integer in [1, 500]"})
			return
		}
		limit = n
	}

	plans, err := s.journal.ListPlans(c.Query("symbol"), limit)
	if err != nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
