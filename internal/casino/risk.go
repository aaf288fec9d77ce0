package casino

import (
	"github.com/shopspring/decimal"

	"bankroll/internal/ledger"
)

// RiskEngine validates stakes before any balance is touched.
type RiskEngine struct {
	MaxBet decimal.Decimal
}

func NewRisk() *RiskEngine {
	return &RiskEngine{MaxBet: decimal.NewFromInt(1000)}
}

func (r *RiskEngine) Validate(stake decimal.Decimal) error {
	if stake.Sign() <= 0 {
		return ledger.ErrInvalidAmount
	}
	if stake.GreaterThan(r.MaxBet) {
		return ErrMaxBet
	}
	return nil
}
