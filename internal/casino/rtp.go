package casino

import (
	"sync"

	"github.com/shopspring/decimal"
)

// RTPTracker observes stake and payout volume. Payout multipliers are
// fixed by the game rules, so the tracker reports and never adjusts.
type RTPTracker struct {
	mu          sync.Mutex
	totalStake  decimal.Decimal
	totalPayout decimal.Decimal
}

func NewRTP() *RTPTracker {
	return &RTPTracker{}
}

func (r *RTPTracker) Record(stake, payout decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalStake = r.totalStake.Add(stake)
	r.totalPayout = r.totalPayout.Add(payout)
}

// ReturnToPlayer reports payout/stake so far, zero before any round.
func (r *RTPTracker) ReturnToPlayer() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.totalStake.Sign() == 0 {
		return decimal.Zero
	}
	return r.totalPayout.Div(r.totalStake)
}

func (r *RTPTracker) Volumes() (stake, payout decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalStake, r.totalPayout
}
