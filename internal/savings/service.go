// Package savings is a derived view over the account balance: how far a
// balance has progressed toward a stored goal. It never mutates the
// balance itself.
package savings

import (
	"github.com/shopspring/decimal"

	"bankroll/internal/account"
	"bankroll/internal/ledger"
)

type Service struct {
	repo *account.Repo
}

// Progress reports completion toward the goal. Set is false while no goal
// is stored (goal zero).
type Progress struct {
	Set     bool            `json:"set"`
	Goal    decimal.Decimal `json:"goal"`
	Balance decimal.Decimal `json:"balance"`
	Percent float64         `json:"percent"`
}

func New(repo *account.Repo) *Service {
	return &Service{repo: repo}
}

// SetGoal stores a new target. The amount must be positive.
func (s *Service) SetGoal(number int64, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ledger.ErrInvalidAmount
	}
	return s.repo.With(number, func(a *account.Account) error {
		a.Goal = amount
		return nil
	})
}

// ClearGoal resets the target to zero, i.e. unset.
func (s *Service) ClearGoal(number int64) error {
	return s.repo.With(number, func(a *account.Account) error {
		a.Goal = decimal.Zero
		return nil
	})
}

func (s *Service) Progress(number int64) (Progress, error) {
	a, err := s.repo.Get(number)
	if err != nil {
		return Progress{}, err
	}
	if a.Goal.Sign() == 0 {
		return Progress{Balance: a.Balance}, nil
	}

	ratio, _ := a.Balance.Div(a.Goal).Float64()
	if ratio > 1 {
		ratio = 1
	}
	return Progress{
		Set:     true,
		Goal:    a.Goal,
		Balance: a.Balance,
		Percent: ratio * 100,
	}, nil
}
