package savings

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bankroll/internal/account"
	"bankroll/internal/event"
	"bankroll/internal/ledger"
)

func setup(t *testing.T, balance int64) (*Service, int64) {
	t.Helper()
	repo := account.NewRepo()
	acc, err := repo.Create("alice", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if balance > 0 {
		l := ledger.New(repo, event.NewBus())
		if _, err := l.Deposit(acc.Number, decimal.NewFromInt(balance)); err != nil {
			t.Fatal(err)
		}
	}
	return New(repo), acc.Number
}

func TestProgressUnsetByDefault(t *testing.T) {
	svc, n := setup(t, 100)

	p, err := svc.Progress(n)
	if err != nil {
		t.Fatal(err)
	}
	if p.Set || p.Percent != 0 {
		t.Fatalf("progress = %+v, want unset", p)
	}
}

func TestSetGoalRequiresPositiveAmount(t *testing.T) {
	svc, n := setup(t, 0)

	for _, amt := range []int64{0, -10} {
		if err := svc.SetGoal(n, decimal.NewFromInt(amt)); !errors.Is(err, ledger.ErrInvalidAmount) {
			t.Fatalf("SetGoal(%d) err = %v, want ErrInvalidAmount", amt, err)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	svc, n := setup(t, 50)

	if err := svc.SetGoal(n, decimal.NewFromInt(200)); err != nil {
		t.Fatal(err)
	}
	p, _ := svc.Progress(n)
	if !p.Set || p.Percent != 25 {
		t.Fatalf("progress = %+v, want 25%% complete", p)
	}
}

func TestProgressCapsAtHundred(t *testing.T) {
	svc, n := setup(t, 300)

	svc.SetGoal(n, decimal.NewFromInt(200))
	p, _ := svc.Progress(n)
	if p.Percent != 100 {
		t.Fatalf("percent = %v, want capped at 100", p.Percent)
	}
}

func TestClearGoal(t *testing.T) {
	svc, n := setup(t, 100)

	svc.SetGoal(n, decimal.NewFromInt(200))
	if err := svc.ClearGoal(n); err != nil {
		t.Fatal(err)
	}
	p, _ := svc.Progress(n)
	if p.Set {
		t.Fatalf("goal still set after clear: %+v", p)
	}
}
