package ledger

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"bankroll/internal/account"
	"bankroll/internal/event"
)

func newTestLedger(t *testing.T, balances ...int64) (*Service, *account.Repo, []int64) {
	t.Helper()
	repo := account.NewRepo()
	svc := New(repo, event.NewBus())

	numbers := make([]int64, 0, len(balances))
	for i, bal := range balances {
		acc, err := repo.Create(string(rune('a'+i)), "hash")
		if err != nil {
			t.Fatal(err)
		}
		if bal > 0 {
			if _, err := svc.Deposit(acc.Number, decimal.NewFromInt(bal)); err != nil {
				t.Fatal(err)
			}
		}
		numbers = append(numbers, acc.Number)
	}
	return svc, repo, numbers
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestDepositWithdrawRoundTrip(t *testing.T) {
	svc, _, nums := newTestLedger(t, 100)
	n := nums[0]

	before, _ := svc.Balance(n)
	if _, err := svc.Deposit(n, dec(37)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Withdraw(n, dec(37)); err != nil {
		t.Fatal(err)
	}
	after, _ := svc.Balance(n)
	if !after.Equal(before) {
		t.Fatalf("balance = %s, want %s", after, before)
	}
}

func TestInvalidAmounts(t *testing.T) {
	svc, _, nums := newTestLedger(t, 100)
	n := nums[0]

	for _, amt := range []decimal.Decimal{decimal.Zero, dec(-5)} {
		if _, err := svc.Deposit(n, amt); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Deposit(%s) err = %v, want ErrInvalidAmount", amt, err)
		}
		if _, err := svc.Withdraw(n, amt); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Withdraw(%s) err = %v, want ErrInvalidAmount", amt, err)
		}
	}
}

func TestInsufficientFundsLeavesStateUntouched(t *testing.T) {
	svc, _, nums := newTestLedger(t, 50)
	n := nums[0]

	histBefore, _ := svc.History(n)
	if _, err := svc.Withdraw(n, dec(51)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	bal, _ := svc.Balance(n)
	if !bal.Equal(dec(50)) {
		t.Fatalf("balance changed on failed withdrawal: %s", bal)
	}
	histAfter, _ := svc.History(n)
	if len(histAfter) != len(histBefore) {
		t.Fatalf("history grew on failed withdrawal: %d -> %d", len(histBefore), len(histAfter))
	}
}

func TestEveryMutationLogsOneEntry(t *testing.T) {
	svc, _, nums := newTestLedger(t, 0)
	n := nums[0]

	svc.Deposit(n, dec(10))
	svc.Deposit(n, dec(20))
	svc.Withdraw(n, dec(5))

	hist, _ := svc.History(n)
	if len(hist) != 3 {
		t.Fatalf("history len = %d, want 3", len(hist))
	}

	want := []struct {
		kind   account.TxKind
		amount int64
	}{
		{account.TxDeposit, 10},
		{account.TxDeposit, 20},
		{account.TxWithdrawal, 5},
	}
	for i, w := range want {
		if hist[i].Kind != w.kind || !hist[i].Amount.Equal(dec(w.amount)) {
			t.Fatalf("entry %d = %s %s, want %s %d", i, hist[i].Kind, hist[i].Amount, w.kind, w.amount)
		}
	}
}

func TestTransfer(t *testing.T) {
	svc, _, nums := newTestLedger(t, 100, 10)
	from, to := nums[0], nums[1]

	if err := svc.Transfer(from, from, dec(10)); !errors.Is(err, ErrSelfTransfer) {
		t.Fatalf("self transfer err = %v", err)
	}
	if err := svc.Transfer(from, to, dec(1000)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("oversized transfer err = %v", err)
	}

	if err := svc.Transfer(from, to, dec(40)); err != nil {
		t.Fatal(err)
	}
	fb, _ := svc.Balance(from)
	tb, _ := svc.Balance(to)
	if !fb.Equal(dec(60)) || !tb.Equal(dec(50)) {
		t.Fatalf("balances = %s, %s, want 60, 50", fb, tb)
	}

	fh, _ := svc.History(from)
	th, _ := svc.History(to)
	out := fh[len(fh)-1]
	in := th[len(th)-1]
	if out.Kind != account.TxTransferOut || out.Note != "To Account #1001" {
		t.Fatalf("out entry = %s %q", out.Kind, out.Note)
	}
	if in.Kind != account.TxTransferIn || in.Note != "From Account #1000" {
		t.Fatalf("in entry = %s %q", in.Kind, in.Note)
	}
}

// Opposite-direction transfers hammer both accounts; the ascending lock
// order must not deadlock and the combined balance must be conserved at
// every consistent read.
func TestTransferAtomicUnderConcurrency(t *testing.T) {
	svc, repo, nums := newTestLedger(t, 500, 500)
	a, b := nums[0], nums[1]
	total := dec(1000)

	stop := make(chan struct{})
	var readerErr error
	var readerWg sync.WaitGroup
	readerWg.Add(1)
	go func() {
		defer readerWg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			repo.WithPair(a, b, func(x, y *account.Account) error {
				if !x.Balance.Add(y.Balance).Equal(total) {
					readerErr = errors.New("observed partial transfer: " +
						x.Balance.String() + " + " + y.Balance.String())
				}
				if x.Balance.Sign() < 0 || y.Balance.Sign() < 0 {
					readerErr = errors.New("observed negative balance")
				}
				return nil
			})
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		from, to := a, b
		if i%2 == 0 {
			from, to = b, a
		}
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				svc.Transfer(from, to, dec(3))
			}
		}()
	}
	wg.Wait()
	close(stop)
	readerWg.Wait()

	if readerErr != nil {
		t.Fatal(readerErr)
	}
	fb, _ := svc.Balance(a)
	tb, _ := svc.Balance(b)
	if !fb.Add(tb).Equal(total) {
		t.Fatalf("total = %s, want %s", fb.Add(tb), total)
	}
}
