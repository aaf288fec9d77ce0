package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bankroll/internal/account"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(t.TempDir() + "/test.sqlite")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	acc := account.Account{
		Number:       1000,
		Username:     "alice",
		PasswordHash: "hash",
		Balance:      decimal.NewFromInt(125),
		Goal:         decimal.NewFromInt(500),
		History: []account.Transaction{
			{Ref: "r1", Kind: account.TxDeposit, Amount: decimal.NewFromInt(200), Time: time.Unix(1700000000, 0)},
			{Ref: "r2", Kind: account.TxWithdrawal, Amount: decimal.NewFromInt(75), Time: time.Unix(1700000100, 0), Note: "atm"},
		},
	}
	if err := store.SaveAccount(acc); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveNextNumber(1001); err != nil {
		t.Fatal(err)
	}

	accounts, next, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 || next != 1001 {
		t.Fatalf("loaded %d accounts, next %d", len(accounts), next)
	}

	got := accounts[0]
	if got.Number != 1000 || got.Username != "alice" || got.PasswordHash != "hash" {
		t.Fatalf("account = %+v", got)
	}
	if !got.Balance.Equal(acc.Balance) || !got.Goal.Equal(acc.Goal) {
		t.Fatalf("amounts = %s / %s", got.Balance, got.Goal)
	}
	if len(got.History) != 2 {
		t.Fatalf("history len = %d", len(got.History))
	}
	if got.History[0].Ref != "r1" || got.History[1].Note != "atm" {
		t.Fatalf("history order lost: %+v", got.History)
	}
	if got.History[1].Kind != account.TxWithdrawal || !got.History[1].Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("entry = %+v", got.History[1])
	}
}

func TestSaveAccountIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	acc := account.Account{
		Number: 1000, Username: "alice", PasswordHash: "h",
		Balance: decimal.NewFromInt(10),
		History: []account.Transaction{
			{Ref: "r1", Kind: account.TxDeposit, Amount: decimal.NewFromInt(10), Time: time.Unix(1700000000, 0)},
		},
	}
	if err := store.SaveAccount(acc); err != nil {
		t.Fatal(err)
	}

	acc.Balance = decimal.NewFromInt(30)
	acc.History = append(acc.History, account.Transaction{
		Ref: "r2", Kind: account.TxDeposit, Amount: decimal.NewFromInt(20), Time: time.Unix(1700000100, 0),
	})
	if err := store.SaveAccount(acc); err != nil {
		t.Fatal(err)
	}

	accounts, _, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 {
		t.Fatalf("duplicate rows after resave: %d", len(accounts))
	}
	if !accounts[0].Balance.Equal(decimal.NewFromInt(30)) || len(accounts[0].History) != 2 {
		t.Fatalf("resave lost state: %+v", accounts[0])
	}
}

func TestLoadAllEmptyDatabase(t *testing.T) {
	store := openTestStore(t)

	accounts, next, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 0 || next != 0 {
		t.Fatalf("accounts = %d, next = %d", len(accounts), next)
	}
}
