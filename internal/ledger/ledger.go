// Package ledger implements the balance-mutating operations. Every
// operation either fully applies (balance change plus one matching
// transaction entry) or leaves the account exactly as it was.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankroll/internal/account"
	"bankroll/internal/event"
	"bankroll/internal/monitoring"
)

type Service struct {
	repo *account.Repo
	bus  *event.Bus
}

// TransferCompleted is the payload published on event.EventTransferCompleted.
type TransferCompleted struct {
	From   int64
	To     int64
	Amount decimal.Decimal
}

func New(repo *account.Repo, bus *event.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Deposit credits the account and returns the new balance.
func (s *Service) Deposit(number int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	var balance decimal.Decimal
	err := s.repo.With(number, func(a *account.Account) error {
		a.Balance = a.Balance.Add(amount)
		a.Append(newTx(account.TxDeposit, amount, ""))
		balance = a.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	monitoring.BalanceUpdates.Inc()
	return balance, nil
}

// Withdraw debits the account and returns the new balance. The balance
// never goes negative: an oversized amount is rejected untouched.
func (s *Service) Withdraw(number int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	var balance decimal.Decimal
	err := s.repo.With(number, func(a *account.Account) error {
		if amount.GreaterThan(a.Balance) {
			return ErrInsufficientFunds
		}
		a.Balance = a.Balance.Sub(amount)
		a.Append(newTx(account.TxWithdrawal, amount, ""))
		balance = a.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	monitoring.BalanceUpdates.Inc()
	return balance, nil
}

// Transfer moves amount between two accounts. Both mutations happen under
// both account locks, so no reader ever observes the debit without the
// credit.
func (s *Service) Transfer(from, to int64, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if from == to {
		return ErrSelfTransfer
	}

	err := s.repo.WithPair(from, to, func(src, dst *account.Account) error {
		if amount.GreaterThan(src.Balance) {
			return ErrInsufficientFunds
		}
		src.Balance = src.Balance.Sub(amount)
		dst.Balance = dst.Balance.Add(amount)
		src.Append(newTx(account.TxTransferOut, amount, fmt.Sprintf("To Account #%d", dst.Number)))
		dst.Append(newTx(account.TxTransferIn, amount, fmt.Sprintf("From Account #%d", src.Number)))
		return nil
	})
	if err != nil {
		return err
	}

	monitoring.BalanceUpdates.Add(2)
	s.bus.Publish(event.EventTransferCompleted, TransferCompleted{From: from, To: to, Amount: amount})
	return nil
}

// History returns the account's transaction log, oldest first.
func (s *Service) History(number int64) ([]account.Transaction, error) {
	a, err := s.repo.Get(number)
	if err != nil {
		return nil, err
	}
	return a.History, nil
}

func (s *Service) Balance(number int64) (decimal.Decimal, error) {
	a, err := s.repo.Get(number)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance, nil
}

func newTx(kind account.TxKind, amount decimal.Decimal, note string) account.Transaction {
	return account.Transaction{
		Ref:    uuid.New().String(),
		Kind:   kind,
		Amount: amount,
		Time:   time.Now(),
		Note:   note,
	}
}
