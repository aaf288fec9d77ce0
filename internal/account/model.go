// Package account holds the account aggregate and its in-memory repository.
// Balances are decimals, never floats, and every balance change leaves
// exactly one transaction behind.
package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxKind string

const (
	TxDeposit     TxKind = "DEPOSIT"
	TxWithdrawal  TxKind = "WITHDRAWAL"
	TxTransferOut TxKind = "TRANSFER_OUT"
	TxTransferIn  TxKind = "TRANSFER_IN"
)

// Transaction is immutable once appended to an account's history.
type Transaction struct {
	Ref    string          `json:"ref"`
	Kind   TxKind          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Time   time.Time       `json:"time"`
	Note   string          `json:"note,omitempty"`
}

// Account is the single aggregate the ledger and the games operate on.
// History is append-only; insertion order is chronological order.
type Account struct {
	Number       int64           `json:"account_number"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	Goal         decimal.Decimal `json:"savings_goal"`
	History      []Transaction   `json:"-"`
}

// Append records a completed balance change. Callers must hold the
// account's repository lock.
func (a *Account) Append(tx Transaction) {
	a.History = append(a.History, tx)
}
