package storage

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"bankroll/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadAll reads every account with its full history, oldest entry first,
// plus the account-number sequence position.
func (s *Store) LoadAll() ([]account.Account, int64, error) {
	rows, err := s.db.Query(`SELECT number, username, password_hash, balance, goal FROM accounts`)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		var a account.Account
		var balance, goal string
		if err := rows.Scan(&a.Number, &a.Username, &a.PasswordHash, &balance, &goal); err != nil {
			return nil, 0, err
		}
		if a.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, 0, err
		}
		if a.Goal, err = decimal.NewFromString(goal); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range accounts {
		if accounts[i].History, err = s.loadHistory(accounts[i].Number); err != nil {
			return nil, 0, err
		}
	}

	next, err := s.nextNumber()
	if err != nil {
		return nil, 0, err
	}
	return accounts, next, nil
}

// SaveAccount writes the account row and rewrites its history inside one
// transaction, so the stored state is always a consistent snapshot.
func (s *Store) SaveAccount(a account.Account) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO accounts(number, username, password_hash, balance, goal)
	VALUES (?,?,?,?,?)
	ON CONFLICT(number) DO UPDATE SET balance=excluded.balance, goal=excluded.goal
	`, a.Number, a.Username, a.PasswordHash, a.Balance.String(), a.Goal.String())
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err = tx.Exec(`DELETE FROM transactions WHERE account_number=?`, a.Number); err != nil {
		tx.Rollback()
		return err
	}
	for _, t := range a.History {
		_, err = tx.Exec(`
		INSERT INTO transactions(account_number, ref, kind, amount, ts, note)
		VALUES (?,?,?,?,?,?)
		`, a.Number, t.Ref, string(t.Kind), t.Amount.String(), t.Time.Unix(), t.Note)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) SaveNextNumber(next int64) error {
	_, err := s.db.Exec(`
	INSERT INTO meta(key, value) VALUES ('next_account_number', ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`, strconv.FormatInt(next, 10))
	return err
}

func (s *Store) loadHistory(number int64) ([]account.Transaction, error) {
	rows, err := s.db.Query(`
	SELECT ref, kind, amount, ts, note FROM transactions
	WHERE account_number=? ORDER BY id
	`, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []account.Transaction
	for rows.Next() {
		var t account.Transaction
		var kind, amount string
		var ts int64
		var note sql.NullString
		if err := rows.Scan(&t.Ref, &kind, &amount, &ts, &note); err != nil {
			return nil, err
		}
		t.Kind = account.TxKind(kind)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		t.Time = time.Unix(ts, 0)
		t.Note = note.String
		history = append(history, t)
	}
	return history, rows.Err()
}

func (s *Store) nextNumber() (int64, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key='next_account_number'`).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}
