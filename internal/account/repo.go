package account

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// firstNumber matches the sequence the legacy data started at.
const firstNumber = 1000

type entry struct {
	mu  sync.Mutex
	acc *Account
}

// Repo is the in-memory account store. Each account carries its own lock;
// With and WithPair are the only ways to mutate one, so a transfer holds
// both parties exclusively and no reader sees it half-applied.
type Repo struct {
	mu     sync.Mutex
	next   int64
	byNum  map[int64]*entry
	byName map[string]*entry
}

func NewRepo() *Repo {
	return &Repo{
		next:   firstNumber,
		byNum:  make(map[int64]*entry),
		byName: make(map[string]*entry),
	}
}

// Create allocates the next account number and registers the account.
func (r *Repo) Create(username, passwordHash string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[username]; ok {
		return Account{}, ErrUsernameTaken
	}

	e := &entry{acc: &Account{
		Number:       r.next,
		Username:     username,
		PasswordHash: passwordHash,
	}}
	r.next++
	r.byNum[e.acc.Number] = e
	r.byName[username] = e
	return snapshot(e.acc), nil
}

// Get returns a point-in-time copy; callers never see the live struct.
func (r *Repo) Get(number int64) (Account, error) {
	e, err := r.lookup(number)
	if err != nil {
		return Account{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.acc), nil
}

func (r *Repo) GetByUsername(username string) (Account, error) {
	r.mu.Lock()
	e, ok := r.byName[username]
	r.mu.Unlock()
	if !ok {
		return Account{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.acc), nil
}

// List returns copies of every account, ordered by account number.
func (r *Repo) List() []Account {
	r.mu.Lock()
	entries := make([]*entry, 0, len(r.byNum))
	for _, e := range r.byNum {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	out := make([]Account, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, snapshot(e.acc))
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// With runs fn while holding the account's exclusive lock. If fn returns
// an error the caller is expected to have left the account untouched.
func (r *Repo) With(number int64, fn func(*Account) error) error {
	e, err := r.lookup(number)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.acc)
}

// WithPair locks both accounts in ascending number order, so two
// opposite-direction transfers can never deadlock each other.
func (r *Repo) WithPair(from, to int64, fn func(from, to *Account) error) error {
	ef, err := r.lookup(from)
	if err != nil {
		return err
	}
	et, err := r.lookup(to)
	if err != nil {
		return err
	}

	first, second := ef, et
	if to < from {
		first, second = et, ef
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	return fn(ef.acc, et.acc)
}

// Restore replaces the repo contents from persisted state. Used at boot
// only, before any traffic.
func (r *Repo) Restore(accounts []Account, next int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byNum = make(map[int64]*entry, len(accounts))
	r.byName = make(map[string]*entry, len(accounts))
	for i := range accounts {
		acc := accounts[i]
		e := &entry{acc: &acc}
		r.byNum[acc.Number] = e
		r.byName[acc.Username] = e
	}
	if next > firstNumber {
		r.next = next
	} else {
		r.next = firstNumber
	}
}

// NextNumber reports the sequence position, for persistence.
func (r *Repo) NextNumber() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

func (r *Repo) lookup(number int64) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byNum[number]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func snapshot(a *Account) Account {
	cp := *a
	cp.History = make([]Transaction, len(a.History))
	copy(cp.History, a.History)
	return cp
}
