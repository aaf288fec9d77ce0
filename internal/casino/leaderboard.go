package casino

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type LeaderboardEntry struct {
	Number int64           `json:"account_number"`
	Profit decimal.Decimal `json:"profit"`
}

// Leaderboard tracks net profit (payouts minus stakes) per account.
type Leaderboard struct {
	mu   sync.Mutex
	data map[int64]decimal.Decimal
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{data: make(map[int64]decimal.Decimal)}
}

func (l *Leaderboard) Record(number int64, profit decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data[number] = l.data[number].Add(profit)
}

func (l *Leaderboard) Top(n int) []LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LeaderboardEntry, 0, len(l.data))
	for num, profit := range l.data {
		entries = append(entries, LeaderboardEntry{Number: num, Profit: profit})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Profit.GreaterThan(entries[j].Profit)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
