package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bankroll/internal/account"
	"bankroll/internal/storage"
)

// Flusher periodically writes the in-memory accounts through the storage
// mapper, and once more on shutdown.
type Flusher struct {
	Repo     *account.Repo
	Store    *storage.Store
	Interval time.Duration
	Log      *zap.Logger
}

func (f *Flusher) Start(ctx context.Context) {
	interval := f.Interval
	if interval == 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.flush()
		case <-ctx.Done():
			f.flush()
			return
		}
	}
}

func (f *Flusher) flush() {
	for _, acc := range f.Repo.List() {
		if err := f.Store.SaveAccount(acc); err != nil {
			f.Log.Error("flush account", zap.Int64("number", acc.Number), zap.Error(err))
		}
	}
	if err := f.Store.SaveNextNumber(f.Repo.NextNumber()); err != nil {
		f.Log.Error("flush sequence", zap.Error(err))
	}
}
