// Package scheduler settles scheduled transactions once their date
// arrives, sweeping every registered account on a fixed interval.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/contavel-dev/contavel/internal/dates"
	"github.com/contavel-dev/contavel/internal/metrics"
	"github.com/contavel-dev/contavel/internal/store"
)

// defaultInterval is used when the configured sweep interval is missing
// or non-positive. It matches the config default of 60 minutes.
const defaultInterval = time.Hour

// Scheduler sweeps the store for due scheduled transactions.
type Scheduler struct {
	store    *store.Store
	metrics  *metrics.Collector
	logger   *zap.Logger
	interval time.Duration
	now      func() dates.Date
}

// New creates a Scheduler sweeping at the given interval. A non-positive
// interval falls back to defaultInterval so a sparse config cannot break
// the ticker.
func New(s *store.Store, m *metrics.Collector, logger *zap.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		store:    s,
		metrics:  m,
		logger:   logger,
		interval: interval,
		now:      dates.Today,
	}
}

// RunOnce settles everything due today across all accounts and returns how
// many transactions settled.
func (s *Scheduler) RunOnce() int {
	today := s.now()
	total := 0
	for _, a := range s.store.All() {
		start := time.Now()
		settled, err := a.SettleDue(today)
		if err != nil {
			s.metrics.RecordSettlement(time.Since(start), len(settled), true)
			s.logger.Warn("settlement failed",
				zap.String("account", a.Number()),
				zap.Error(err))
			continue
		}
		s.metrics.RecordSettlement(time.Since(start), len(settled), false)
		if len(settled) > 0 {
			s.logger.Info("settled scheduled transactions",
				zap.String("account", a.Number()),
				zap.Int("count", len(settled)),
				zap.String("balance", a.Balance().String()))
		}
		s.metrics.SetBalance(a.Number(), a.Balance())
		total += len(settled)
	}
	return total
}

// Run sweeps immediately and then on every tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.RunOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce()
		}
	}
}
