package settlement

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/metrics"
	"go.uber.org/zap"
)

const sweepLockKey = "settlement:sweep"

type Sweeper interface {
	Sweep(ctx context.Context) (Report, error)
}

// Scheduler drives sweeps on a fixed interval. A tick is skipped while a sweep
// is still running here or holds the cluster lock elsewhere.
type Scheduler struct {
	sweeper  Sweeper
	locker   Locker
	metrics  *metrics.Metrics
	interval time.Duration
	lockTTL  time.Duration
	running  atomic.Bool
	wg       sync.WaitGroup
}

func NewScheduler(sweeper Sweeper, locker Locker, m *metrics.Metrics, interval time.Duration) *Scheduler {
	if m == nil {
		m = metrics.New()
	}
	lockTTL := 2 * interval
	if lockTTL < defaultLockTTL {
		lockTTL = defaultLockTTL
	}
	return &Scheduler{
		sweeper:  sweeper,
		locker:   locker,
		metrics:  m,
		interval: interval,
		lockTTL:  lockTTL,
	}
}

// Start runs one sweep immediately and then one per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("Settlement scheduler started", zap.Duration("interval", s.interval))
	s.wg.Add(1)
	go s.run(ctx)
}

// Wait blocks until the scheduler loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement scheduler")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one guarded sweep. It reports whether the sweep ran.
func (s *Scheduler) Tick(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		zap.L().Debug("Previous sweep still running, tick skipped")
		s.metrics.Sweeps.WithLabelValues("skipped").Inc()
		return false
	}
	defer s.running.Store(false)

	unlock, err := s.locker.Acquire(ctx, sweepLockKey, s.lockTTL)
	if err != nil {
		if errors.Is(err, domain.ErrLockHeld) {
			zap.L().Debug("Sweep running on another instance, tick skipped")
		} else {
			zap.L().Error("Failed to take sweep lock", zap.Error(err))
		}
		s.metrics.Sweeps.WithLabelValues("skipped").Inc()
		return false
	}
	defer unlock()

	start := time.Now()
	report, err := s.sweeper.Sweep(ctx)
	s.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		zap.L().Error("Settlement sweep failed", zap.Error(err))
		s.metrics.Sweeps.WithLabelValues("error").Inc()
		return true
	}
	s.metrics.Sweeps.WithLabelValues("ok").Inc()
	zap.L().Info("Settlement sweep finished",
		zap.Int64("ended", report.Ended),
		zap.Int("settled", report.Settled),
		zap.Int("deferred", report.Deferred),
		zap.Int("credited", report.Credited),
		zap.Int("failed", report.Failed),
		zap.Duration("took", time.Since(start)),
	)
	return true
}
