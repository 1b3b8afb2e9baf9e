package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/metrics"
	"github.com/GlebRadaev/stockvote/pkg/receipt"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatch   = 100
	defaultWorkers = 10
	defaultLockTTL = 2 * time.Minute
)

// ErrNotDue is returned by Settle for a market that cannot be settled yet.
var ErrNotDue = errors.New("vote is not due for settlement")

type VoteRepo interface {
	FindByID(ctx context.Context, voteID int) (*domain.Vote, error)
	MarkEnded(ctx context.Context, now time.Time) (int64, error)
	FindDueForSettlement(ctx context.Context, now time.Time, after domain.Cursor, limit uint32) ([]domain.Vote, error)
	FindSettledWithPending(ctx context.Context, after domain.Cursor, limit uint32) ([]domain.Vote, error)
	MarkSettled(ctx context.Context, voteID int, finalPrice float64, outcome domain.Outcome, txHash string, now time.Time) (bool, error)
}

type UserVoteRepo interface {
	FindPendingByVote(ctx context.Context, voteID int) ([]domain.UserVote, error)
}

type Ledger interface {
	AwardPrediction(ctx context.Context, vote *domain.Vote, uv domain.UserVote) (bool, error)
}

type Ranker interface {
	Recompute(ctx context.Context) error
}

type PriceOracle interface {
	PriceAt(ctx context.Context, stockCode string, at time.Time) (float64, error)
}

type Config struct {
	BatchSize uint32
	Workers   int
	LockTTL   time.Duration
}

// Report summarizes one sweep.
type Report struct {
	Ended    int64
	Settled  int
	Deferred int
	Skipped  int
	Credited int
	Failed   int
}

func (r Report) changed() bool {
	return r.Credited > 0
}

type Engine struct {
	voteRepo     VoteRepo
	userVoteRepo UserVoteRepo
	ledger       Ledger
	ranker       Ranker
	oracle       PriceOracle
	locker       Locker
	metrics      *metrics.Metrics
	workerPool   WorkerPoolI
	limit        uint32
	lockTTL      time.Duration
	now          func() time.Time

	// set until a recompute succeeds; starts set so a restart rebuilds ranks
	ranksStale atomic.Bool
}

type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithWorkerPool(wp WorkerPoolI) Option {
	return func(e *Engine) { e.workerPool = wp }
}

func NewEngine(cfg Config, voteRepo VoteRepo, userVoteRepo UserVoteRepo, ledger Ledger, ranker Ranker,
	oracle PriceOracle, locker Locker, m *metrics.Metrics, opts ...Option) *Engine {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatch
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}
	if m == nil {
		m = metrics.New()
	}

	e := &Engine{
		voteRepo:     voteRepo,
		userVoteRepo: userVoteRepo,
		ledger:       ledger,
		ranker:       ranker,
		oracle:       oracle,
		locker:       locker,
		metrics:      m,
		limit:        cfg.BatchSize,
		lockTTL:      cfg.LockTTL,
		now:          time.Now,
	}
	e.ranksStale.Store(true)
	for _, opt := range opts {
		opt(e)
	}
	if e.workerPool == nil {
		e.workerPool = NewWorkerPool(cfg.Workers)
	}
	return e
}

// Close stops the participant worker pool.
func (e *Engine) Close() {
	e.workerPool.Close()
}

func marketLockKey(voteID int) string {
	return fmt.Sprintf("settlement:vote:%d", voteID)
}

// Sweep closes expired markets, settles the due ones, re-drives participants
// left pending by earlier failures and recomputes rankings when any balance
// changed. Everything is derived from stored state, so a sweep after a crash
// picks up where the previous one stopped. Due markets are walked page by page,
// so markets deferred for a missing price never hide the ones behind them.
func (e *Engine) Sweep(ctx context.Context) (Report, error) {
	var report Report
	now := e.now()
	limit := atomic.LoadUint32(&e.limit)

	ended, err := e.voteRepo.MarkEnded(ctx, now)
	if err != nil {
		return report, fmt.Errorf("close expired votes: %w", err)
	}
	report.Ended = ended
	e.metrics.MarketsEnded.Add(float64(ended))

	attempted := make(map[int]struct{})
	var after domain.Cursor
	for ctx.Err() == nil {
		due, err := e.voteRepo.FindDueForSettlement(ctx, now, after, limit)
		if err != nil {
			return report, fmt.Errorf("find votes due for settlement: %w", err)
		}
		for i := range due {
			if ctx.Err() != nil {
				break
			}
			attempted[due[i].ID] = struct{}{}
			e.settleMarket(ctx, &due[i], now, &report)
		}
		if uint32(len(due)) < limit {
			break
		}
		last := due[len(due)-1]
		after = domain.Cursor{At: last.SettlementTime, ID: last.ID}
	}

	after = domain.Cursor{}
	for ctx.Err() == nil {
		stale, err := e.voteRepo.FindSettledWithPending(ctx, after, limit)
		if err != nil {
			zap.L().Error("Failed to fetch settled votes with pending participants", zap.Error(err))
			break
		}
		for i := range stale {
			if ctx.Err() != nil {
				break
			}
			// failures of this sweep wait for the next one
			if _, ok := attempted[stale[i].ID]; ok {
				continue
			}
			e.redrive(ctx, &stale[i], &report)
		}
		if uint32(len(stale)) < limit {
			break
		}
		last := stale[len(stale)-1]
		after = domain.Cursor{ID: last.ID}
		if last.SettledAt != nil {
			after.At = *last.SettledAt
		}
	}

	e.recomputeRanks(ctx, report)
	return report, nil
}

// recomputeRanks runs when balances changed or an earlier recompute did not
// complete.
func (e *Engine) recomputeRanks(ctx context.Context, report Report) {
	stale := e.ranksStale.Swap(false)
	if !report.changed() && !stale {
		return
	}
	if err := e.ranker.Recompute(ctx); err != nil {
		e.ranksStale.Store(true)
		zap.L().Error("Ranking recompute after sweep failed", zap.Error(err))
	}
}

// Settle settles a single market on demand, or re-drives its pending
// participants when it is already settled.
func (e *Engine) Settle(ctx context.Context, voteID int) (Report, error) {
	var report Report
	now := e.now()

	ended, err := e.voteRepo.MarkEnded(ctx, now)
	if err != nil {
		return report, fmt.Errorf("close expired votes: %w", err)
	}
	report.Ended = ended

	vote, err := e.voteRepo.FindByID(ctx, voteID)
	if err != nil {
		return report, err
	}
	if vote == nil {
		return report, domain.ErrVoteNotFound
	}

	switch {
	case vote.State == domain.VoteStateSettled:
		e.redrive(ctx, vote, &report)
	case vote.DueForSettlement(now):
		e.settleMarket(ctx, vote, now, &report)
		if report.Deferred > 0 {
			return report, domain.ErrPriceUnavailable
		}
	default:
		return report, ErrNotDue
	}

	e.recomputeRanks(ctx, report)
	return report, nil
}

func (e *Engine) settleMarket(ctx context.Context, vote *domain.Vote, now time.Time, report *Report) {
	log := zap.L().With(zap.Int("vote_id", vote.ID), zap.String("stock_code", vote.StockCode))

	unlock, err := e.locker.Acquire(ctx, marketLockKey(vote.ID), e.lockTTL)
	if err != nil {
		if !errors.Is(err, domain.ErrLockHeld) {
			log.Error("Failed to lock vote for settlement", zap.Error(err))
		}
		report.Skipped++
		return
	}
	defer unlock()

	price, err := e.oracle.PriceAt(ctx, vote.StockCode, vote.SettlementTime)
	if err != nil {
		log.Warn("Final price unavailable, settlement deferred", zap.Error(err))
		e.metrics.SettlementsDeferred.Inc()
		report.Deferred++
		return
	}

	outcome := domain.DetermineOutcome(vote.BasePrice, price)
	txHash := receipt.Stamp("settle", vote.ID, price, outcome)

	applied, err := e.voteRepo.MarkSettled(ctx, vote.ID, price, outcome, txHash, now)
	if err != nil {
		log.Error("Failed to settle vote", zap.Error(err))
		report.Skipped++
		return
	}
	if !applied {
		current, err := e.voteRepo.FindByID(ctx, vote.ID)
		if err != nil || current == nil || current.State != domain.VoteStateSettled {
			report.Skipped++
			return
		}
		vote = current
	} else {
		vote.State = domain.VoteStateSettled
		vote.FinalPrice = &price
		vote.Outcome = &outcome
		vote.SettlementTx = &txHash
		vote.SettledAt = &now
		e.metrics.MarketsSettled.Inc()
		report.Settled++
		log.Info("Vote settled", zap.Float64("final_price", price), zap.String("outcome", string(outcome)))
	}

	credited, failed := e.settleParticipants(ctx, vote)
	report.Credited += credited
	report.Failed += failed
}

func (e *Engine) redrive(ctx context.Context, vote *domain.Vote, report *Report) {
	unlock, err := e.locker.Acquire(ctx, marketLockKey(vote.ID), e.lockTTL)
	if err != nil {
		report.Skipped++
		return
	}
	defer unlock()

	credited, failed := e.settleParticipants(ctx, vote)
	report.Credited += credited
	report.Failed += failed
}

// settleParticipants records every pending prediction of a settled market.
// A failing participant is logged and counted; the others still proceed.
func (e *Engine) settleParticipants(ctx context.Context, vote *domain.Vote) (int, int) {
	pending, err := e.userVoteRepo.FindPendingByVote(ctx, vote.ID)
	if err != nil {
		zap.L().Error("Failed to fetch participants", zap.Error(err), zap.Int("vote_id", vote.ID))
		return 0, 0
	}

	var credited, failed atomic.Int64
	var g errgroup.Group
	for _, uv := range pending {
		uv := uv

		g.Go(func() error {
			done := make(chan struct{})
			err := e.workerPool.AddTask(ctx, func() error {
				defer close(done)
				ok, err := e.ledger.AwardPrediction(ctx, vote, uv)
				if err != nil {
					failed.Add(1)
					e.metrics.ParticipantFailures.Inc()
					return fmt.Errorf("settle participant %d of vote %d: %w", uv.UserID, vote.ID, err)
				}
				if ok {
					credited.Add(1)
					e.metrics.ParticipantsCredited.Inc()
				}
				return nil
			})
			if err != nil {
				failed.Add(1)
				e.metrics.ParticipantFailures.Inc()
				return err
			}
			<-done
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error settling participants", zap.Error(err), zap.Int("vote_id", vote.ID))
	}
	return int(credited.Load()), int(failed.Load())
}
