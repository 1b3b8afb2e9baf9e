package ledgerservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/GlebRadaev/stockvote/pkg/receipt"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	ApplyDelta(ctx context.Context, userID int, pointsDelta int64, accuracyDelta int) (int64, error)
	Debit(ctx context.Context, userID int, amount int64) (int64, error)
}

type UserVoteRepo interface {
	MarkSettled(ctx context.Context, userVoteID int, isCorrect bool, pointsEarned int) (bool, error)
}

type SpendRepo interface {
	CreateSpend(ctx context.Context, spend *domain.PointSpend) (*domain.PointSpend, error)
	GetSpendsByUserID(ctx context.Context, userID int) ([]domain.PointSpend, error)
}

type Ranker interface {
	Recompute(ctx context.Context) error
}

type Service struct {
	userRepo     UserRepo
	userVoteRepo UserVoteRepo
	spendRepo    SpendRepo
	ranker       Ranker
	txManager    pg.TXManager
}

func New(userRepo UserRepo, userVoteRepo UserVoteRepo, spendRepo SpendRepo, ranker Ranker, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:     userRepo,
		userVoteRepo: userVoteRepo,
		spendRepo:    spendRepo,
		ranker:       ranker,
		txManager:    txManager,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, domain.ErrUserNotFound
	}
	return user.Points, nil
}

// ApplyDelta adds pointsDelta to the balance and accuracyDelta to the
// correct-vote counter in one atomic update.
func (s *Service) ApplyDelta(ctx context.Context, userID int, pointsDelta int64, accuracyDelta int) (int64, error) {
	balance, err := s.userRepo.ApplyDelta(ctx, userID, pointsDelta, accuracyDelta)
	if err != nil {
		zap.L().Error("failed to apply ledger delta", zap.Error(err), zap.Int("user_id", userID))
		return 0, err
	}
	return balance, nil
}

// Spend debits amount and records the spend. The balance check and the debit
// are one statement, so concurrent spends can never overdraw.
func (s *Service) Spend(ctx context.Context, userID int, amount int64, reason string) (*domain.PointSpend, error) {
	reason = strings.TrimSpace(reason)
	if amount <= 0 || reason == "" {
		return nil, fmt.Errorf("%w: amount must be positive and reason set", domain.ErrValidation)
	}

	spend := &domain.PointSpend{
		UserID:      userID,
		Amount:      amount,
		Reason:      reason,
		TxHash:      receipt.Stamp("spend", userID, amount, reason),
		ProcessedAt: time.Now(),
	}

	var created *domain.PointSpend
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Debit(ctx, userID, amount); err != nil {
			return err
		}
		var err error
		created, err = s.spendRepo.CreateSpend(ctx, spend)
		return err
	})
	if err != nil {
		zap.L().Info("spend rejected", zap.Error(err), zap.Int("user_id", userID), zap.Int64("amount", amount))
		return nil, err
	}

	if err := s.ranker.Recompute(ctx); err != nil {
		zap.L().Warn("ranking recompute after spend failed", zap.Error(err))
	}
	return created, nil
}

func (s *Service) GetSpends(ctx context.Context, userID int) ([]domain.PointSpend, error) {
	spends, err := s.spendRepo.GetSpendsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch spends", zap.Error(err))
		return nil, err
	}
	return spends, nil
}

// AwardPrediction records the result of one prediction on a settled market and
// credits the reward when it was correct. The result is written at most once;
// credited is true only for the call that actually paid.
func (s *Service) AwardPrediction(ctx context.Context, vote *domain.Vote, uv domain.UserVote) (credited bool, err error) {
	if vote.Outcome == nil {
		return false, fmt.Errorf("vote %d has no outcome", vote.ID)
	}
	correct := uv.Prediction.IsCorrect(*vote.Outcome)
	points := 0
	if correct {
		points = vote.PointsReward
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		applied, err := s.userVoteRepo.MarkSettled(ctx, uv.ID, correct, points)
		if err != nil {
			return err
		}
		if !applied || !correct {
			return nil
		}
		if _, err := s.userRepo.ApplyDelta(ctx, uv.UserID, int64(points), 1); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to award prediction", zap.Error(err),
			zap.Int("vote_id", vote.ID), zap.Int("user_id", uv.UserID))
		return false, err
	}
	return credited, nil
}
