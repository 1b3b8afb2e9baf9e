package rankingservice

import (
	"context"
	"sync"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	ListActive(ctx context.Context) ([]domain.User, error)
	UpdateRanks(ctx context.Context, ranks []domain.RankAssignment) error
	ListRanking(ctx context.Context, page domain.Page) ([]domain.User, error)
	CountRanked(ctx context.Context) (int, error)
}

type Service struct {
	repo Repo
	mu   sync.Mutex
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Recompute rewrites every active user's rank from the current balances.
// Runs from other processes may interleave; the last one to write wins.
func (s *Service) Recompute(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to load users for ranking", zap.Error(err))
		return err
	}
	ranks := domain.AssignRanks(users)
	if err := s.repo.UpdateRanks(ctx, ranks); err != nil {
		zap.L().Error("failed to persist ranks", zap.Error(err))
		return err
	}
	zap.L().Debug("rankings recomputed", zap.Int("users", len(ranks)))
	return nil
}

// GetRanking returns one page of the leaderboard and the number of ranked users.
func (s *Service) GetRanking(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	total, err := s.repo.CountRanked(ctx)
	if err != nil {
		zap.L().Error("failed to count ranked users", zap.Error(err))
		return nil, 0, err
	}
	users, err := s.repo.ListRanking(ctx, page)
	if err != nil {
		zap.L().Error("failed to fetch ranking", zap.Error(err))
		return nil, 0, err
	}
	return users, total, nil
}
