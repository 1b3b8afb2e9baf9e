package userservice

import (
	"context"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type HistoryRepo interface {
	FindHistoryByUser(ctx context.Context, userID int, page domain.Page) ([]domain.UserVoteWithVote, int, error)
}

type Service struct {
	userRepo    UserRepo
	historyRepo HistoryRepo
}

func New(userRepo UserRepo, historyRepo HistoryRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		historyRepo: historyRepo,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetVoteHistory(ctx context.Context, userID int, page domain.Page) ([]domain.UserVoteWithVote, int, error) {
	history, total, err := s.historyRepo.FindHistoryByUser(ctx, userID, page)
	if err != nil {
		zap.L().Error("failed to get vote history", zap.Error(err), zap.Int("user_id", userID))
		return nil, 0, err
	}
	return history, total, nil
}
