package voteservice

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

const HotLimit = 10

type VoteRepo interface {
	Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	FindByID(ctx context.Context, voteID int) (*domain.Vote, error)
	FindByIDForUpdate(ctx context.Context, voteID int) (*domain.Vote, error)
	List(ctx context.Context, filter domain.VoteFilter, page domain.Page) ([]domain.Vote, int, error)
	ListHot(ctx context.Context, limit int) ([]domain.Vote, error)
	IncrementCounters(ctx context.Context, voteID int, prediction domain.Prediction) error
}

type UserVoteRepo interface {
	Create(ctx context.Context, uv *domain.UserVote) (bool, error)
	FindByUserAndVote(ctx context.Context, userID, voteID int) (*domain.UserVote, error)
}

type UserRepo interface {
	IncrementTotalVotes(ctx context.Context, userID int) error
}

type PriceOracle interface {
	PriceAt(ctx context.Context, stockCode string, at time.Time) (float64, error)
}

// Ranker is refreshed after a cast because total_votes is a tie-break key.
type Ranker interface {
	Recompute(ctx context.Context) error
}

type Service struct {
	voteRepo     VoteRepo
	userVoteRepo UserVoteRepo
	userRepo     UserRepo
	oracle       PriceOracle
	ranker       Ranker
	txManager    pg.TXManager
}

func New(voteRepo VoteRepo, userVoteRepo UserVoteRepo, userRepo UserRepo, oracle PriceOracle, ranker Ranker, txManager pg.TXManager) *Service {
	return &Service{
		voteRepo:     voteRepo,
		userVoteRepo: userVoteRepo,
		userRepo:     userRepo,
		oracle:       oracle,
		ranker:       ranker,
		txManager:    txManager,
	}
}

// CreateVote opens a new market. Without a base price the current oracle
// price is used.
func (s *Service) CreateVote(ctx context.Context, params domain.NewVoteParams) (*domain.Vote, error) {
	now := time.Now()
	code := strings.ToUpper(strings.TrimSpace(params.StockCode))
	if params.BasePrice == 0 && code != "" {
		price, err := s.oracle.PriceAt(ctx, code, now)
		if err != nil {
			zap.L().Warn("can't fetch base price", zap.Error(err), zap.String("stock_code", code))
			return nil, fmt.Errorf("%w: %s", domain.ErrPriceUnavailable, code)
		}
		params.BasePrice = price
	}

	vote, err := domain.NewVote(params, now)
	if err != nil {
		return nil, err
	}
	created, err := s.voteRepo.Create(ctx, vote)
	if err != nil {
		zap.L().Error("failed to create vote", zap.Error(err))
		return nil, err
	}
	zap.L().Info("vote created", zap.Int("vote_id", created.ID), zap.String("stock_code", created.StockCode))
	return created, nil
}

// CastVote records one prediction. The market row stays locked for the whole
// transaction, so the tally and the user's counters move together.
func (s *Service) CastVote(ctx context.Context, voteID, userID int, prediction string) (*domain.UserVote, error) {
	p, err := domain.ParsePrediction(prediction)
	if err != nil {
		return nil, err
	}

	var cast *domain.UserVote
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		vote, err := s.voteRepo.FindByIDForUpdate(ctx, voteID)
		if err != nil {
			return err
		}
		if vote == nil {
			return domain.ErrVoteNotFound
		}
		now := time.Now()
		if !vote.AcceptsVotes(now) {
			return domain.ErrVoteNotActive
		}

		existing, err := s.userVoteRepo.FindByUserAndVote(ctx, userID, voteID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyVoted
		}

		uv := &domain.UserVote{
			UserID:     userID,
			VoteID:     voteID,
			Prediction: p,
			VoteTime:   now,
			TxHash:     receipt.Stamp("vote", userID, voteID, p),
		}
		inserted, err := s.userVoteRepo.Create(ctx, uv)
		if err != nil {
			return err
		}
		if !inserted {
			return domain.ErrAlreadyVoted
		}
		if err := s.voteRepo.IncrementCounters(ctx, voteID, p); err != nil {
			return err
		}
		if err := s.userRepo.IncrementTotalVotes(ctx, userID); err != nil {
			return err
		}
		cast = uv
		return nil
	})
	if err != nil {
		zap.L().Info("vote rejected", zap.Error(err), zap.Int("vote_id", voteID), zap.Int("user_id", userID))
		return nil, err
	}
	zap.L().Info("vote cast", zap.Int("vote_id", voteID), zap.Int("user_id", userID), zap.String("prediction", string(p)))

	if err := s.ranker.Recompute(ctx); err != nil {
		zap.L().Warn("ranking recompute after vote failed", zap.Error(err), zap.Int("user_id", userID))
	}
	return cast, nil
}

// GetVote returns the market and, for a known caller, their prediction on it.
func (s *Service) GetVote(ctx context.Context, voteID, userID int) (*domain.Vote, *domain.UserVote, error) {
	vote, err := s.voteRepo.FindByID(ctx, voteID)
	if err != nil {
		return nil, nil, err
	}
	if vote == nil {
		return nil, nil, domain.ErrVoteNotFound
	}
	if userID <= 0 {
		return vote, nil, nil
	}
	uv, err := s.userVoteRepo.FindByUserAndVote(ctx, userID, voteID)
	if err != nil {
		return nil, nil, err
	}
	return vote, uv, nil
}

func (s *Service) ListVotes(ctx context.Context, filter domain.VoteFilter, page domain.Page) ([]domain.Vote, int, error) {
	if filter.State != "" && !filter.State.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown state %q", domain.ErrValidation, filter.State)
	}
	return s.voteRepo.List(ctx, filter, page)
}

func (s *Service) HotVotes(ctx context.Context) ([]domain.Vote, error) {
	return s.voteRepo.ListHot(ctx, HotLimit)
}

func (s *Service) StockPrice(ctx context.Context, stockCode string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(stockCode))
	if code == "" {
		return 0, fmt.Errorf("%w: stock code is required", domain.ErrValidation)
	}
	price, err := s.oracle.PriceAt(ctx, code, time.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrPriceUnavailable, code)
	}
	return price, nil
}
