package voteservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/GlebRadaev/stockvote/pkg/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	voteRepo     *MockVoteRepo
	userVoteRepo *MockUserVoteRepo
	userRepo     *MockUserRepo
	oracle       *MockPriceOracle
	ranker       *MockRanker
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		voteRepo:     NewMockVoteRepo(ctrl),
		userVoteRepo: NewMockUserVoteRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		oracle:       NewMockPriceOracle(ctrl),
		ranker:       NewMockRanker(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.voteRepo, m.userVoteRepo, m.userRepo, m.oracle, m.ranker, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func runInTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func activeVote(id int) *domain.Vote {
	now := time.Now()
	return &domain.Vote{
		ID:             id,
		StockCode:      "000001",
		State:          domain.VoteStateActive,
		StartTime:      now.Add(-time.Minute),
		EndTime:        now.Add(time.Hour),
		SettlementTime: now.Add(2 * time.Hour),
		BasePrice:      12.5,
		PointsReward:   10,
	}
}

func TestCreateVote(t *testing.T) {
	service, m := NewMock(t)
	now := time.Now()

	params := func(base float64) domain.NewVoteParams {
		return domain.NewVoteParams{
			Title:          "Will Ping An rise?",
			StockCode:      "000001",
			StockName:      "Ping An Bank",
			EndTime:        now.Add(time.Hour),
			SettlementTime: now.Add(2 * time.Hour),
			BasePrice:      base,
			CreatedBy:      1,
		}
	}

	tests := []struct {
		name          string
		params        domain.NewVoteParams
		prepareMock   func()
		expectedBase  float64
		expectedError error
	}{
		{
			name:   "Base price supplied",
			params: params(12.5),
			prepareMock: func() {
				m.voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
					v.ID = 42
					return v, nil
				})
			},
			expectedBase: 12.5,
		},
		{
			name:   "Base price from oracle",
			params: params(0),
			prepareMock: func() {
				m.oracle.EXPECT().PriceAt(gomock.Any(), "000001", gomock.Any()).Return(12.48, nil)
				m.voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
					v.ID = 43
					return v, nil
				})
			},
			expectedBase: 12.48,
		},
		{
			name:   "Oracle unavailable",
			params: params(0),
			prepareMock: func() {
				m.oracle.EXPECT().PriceAt(gomock.Any(), "000001", gomock.Any()).Return(0.0, errors.New("timeout"))
			},
			expectedError: domain.ErrPriceUnavailable,
		},
		{
			name: "Invalid time ordering",
			params: func() domain.NewVoteParams {
				p := params(12.5)
				p.SettlementTime = p.EndTime
				return p
			}(),
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Repository failure",
			params: params(12.5),
			prepareMock: func() {
				m.voteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			vote, err := service.CreateVote(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrPriceUnavailable) || errors.Is(tt.expectedError, domain.ErrValidation) {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.VoteStateActive, vote.State)
			assert.Equal(t, tt.expectedBase, vote.BasePrice)
			assert.Equal(t, domain.DefaultPointsReward, vote.PointsReward)
		})
	}
}

func TestCastVote(t *testing.T) {
	service, m := NewMock(t)

	ended := activeVote(42)
	ended.State = domain.VoteStateEnded

	closedByTime := activeVote(42)
	closedByTime.EndTime = time.Now().Add(-time.Second)

	tests := []struct {
		name          string
		prediction    string
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Prediction recorded",
			prediction: "up",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(activeVote(42), nil)
				m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).Return(nil, nil)
				m.userVoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, uv *domain.UserVote) (bool, error) {
					assert.Equal(t, domain.PredictionUp, uv.Prediction)
					assert.True(t, receipt.Valid(uv.TxHash))
					uv.ID = 5
					return true, nil
				})
				m.voteRepo.EXPECT().IncrementCounters(gomock.Any(), 42, domain.PredictionUp).Return(nil)
				m.userRepo.EXPECT().IncrementTotalVotes(gomock.Any(), 1).Return(nil)
				m.ranker.EXPECT().Recompute(gomock.Any()).Return(nil)
			},
		},
		{
			name:       "Ranking refresh failure keeps the prediction",
			prediction: "down",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(activeVote(42), nil)
				m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).Return(nil, nil)
				m.userVoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, uv *domain.UserVote) (bool, error) {
					uv.ID = 5
					return true, nil
				})
				m.voteRepo.EXPECT().IncrementCounters(gomock.Any(), 42, domain.PredictionDown).Return(nil)
				m.userRepo.EXPECT().IncrementTotalVotes(gomock.Any(), 1).Return(nil)
				m.ranker.EXPECT().Recompute(gomock.Any()).Return(errors.New("db error"))
			},
		},
		{
			name:          "Invalid prediction checked before storage",
			prediction:    "sideways",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidPrediction,
		},
		{
			name:       "Unknown market",
			prediction: "down",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: domain.ErrVoteNotFound,
		},
		{
			name:       "Ended market rejects votes",
			prediction: "up",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(ended, nil)
			},
			expectedError: domain.ErrVoteNotActive,
		},
		{
			name:       "Active market past its end time rejects votes",
			prediction: "up",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(closedByTime, nil)
			},
			expectedError: domain.ErrVoteNotActive,
		},
		{
			name:       "Second vote rejected",
			prediction: "down",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(activeVote(42), nil)
				m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).
					Return(&domain.UserVote{ID: 5, UserID: 1, VoteID: 42, Prediction: domain.PredictionUp}, nil)
			},
			expectedError: domain.ErrAlreadyVoted,
		},
		{
			name:       "Insert conflict rejected",
			prediction: "down",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(activeVote(42), nil)
				m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).Return(nil, nil)
				m.userVoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedError: domain.ErrAlreadyVoted,
		},
		{
			name:       "Counter failure aborts the transaction",
			prediction: "up",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(activeVote(42), nil)
				m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).Return(nil, nil)
				m.userVoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
				m.voteRepo.EXPECT().IncrementCounters(gomock.Any(), 42, domain.PredictionUp).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:       "Unknown user aborts the transaction",
			prediction: "up",
			prepareMock: func() {
				runInTx(m)
				m.voteRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(activeVote(42), nil)
				m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).Return(nil, nil)
				m.userVoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
				m.voteRepo.EXPECT().IncrementCounters(gomock.Any(), 42, domain.PredictionUp).Return(nil)
				m.userRepo.EXPECT().IncrementTotalVotes(gomock.Any(), 1).Return(domain.ErrUserNotFound)
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			uv, err := service.CastVote(context.Background(), 42, 1, tt.prediction)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, uv)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, uv.ID)
			assert.Nil(t, uv.IsCorrect)
			assert.Zero(t, uv.PointsEarned)
		})
	}
}

func TestGetVote(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Anonymous caller", func(t *testing.T) {
		m.voteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(activeVote(42), nil)
		vote, uv, err := service.GetVote(context.Background(), 42, 0)
		assert.NoError(t, err)
		assert.Equal(t, 42, vote.ID)
		assert.Nil(t, uv)
	})

	t.Run("Caller with a prediction", func(t *testing.T) {
		m.voteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(activeVote(42), nil)
		m.userVoteRepo.EXPECT().FindByUserAndVote(gomock.Any(), 1, 42).
			Return(&domain.UserVote{ID: 5, Prediction: domain.PredictionDown}, nil)
		_, uv, err := service.GetVote(context.Background(), 42, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.PredictionDown, uv.Prediction)
	})

	t.Run("Not found", func(t *testing.T) {
		m.voteRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
		_, _, err := service.GetVote(context.Background(), 7, 1)
		assert.ErrorIs(t, err, domain.ErrVoteNotFound)
	})
}

func TestListVotes(t *testing.T) {
	service, m := NewMock(t)
	page := domain.Page{Number: 1, Limit: 10}

	m.voteRepo.EXPECT().List(gomock.Any(), domain.VoteFilter{State: domain.VoteStateActive}, page).
		Return([]domain.Vote{*activeVote(1)}, 1, nil)
	votes, total, err := service.ListVotes(context.Background(), domain.VoteFilter{State: domain.VoteStateActive}, page)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, votes, 1)

	_, _, err = service.ListVotes(context.Background(), domain.VoteFilter{State: "bogus"}, page)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHotVotes(t *testing.T) {
	service, m := NewMock(t)

	m.voteRepo.EXPECT().ListHot(gomock.Any(), HotLimit).Return([]domain.Vote{*activeVote(1), *activeVote(2)}, nil)
	votes, err := service.HotVotes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, votes, 2)
}

func TestStockPrice(t *testing.T) {
	service, m := NewMock(t)

	m.oracle.EXPECT().PriceAt(gomock.Any(), "600000", gomock.Any()).Return(8.88, nil)
	price, err := service.StockPrice(context.Background(), " 600000 ")
	assert.NoError(t, err)
	assert.Equal(t, 8.88, price)

	m.oracle.EXPECT().PriceAt(gomock.Any(), "XXX", gomock.Any()).Return(0.0, errors.New("unknown"))
	_, err = service.StockPrice(context.Background(), "xxx")
	assert.ErrorIs(t, err, domain.ErrPriceUnavailable)

	_, err = service.StockPrice(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
