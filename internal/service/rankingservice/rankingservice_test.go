package rankingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRecompute(t *testing.T) {
	service, repo := NewMock(t)

	users := []domain.User{
		{ID: 1, Points: 10, CorrectVotes: 1, TotalVotes: 2, IsActive: true},
		{ID: 2, Points: 30, CorrectVotes: 3, TotalVotes: 3, IsActive: true},
		{ID: 3, Points: 10, CorrectVotes: 1, TotalVotes: 1, IsActive: true},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Ranks persisted in order",
			prepareMock: func() {
				repo.EXPECT().ListActive(gomock.Any()).Return(users, nil)
				repo.EXPECT().UpdateRanks(gomock.Any(), []domain.RankAssignment{
					{UserID: 2, Rank: 1},
					{UserID: 3, Rank: 2},
					{UserID: 1, Rank: 3},
				}).Return(nil)
			},
		},
		{
			name: "Load failure",
			prepareMock: func() {
				repo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Persist failure",
			prepareMock: func() {
				repo.EXPECT().ListActive(gomock.Any()).Return(users, nil)
				repo.EXPECT().UpdateRanks(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Recompute(context.Background())
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRanking(t *testing.T) {
	service, repo := NewMock(t)
	page := domain.Page{Number: 1, Limit: 2}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUsers []domain.User
		expectedTotal int
		expectErr     bool
	}{
		{
			name: "Page returned",
			prepareMock: func() {
				repo.EXPECT().CountRanked(gomock.Any()).Return(3, nil)
				repo.EXPECT().ListRanking(gomock.Any(), page).Return([]domain.User{{ID: 2, Rank: 1}, {ID: 3, Rank: 2}}, nil)
			},
			expectedUsers: []domain.User{{ID: 2, Rank: 1}, {ID: 3, Rank: 2}},
			expectedTotal: 3,
		},
		{
			name: "Count failure",
			prepareMock: func() {
				repo.EXPECT().CountRanked(gomock.Any()).Return(0, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name: "List failure",
			prepareMock: func() {
				repo.EXPECT().CountRanked(gomock.Any()).Return(3, nil)
				repo.EXPECT().ListRanking(gomock.Any(), page).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			users, total, err := service.GetRanking(context.Background(), page)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUsers, users)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}
