package votes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/dto"
	"github.com/GlebRadaev/stockvote/pkg/auth"
	"github.com/GlebRadaev/stockvote/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*VotesHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

// serve routes the request through chi so URL parameters are resolved.
func serve(pattern string, fn http.HandlerFunc, method, target, body string, userID int) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(method, pattern, fn)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleVote(id int) domain.Vote {
	return domain.Vote{
		ID:             id,
		Title:          "Will it rise?",
		StockCode:      "000001",
		StockName:      "Ping An Bank",
		Kind:           domain.VoteKindStock,
		StartTime:      t0,
		EndTime:        t0.Add(time.Hour),
		SettlementTime: t0.Add(2 * time.Hour),
		State:          domain.VoteStateActive,
		BasePrice:      12.48,
		PointsReward:   10,
		CreatedBy:      1,
		CreatedAt:      t0,
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Message
}

func TestListVotesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedPage dto.PaginationDTO
	}{
		{
			name:   "Defaults to active",
			target: "/api/votes",
			prepareMock: func() {
				service.EXPECT().
					ListVotes(gomock.Any(), domain.VoteFilter{State: domain.VoteStateActive}, domain.Page{Number: 1, Limit: 10}).
					Return([]domain.Vote{sampleVote(1)}, 1, nil)
			},
			expectedCode: http.StatusOK,
			expectedPage: dto.PaginationDTO{Current: 1, Total: 1, Count: 1},
		},
		{
			name:   "All states, second page",
			target: "/api/votes?status=all&page=2&limit=5",
			prepareMock: func() {
				service.EXPECT().
					ListVotes(gomock.Any(), domain.VoteFilter{}, domain.Page{Number: 2, Limit: 5}).
					Return([]domain.Vote{sampleVote(6)}, 6, nil)
			},
			expectedCode: http.StatusOK,
			expectedPage: dto.PaginationDTO{Current: 2, Total: 2, Count: 6},
		},
		{
			name:   "Limit is capped",
			target: "/api/votes?status=settled&limit=1000",
			prepareMock: func() {
				service.EXPECT().
					ListVotes(gomock.Any(), domain.VoteFilter{State: domain.VoteStateSettled}, domain.Page{Number: 1, Limit: maxLimit}).
					Return(nil, 0, nil)
			},
			expectedCode: http.StatusOK,
			expectedPage: dto.PaginationDTO{Current: 1, Total: 0, Count: 0},
		},
		{
			name:   "Unknown status",
			target: "/api/votes?status=open",
			prepareMock: func() {
				service.EXPECT().
					ListVotes(gomock.Any(), domain.VoteFilter{State: "open"}, gomock.Any()).
					Return(nil, 0, fmt.Errorf("%w: unknown state", domain.ErrValidation))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "Storage failure",
			target: "/api/votes",
			prepareMock: func() {
				service.EXPECT().ListVotes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := serve("/api/votes", handler.ListVotes, http.MethodGet, tt.target, "", 0)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.VoteListResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedPage, body.Pagination)
			}
		})
	}
}

func TestHotVotesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().HotVotes(gomock.Any()).Return([]domain.Vote{sampleVote(3), sampleVote(2)}, nil)
	rec := serve("/api/votes/hot", handler.HotVotes, http.MethodGet, "/api/votes/hot", "", 0)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []dto.VoteDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, 3, body[0].ID)

	service.EXPECT().HotVotes(gomock.Any()).Return(nil, errors.New("db down"))
	rec = serve("/api/votes/hot", handler.HotVotes, http.MethodGet, "/api/votes/hot", "", 0)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetVoteHandler(t *testing.T) {
	handler, service := NewMock(t)
	vote := sampleVote(42)

	tests := []struct {
		name         string
		target       string
		userID       int
		prepareMock  func()
		expectedCode int
		withUserVote bool
	}{
		{
			name:   "Anonymous caller",
			target: "/api/votes/42",
			prepareMock: func() {
				service.EXPECT().GetVote(gomock.Any(), 42, 0).Return(&vote, nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Caller with a prediction",
			target: "/api/votes/42",
			userID: 7,
			prepareMock: func() {
				service.EXPECT().GetVote(gomock.Any(), 42, 7).Return(&vote, &domain.UserVote{
					ID: 5, UserID: 7, VoteID: 42, Prediction: domain.PredictionDown, VoteTime: t0, TxHash: "0x01",
				}, nil)
			},
			expectedCode: http.StatusOK,
			withUserVote: true,
		},
		{
			name:         "Invalid id",
			target:       "/api/votes/abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Not found",
			target: "/api/votes/404",
			prepareMock: func() {
				service.EXPECT().GetVote(gomock.Any(), 404, 0).Return(nil, nil, domain.ErrVoteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Storage failure",
			target: "/api/votes/42",
			prepareMock: func() {
				service.EXPECT().GetVote(gomock.Any(), 42, 0).Return(nil, nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := serve("/api/votes/{id}", handler.GetVote, http.MethodGet, tt.target, "", tt.userID)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.VoteDetailsResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, 42, body.Vote.ID)
				assert.Equal(t, "active", body.Vote.Status)
				if tt.withUserVote {
					require.NotNil(t, body.UserVote)
					assert.Equal(t, "down", body.UserVote.Prediction)
				} else {
					assert.Nil(t, body.UserVote)
				}
			}
		})
	}
}

func TestCreateVoteHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"title":"Will it rise?","stockCode":"000001","stockName":"Ping An Bank",` +
		`"endTime":"2026-03-02T11:00:00Z","settlementTime":"2026-03-02T12:00:00Z"}`
	params := domain.NewVoteParams{
		Title:          "Will it rise?",
		StockCode:      "000001",
		StockName:      "Ping An Bank",
		EndTime:        t0.Add(time.Hour),
		SettlementTime: t0.Add(2 * time.Hour),
		CreatedBy:      1,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Market created",
			body: body,
			prepareMock: func() {
				vote := sampleVote(42)
				service.EXPECT().CreateVote(gomock.Any(), params).Return(&vote, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Validation failed",
			body: body,
			prepareMock: func() {
				service.EXPECT().CreateVote(gomock.Any(), params).
					Return(nil, fmt.Errorf("%w: settlement time must be after end time", domain.ErrValidation))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "validation failed: settlement time must be after end time",
		},
		{
			name: "Oracle unavailable",
			body: body,
			prepareMock: func() {
				service.EXPECT().CreateVote(gomock.Any(), params).Return(nil, domain.ErrPriceUnavailable)
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "Price unavailable",
		},
		{
			name:          "Invalid request body",
			body:          `{"title":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := serve("/api/votes", handler.CreateVote, http.MethodPost, "/api/votes", tt.body, 1)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, rec))
			}
		})
	}
}

func TestCastVoteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		target        string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Prediction recorded",
			target: "/api/votes/42/cast",
			body:   `{"prediction":"up"}`,
			prepareMock: func() {
				service.EXPECT().CastVote(gomock.Any(), 42, 7, "up").Return(&domain.UserVote{
					ID: 5, UserID: 7, VoteID: 42, Prediction: domain.PredictionUp, VoteTime: t0, TxHash: "0x01",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Invalid prediction",
			target: "/api/votes/42/cast",
			body:   `{"prediction":"sideways"}`,
			prepareMock: func() {
				service.EXPECT().CastVote(gomock.Any(), 42, 7, "sideways").Return(nil, domain.ErrInvalidPrediction)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid prediction",
		},
		{
			name:   "Vote not found",
			target: "/api/votes/43/cast",
			body:   `{"prediction":"up"}`,
			prepareMock: func() {
				service.EXPECT().CastVote(gomock.Any(), 43, 7, "up").Return(nil, domain.ErrVoteNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Vote not found",
		},
		{
			name:   "Vote closed",
			target: "/api/votes/42/cast",
			body:   `{"prediction":"down"}`,
			prepareMock: func() {
				service.EXPECT().CastVote(gomock.Any(), 42, 7, "down").Return(nil, domain.ErrVoteNotActive)
			},
			expectedCode:  http.StatusLocked,
			expectedError: "Vote is not active",
		},
		{
			name:   "Already voted",
			target: "/api/votes/42/cast",
			body:   `{"prediction":"down"}`,
			prepareMock: func() {
				service.EXPECT().CastVote(gomock.Any(), 42, 7, "down").Return(nil, domain.ErrAlreadyVoted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Already voted",
		},
		{
			name:   "Storage failure",
			target: "/api/votes/42/cast",
			body:   `{"prediction":"down"}`,
			prepareMock: func() {
				service.EXPECT().CastVote(gomock.Any(), 42, 7, "down").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:          "Invalid vote id",
			target:        "/api/votes/0/cast",
			body:          `{"prediction":"up"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid vote id",
		},
		{
			name:          "Invalid request body",
			target:        "/api/votes/42/cast",
			body:          `up`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := serve("/api/votes/{id}/cast", handler.CastVote, http.MethodPost, tt.target, tt.body, 7)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, rec))
			}
		})
	}
}

func TestStockPriceHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().StockPrice(gomock.Any(), "000001.sh").Return(3145.60, nil)
	rec := serve("/api/stock/price/{code}", handler.StockPrice, http.MethodGet, "/api/stock/price/000001.sh", "", 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	var body dto.StockPriceResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, dto.StockPriceResponseDTO{Code: "000001.SH", Price: 3145.60}, body)

	service.EXPECT().StockPrice(gomock.Any(), "AAPL").Return(0.0, domain.ErrPriceUnavailable)
	rec = serve("/api/stock/price/{code}", handler.StockPrice, http.MethodGet, "/api/stock/price/AAPL", "", 0)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
