package dto

import (
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
)

type CreateVoteRequestDTO struct {
	Title          string    `json:"title" example:"Will Ping An Bank close higher on Friday?"`
	Description    string    `json:"description"`
	StockCode      string    `json:"stockCode" example:"000001"`
	StockName      string    `json:"stockName" example:"Ping An Bank"`
	VoteKind       string    `json:"voteKind" example:"stock"`
	EndTime        time.Time `json:"endTime" example:"2026-03-06T07:00:00Z"`
	SettlementTime time.Time `json:"settlementTime" example:"2026-03-06T08:00:00Z"`
	BasePrice      float64   `json:"basePrice,omitempty" example:"12.48"`
	PointsReward   int       `json:"pointsReward,omitempty" example:"10"`
}

type CastVoteRequestDTO struct {
	Prediction string `json:"prediction" example:"up"`
}

type VoteDTO struct {
	ID               int        `json:"id" example:"42"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	StockCode        string     `json:"stockCode" example:"000001"`
	StockName        string     `json:"stockName" example:"Ping An Bank"`
	VoteKind         string     `json:"voteKind" example:"stock"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          time.Time  `json:"endTime"`
	SettlementTime   time.Time  `json:"settlementTime"`
	Status           string     `json:"status" example:"active"`
	BasePrice        float64    `json:"basePrice" example:"12.48"`
	FinalPrice       *float64   `json:"finalPrice,omitempty" example:"12.8"`
	Result           *string    `json:"result,omitempty" example:"up"`
	PointsReward     int        `json:"pointsReward" example:"10"`
	ParticipantCount int        `json:"participantCount" example:"3"`
	UpCount          int        `json:"upCount" example:"2"`
	DownCount        int        `json:"downCount" example:"1"`
	CreatedBy        int        `json:"createdBy" example:"1"`
	SettlementTx     *string    `json:"settlementTx,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	SettledAt        *time.Time `json:"settledAt,omitempty"`
}

type UserVoteDTO struct {
	ID           int       `json:"id" example:"5"`
	VoteID       int       `json:"voteId" example:"42"`
	Prediction   string    `json:"prediction" example:"up"`
	IsCorrect    *bool     `json:"isCorrect,omitempty"`
	PointsEarned int       `json:"pointsEarned" example:"10"`
	VoteTime     time.Time `json:"voteTime"`
	TxHash       string    `json:"txHash"`
}

type VoteDetailsResponseDTO struct {
	Vote     VoteDTO      `json:"vote"`
	UserVote *UserVoteDTO `json:"userVote,omitempty"`
}

type VoteListResponseDTO struct {
	Votes      []VoteDTO     `json:"votes"`
	Pagination PaginationDTO `json:"pagination"`
}

type StockPriceResponseDTO struct {
	Code  string  `json:"code" example:"000001"`
	Price float64 `json:"price" example:"12.48"`
}

func NewVoteDTO(v *domain.Vote) VoteDTO {
	resp := VoteDTO{
		ID:               v.ID,
		Title:            v.Title,
		Description:      v.Description,
		StockCode:        v.StockCode,
		StockName:        v.StockName,
		VoteKind:         string(v.Kind),
		StartTime:        v.StartTime,
		EndTime:          v.EndTime,
		SettlementTime:   v.SettlementTime,
		Status:           string(v.State),
		BasePrice:        v.BasePrice,
		FinalPrice:       v.FinalPrice,
		PointsReward:     v.PointsReward,
		ParticipantCount: v.ParticipantCount,
		UpCount:          v.UpCount,
		DownCount:        v.DownCount,
		CreatedBy:        v.CreatedBy,
		SettlementTx:     v.SettlementTx,
		CreatedAt:        v.CreatedAt,
		SettledAt:        v.SettledAt,
	}
	if v.Outcome != nil {
		result := string(*v.Outcome)
		resp.Result = &result
	}
	return resp
}

func NewVoteDTOs(votes []domain.Vote) []VoteDTO {
	resp := make([]VoteDTO, len(votes))
	for i := range votes {
		resp[i] = NewVoteDTO(&votes[i])
	}
	return resp
}

func NewUserVoteDTO(uv *domain.UserVote) *UserVoteDTO {
	if uv == nil {
		return nil
	}
	return &UserVoteDTO{
		ID:           uv.ID,
		VoteID:       uv.VoteID,
		Prediction:   string(uv.Prediction),
		IsCorrect:    uv.IsCorrect,
		PointsEarned: uv.PointsEarned,
		VoteTime:     uv.VoteTime,
		TxHash:       uv.TxHash,
	}
}
