package dto

import "time"

type UserInfoResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	Login        string    `json:"login" example:"alice"`
	Points       int64     `json:"points" example:"150"`
	TotalVotes   int       `json:"totalVotes" example:"8"`
	CorrectVotes int       `json:"correctVotes" example:"5"`
	Accuracy     int       `json:"accuracy" example:"63"`
	Rank         int       `json:"rank" example:"3"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLoginAt  time.Time `json:"lastLoginAt"`
}

type VoteHistoryItemDTO struct {
	UserVoteDTO
	VoteTitle  string  `json:"voteTitle"`
	StockCode  string  `json:"stockCode" example:"000001"`
	StockName  string  `json:"stockName" example:"Ping An Bank"`
	VoteStatus string  `json:"voteStatus" example:"settled"`
	VoteResult *string `json:"voteResult,omitempty" example:"up"`
}

type VoteHistoryResponseDTO struct {
	Votes      []VoteHistoryItemDTO `json:"votes"`
	Pagination PaginationDTO        `json:"pagination"`
}

type RankingItemDTO struct {
	Rank         int    `json:"rank" example:"1"`
	UserID       int    `json:"userId" example:"7"`
	Login        string `json:"login" example:"alice"`
	Points       int64  `json:"points" example:"320"`
	TotalVotes   int    `json:"totalVotes" example:"20"`
	CorrectVotes int    `json:"correctVotes" example:"14"`
	Accuracy     int    `json:"accuracy" example:"70"`
}

type RankingResponseDTO struct {
	Users      []RankingItemDTO `json:"users"`
	Pagination PaginationDTO    `json:"pagination"`
}
