package dto

import "time"

type BalanceResponseDTO struct {
	Points int64 `json:"points" example:"150"`
}

type SpendRequestDTO struct {
	Amount int64  `json:"amount" example:"50"`
	Reason string `json:"reason" example:"shop"`
}

type SpendResponseDTO struct {
	ID          int       `json:"id" example:"3"`
	Amount      int64     `json:"amount" example:"50"`
	Reason      string    `json:"reason" example:"shop"`
	TxHash      string    `json:"txHash"`
	ProcessedAt time.Time `json:"processedAt" example:"2026-03-02T16:09:57+03:00"`
}
