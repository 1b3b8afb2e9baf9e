package dto

import "github.com/GlebRadaev/stockvote/internal/domain"

type PaginationDTO struct {
	Current int `json:"current" example:"1"`
	Total   int `json:"total" example:"3"`
	Count   int `json:"count" example:"27"`
}

func NewPagination(page domain.Page, count int) PaginationDTO {
	return PaginationDTO{
		Current: page.Number,
		Total:   page.Pages(count),
		Count:   count,
	}
}
