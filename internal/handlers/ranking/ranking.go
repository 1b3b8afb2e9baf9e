package ranking

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/dto"
	"github.com/GlebRadaev/stockvote/pkg/utils"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service interface {
	GetRanking(ctx context.Context, page domain.Page) ([]domain.User, int, error)
}

type RankingHandler struct {
	rankingService Service
}

func New(rankingService Service) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

// GetRanking godoc
//
//	@Summary		Leaderboard
//	@Description	Active users ordered by rank.
//	@Tags			User
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	dto.RankingResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/ranking [get]
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	page := domain.Page{Number: utils.QueryInt(r, "page", 1), Limit: limit}

	users, total, err := h.rankingService.GetRanking(r.Context(), page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.RankingItemDTO, len(users))
	for i := range users {
		u := &users[i]
		items[i] = dto.RankingItemDTO{
			Rank:         u.Rank,
			UserID:       u.ID,
			Login:        u.Login,
			Points:       u.Points,
			TotalVotes:   u.TotalVotes,
			CorrectVotes: u.CorrectVotes,
			Accuracy:     u.Accuracy(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RankingResponseDTO{
		Users:      items,
		Pagination: dto.NewPagination(page, total),
	})
}
