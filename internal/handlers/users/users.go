package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/dto"
	"github.com/GlebRadaev/stockvote/pkg/auth"
	"github.com/GlebRadaev/stockvote/pkg/utils"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	GetVoteHistory(ctx context.Context, userID int, page domain.Page) ([]domain.UserVoteWithVote, int, error)
}

type UsersHandler struct {
	userService Service
}

func New(userService Service) *UsersHandler {
	return &UsersHandler{
		userService: userService,
	}
}

// GetInfo godoc
//
//	@Summary		Current user profile
//	@Description	Points, prediction counters, accuracy in percent and rank of the authenticated user.
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserInfoResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/info [get]
func (h *UsersHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserInfoResponseDTO{
		ID:           user.ID,
		Login:        user.Login,
		Points:       user.Points,
		TotalVotes:   user.TotalVotes,
		CorrectVotes: user.CorrectVotes,
		Accuracy:     user.Accuracy(),
		Rank:         user.Rank,
		CreatedAt:    user.CreatedAt,
		LastLoginAt:  user.LastLoginAt,
	})
}

// GetVoteHistory godoc
//
//	@Summary		Prediction history
//	@Description	The authenticated user's predictions, newest first, with a summary of each market.
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	dto.VoteHistoryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/vote-history [get]
func (h *UsersHandler) GetVoteHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit := utils.QueryInt(r, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	page := domain.Page{Number: utils.QueryInt(r, "page", 1), Limit: limit}

	history, total, err := h.userService.GetVoteHistory(r.Context(), userID, page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.VoteHistoryItemDTO, len(history))
	for i := range history {
		item := &history[i]
		items[i] = dto.VoteHistoryItemDTO{
			UserVoteDTO: *dto.NewUserVoteDTO(&item.UserVote),
			VoteTitle:   item.VoteTitle,
			StockCode:   item.StockCode,
			StockName:   item.StockName,
			VoteStatus:  string(item.VoteState),
		}
		if item.VoteOutcome != nil {
			result := string(*item.VoteOutcome)
			items[i].VoteResult = &result
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VoteHistoryResponseDTO{
		Votes:      items,
		Pagination: dto.NewPagination(page, total),
	})
}
