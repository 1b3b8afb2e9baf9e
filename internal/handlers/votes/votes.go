package votes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/dto"
	"github.com/GlebRadaev/stockvote/pkg/auth"
	"github.com/GlebRadaev/stockvote/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	statusAll    = "all"
)

type Service interface {
	CreateVote(ctx context.Context, params domain.NewVoteParams) (*domain.Vote, error)
	CastVote(ctx context.Context, voteID, userID int, prediction string) (*domain.UserVote, error)
	GetVote(ctx context.Context, voteID, userID int) (*domain.Vote, *domain.UserVote, error)
	ListVotes(ctx context.Context, filter domain.VoteFilter, page domain.Page) ([]domain.Vote, int, error)
	HotVotes(ctx context.Context) ([]domain.Vote, error)
	StockPrice(ctx context.Context, stockCode string) (float64, error)
}

type VotesHandler struct {
	voteService Service
}

func New(voteService Service) *VotesHandler {
	return &VotesHandler{
		voteService: voteService,
	}
}

func pageFromQuery(r *http.Request) domain.Page {
	limit := utils.QueryInt(r, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	return domain.Page{Number: utils.QueryInt(r, "page", 1), Limit: limit}
}

func voteIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// ListVotes godoc
//
//	@Summary		List prediction markets
//	@Description	Page through markets, newest first. Status defaults to active; "all" lists every state.
//	@Tags			Votes
//	@Produce		json
//	@Param			status	query		string	false	"pending, active, ended, settled or all"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	dto.VoteListResponseDTO
//	@Failure		422		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/votes [get]
func (h *VotesHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	filter := domain.VoteFilter{State: domain.VoteStateActive}
	switch status := r.URL.Query().Get("status"); status {
	case "":
	case statusAll:
		filter.State = ""
	default:
		filter.State = domain.VoteState(status)
	}
	page := pageFromQuery(r)

	votes, total, err := h.voteService.ListVotes(r.Context(), filter, page)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VoteListResponseDTO{
		Votes:      dto.NewVoteDTOs(votes),
		Pagination: dto.NewPagination(page, total),
	})
}

// HotVotes godoc
//
//	@Summary		Most popular open markets
//	@Tags			Votes
//	@Produce		json
//	@Success		200	{array}		dto.VoteDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/votes/hot [get]
func (h *VotesHandler) HotVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.voteService.HotVotes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVoteDTOs(votes))
}

// GetVote godoc
//
//	@Summary		Market details
//	@Description	Returns the market and, for an authenticated caller, their own prediction.
//	@Tags			Votes
//	@Produce		json
//	@Param			id	path		int	true	"Vote ID"
//	@Success		200	{object}	dto.VoteDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid vote id"
//	@Failure		404	{object}	utils.Response	"Vote not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/votes/{id} [get]
func (h *VotesHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	voteID, ok := voteIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vote id")
		return
	}
	userID, _ := auth.UserIDFromContext(r.Context())

	vote, userVote, err := h.voteService.GetVote(r.Context(), voteID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrVoteNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Vote not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VoteDetailsResponseDTO{
		Vote:     dto.NewVoteDTO(vote),
		UserVote: dto.NewUserVoteDTO(userVote),
	})
}

// CreateVote godoc
//
//	@Summary		Open a prediction market
//	@Description	When basePrice is omitted the current oracle price is used.
//	@Tags			Votes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateVoteRequestDTO	true	"Market definition"
//	@Success		201		{object}	dto.VoteDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		503		{object}	utils.Response	"Price unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/votes [post]
func (h *VotesHandler) CreateVote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateVoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vote, err := h.voteService.CreateVote(r.Context(), domain.NewVoteParams{
		Title:          req.Title,
		Description:    req.Description,
		StockCode:      req.StockCode,
		StockName:      req.StockName,
		Kind:           domain.VoteKind(req.VoteKind),
		EndTime:        req.EndTime,
		SettlementTime: req.SettlementTime,
		BasePrice:      req.BasePrice,
		PointsReward:   req.PointsReward,
		CreatedBy:      userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrPriceUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Price unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewVoteDTO(vote))
}

// CastVote godoc
//
//	@Summary		Predict the direction of a market
//	@Tags			Votes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Vote ID"
//	@Param			request	body		dto.CastVoteRequestDTO	true	"up or down"
//	@Success		200		{object}	dto.UserVoteDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Vote not found"
//	@Failure		409		{object}	utils.Response	"Already voted"
//	@Failure		422		{object}	utils.Response	"Invalid prediction"
//	@Failure		423		{object}	utils.Response	"Vote is not active"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/votes/{id}/cast [post]
func (h *VotesHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	voteID, ok := voteIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vote id")
		return
	}
	var req dto.CastVoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userVote, err := h.voteService.CastVote(r.Context(), voteID, userID, req.Prediction)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPrediction):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid prediction")
		case errors.Is(err, domain.ErrVoteNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Vote not found")
		case errors.Is(err, domain.ErrVoteNotActive):
			utils.RespondWithError(w, http.StatusLocked, "Vote is not active")
		case errors.Is(err, domain.ErrAlreadyVoted):
			utils.RespondWithError(w, http.StatusConflict, "Already voted")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserVoteDTO(userVote))
}

// StockPrice godoc
//
//	@Summary		Current price of a stock
//	@Tags			Stock
//	@Produce		json
//	@Param			code	path		string	true	"Stock code"
//	@Success		200		{object}	dto.StockPriceResponseDTO
//	@Failure		503		{object}	utils.Response	"Price unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stock/price/{code} [get]
func (h *VotesHandler) StockPrice(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	price, err := h.voteService.StockPrice(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrPriceUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Price unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StockPriceResponseDTO{
		Code:  strings.ToUpper(code),
		Price: price,
	})
}
