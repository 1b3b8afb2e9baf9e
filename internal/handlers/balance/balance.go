package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/dto"
	"github.com/GlebRadaev/stockvote/pkg/auth"
	"github.com/GlebRadaev/stockvote/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	Spend(ctx context.Context, userID int, amount int64, reason string) (*domain.PointSpend, error)
	GetSpends(ctx context.Context, userID int) ([]domain.PointSpend, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current points balance of the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current points"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	points, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Points: points,
	})
}

// Spend godoc
//
//	@Summary		Spend points
//	@Description	Debit points from the user balance, e.g. for a shop purchase or a lottery ticket.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO	true	"Spend request payload"
//	@Success		200		{object}	dto.SpendResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient points"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/spend [post]
func (h *BalanceHandler) Spend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	spend, err := h.ledgerService.Spend(r.Context(), userID, req.Amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSpendDTO(spend))
}

// GetSpends godoc
//
//	@Summary		Get spend history
//	@Description	Point debits of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SpendResponseDTO	"Spend history"
//	@Success		204	{object}	utils.Response			"No spends"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/spends [get]
func (h *BalanceHandler) GetSpends(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	spends, err := h.ledgerService.GetSpends(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch spends")
		return
	}

	if len(spends) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Spends not found")
		return
	}

	response := make([]dto.SpendResponseDTO, len(spends))
	for i := range spends {
		response[i] = toSpendDTO(&spends[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toSpendDTO(s *domain.PointSpend) dto.SpendResponseDTO {
	return dto.SpendResponseDTO{
		ID:          s.ID,
		Amount:      s.Amount,
		Reason:      s.Reason,
		TxHash:      s.TxHash,
		ProcessedAt: s.ProcessedAt,
	}
}
