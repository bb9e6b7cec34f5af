package handler

import (
	"net/http"

	"github.com/shareshelf/shareshelf/internal/rewards"
)

// HandleGetPoints returns the caller's reward point balance
// @Summary Get point balance
// @Tags rewards
// @Produce json
// @Success 200 {object} domain.UserPoints
// @Failure 401 {object} ErrorResponse
// @Router /points [get]
func HandleGetPoints(svc rewards.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		balance, err := svc.Balance(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "Get points", err)
			return
		}

		respondJSON(w, http.StatusOK, balance)
	}
}

// HandleListPointTransactions returns the caller's ledger, newest first
// @Summary List point transactions
// @Tags rewards
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /points/transactions [get]
func HandleListPointTransactions(svc rewards.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		transactions, err := svc.Transactions(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "List point transactions", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: transactions})
	}
}
