package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
)

type balanceService interface {
	StoreNewBalance(ctx context.Context, iban string) (*domain.AccountBalance, error)
}

type BalanceHandler struct {
	balances balanceService
}

func NewBalanceHandler(balances balanceService) *BalanceHandler {
	return &BalanceHandler{balances: balances}
}

func (h *BalanceHandler) Store(w http.ResponseWriter, r *http.Request) {
	iban := mux.Vars(r)["iban"]

	b, err := h.balances.StoreNewBalance(r.Context(), iban)
	if err != nil {
		logging.FromContext(r.Context()).Warn("balance computation failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, b)
}
