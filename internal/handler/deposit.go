package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/service/deposit"
)

type depositService interface {
	DepositIntoAccount(ctx context.Context, in deposit.Input) (*domain.DepositRequest, error)
}

type DepositHandler struct {
	deposits depositService
}

func NewDepositHandler(deposits depositService) *DepositHandler {
	return &DepositHandler{deposits: deposits}
}

type createDepositRequest struct {
	IBAN   string `json:"iban"`
	Amount string `json:"amount"`
}

type depositResponse struct {
	Signature string                `json:"deposit_signature"`
	Record    domain.DepositRequest `json:"record"`
}

func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	d, err := h.deposits.DepositIntoAccount(r.Context(), deposit.Input{IBAN: req.IBAN, Amount: req.Amount})
	if err != nil {
		logging.FromContext(r.Context()).Warn("deposit failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, depositResponse{Signature: d.Signature, Record: *d})
}
