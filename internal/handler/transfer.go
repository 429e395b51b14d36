package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/service/transfer"
)

type transferService interface {
	ProcessTransfer(ctx context.Context, in transfer.Input) (*transfer.Result, error)
	ListTransfers(ctx context.Context) ([]domain.TransferRequest, error)
}

type TransferHandler struct {
	transfers transferService
}

func NewTransferHandler(transfers transferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

// createTransferRequest keeps amount untyped: clients send either
// "1,250.50" or 1250.5.
type createTransferRequest struct {
	FromIBAN     string `json:"from_iban"`
	ToIBAN       string `json:"to_iban"`
	Concept      string `json:"concept"`
	TransferType string `json:"transfer_type"`
	Date         string `json:"date"`
	Amount       any    `json:"amount"`
}

type transferResponse struct {
	Message      string                 `json:"message"`
	TransferCode string                 `json:"transfer_code"`
	Record       domain.TransferRequest `json:"record"`
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	res, err := h.transfers.ProcessTransfer(r.Context(), transfer.Input{
		FromIBAN:     req.FromIBAN,
		ToIBAN:       req.ToIBAN,
		Concept:      req.Concept,
		TransferType: req.TransferType,
		Date:         req.Date,
		Amount:       req.Amount,
	})
	if err != nil {
		logging.FromContext(r.Context()).Warn("transfer creation failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, transferResponse{
		Message:      res.Message,
		TransferCode: res.Record.TransferCode,
		Record:       res.Record,
	})
}

func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.transfers.ListTransfers(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("listing transfers failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, map[string]any{
		"transfers": records,
		"count":     len(records),
	})
}
