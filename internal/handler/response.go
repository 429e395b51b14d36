package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON encodes payload before touching the response so an encoding
// failure can still be reported as a 500.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"data":null,"error":{"code":"INTERNAL_ERROR","message":"An unexpected error occurred"}}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{Success: true, Data: data})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	respondError(w, appErr, appErr.Message, details)
}

func respondError(w http.ResponseWriter, appErr *AppError, message string, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Error: &APIError{Code: appErr.Code, Message: message, Details: details},
	})
}

// RespondDomainError maps err's kind to a status and code. The message is
// the domain error's own, since it tells the caller which rule failed.
func RespondDomainError(w http.ResponseWriter, err error) {
	appErr, ok := appErrorsByKind[domain.KindOf(err)]
	if !ok {
		slog.Error("unhandled domain error", "error", err)
		RespondAppError(w, ErrInternalError, nil)
		return
	}
	respondError(w, appErr, domain.MessageOf(err), nil)
}
