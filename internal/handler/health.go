package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/josh-kwaku/transfer-ledger/internal/logging"
)

const version = "1.0.0"

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	ledger  pinger
	backend string
}

func NewHealthHandler(ledger pinger, backend string) *HealthHandler {
	return &HealthHandler{ledger: ledger, backend: backend}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ledgerStatus := "ok"
	httpStatus := http.StatusOK

	if err := h.ledger.Ping(r.Context()); err != nil {
		logging.FromContext(r.Context()).Warn("readiness check failed: ledger unreachable", "backend", h.backend, "error", err)
		ledgerStatus = "down"
		httpStatus = http.StatusServiceUnavailable
	}

	RespondJSON(w, httpStatus, map[string]any{
		"status":    ledgerStatus,
		"backend":   h.backend,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"ledger": ledgerStatus,
		},
	})
}
