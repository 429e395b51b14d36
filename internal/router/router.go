package router

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/josh-kwaku/transfer-ledger/internal/handler"
	"github.com/josh-kwaku/transfer-ledger/internal/middleware"
)

type Handlers struct {
	Transfers *handler.TransferHandler
	Deposits  *handler.DepositHandler
	Balances  *handler.BalanceHandler
	Health    *handler.HealthHandler
}

// New registers every route. Middleware runs in the order Recovery,
// Tracing, Logging, Metrics for matched routes; unmatched paths get the
// JSON 404 envelope.
func New(h Handlers, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery, middleware.Tracing, middleware.Logging(logger), middleware.Metrics)

	r.HandleFunc("/health", h.Health.Liveness).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", h.Health.Readiness).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/transfers", h.Transfers.Create).Methods(http.MethodPost)
	api.HandleFunc("/transfers", h.Transfers.List).Methods(http.MethodGet)
	api.HandleFunc("/deposits", h.Deposits.Create).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{iban}/balance", h.Balances.Store).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.RespondAppError(w, handler.ErrResourceNotFound, nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.RespondAppError(w, handler.ErrMethodNotAllowed, nil)
	})
	return r
}
