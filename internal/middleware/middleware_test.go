package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/metrics"
)

func TestTracing(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "propagates caller id", incoming: "req-123", keep: true},
		{name: "generates when absent", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 200)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			h := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tc.keep {
				assert.Equal(t, tc.incoming, seen)
			} else {
				assert.NotEqual(t, tc.incoming, seen)
				assert.Len(t, seen, 36)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(&buf, "debug", "production")

	h := Tracing(Logging(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil)
	req.Header.Set(RequestIDHeader, "trace-abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"inside handler"`)
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"request_id":"trace-abc"`)
	assert.Contains(t, out, `"status":418`)
}

func TestLogging_SkipsHealthProbes(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(logging.New(&buf, "debug", "production"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.NotContains(t, buf.String(), "request completed")
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("ledger exploded")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logging.WithLogger(req.Context(), logger))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.Contains(t, buf.String(), "ledger exploded")
}

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/api/v1/accounts/{iban}/balance", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)

	const route = "/api/v1/accounts/{iban}/balance"
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, route, "201")
	before := testutil.ToFloat64(counter)

	for _, iban := range []string{"ES9121000418450200051332", "ES7921000813610123456789"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+iban+"/balance", nil))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRouteTemplate_Unmatched(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routeTemplate(httptest.NewRequest(http.MethodGet, "/nowhere", nil)))
}
