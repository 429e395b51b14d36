package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/service/deposit"
	"github.com/josh-kwaku/transfer-ledger/internal/testutil"
)

type mockDepositService struct {
	got deposit.Input
	err error
}

func (m *mockDepositService) DepositIntoAccount(_ context.Context, in deposit.Input) (*domain.DepositRequest, error) {
	m.got = in
	if m.err != nil {
		return nil, m.err
	}
	amount, _ := decimal.NewFromString(strings.TrimPrefix(in.Amount, "EUR "))
	d := domain.NewDepositRequest(in.IBAN, domain.NewMoney(amount), testutil.Now)
	return &d, nil
}

func TestDepositHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "created", body: `{"iban":"` + testutil.SenderIBAN + `","amount":"EUR 100.00"}`, wantStatus: http.StatusCreated},
		{name: "bad json", body: `nope`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "bad currency", body: `{"iban":"` + testutil.SenderIBAN + `","amount":"100.00"}`, svcErr: domain.ErrInvalidCurrency,
			wantStatus: http.StatusBadRequest, wantCode: "INVALID_CURRENCY"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockDepositService{err: tc.svcErr}
			rec := httptest.NewRecorder()
			NewDepositHandler(svc).Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/deposits", strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			if tc.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tc.wantCode, resp.Error.Code)
				return
			}

			assert.Equal(t, testutil.SenderIBAN, svc.got.IBAN)
			data, ok := resp.Data.(map[string]any)
			require.True(t, ok)
			assert.Len(t, data["deposit_signature"], 64)
		})
	}
}
