package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/repository"
	"github.com/josh-kwaku/transfer-ledger/internal/testutil"
)

func TestFileDepositStore(t *testing.T) {
	ctx := context.Background()
	path := testutil.TempPath(t, "deposits.json")
	testutil.WriteFile(t, path, "garbage")
	s := repository.NewFileDepositStore(path)

	deposits, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, deposits)

	d := domain.NewDepositRequest(testutil.SenderIBAN, domain.NewMoney(decimal.RequireFromString("50")), testutil.Now)
	require.NoError(t, s.Append(ctx, d))
	require.NoError(t, s.Append(ctx, d))

	deposits, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	assert.Equal(t, d.Signature, deposits[0].Signature)
	assert.Equal(t, "50.00", deposits[0].Amount.String())
}

func TestFileTransactionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		s := repository.NewFileTransactionStore(testutil.TempPath(t, "all_transactions.json"))
		_, err := s.Load(ctx)
		require.ErrorIs(t, err, domain.ErrStoreMissing)
	})

	t.Run("numbers and strings", func(t *testing.T) {
		path := testutil.TempPath(t, "all_transactions.json")
		testutil.WriteFile(t, path, `[
			{"IBAN": "`+testutil.SenderIBAN+`", "amount": "-150.50", "concept": "ignored"},
			{"IBAN": "`+testutil.SenderIBAN+`", "amount": 200}
		]`)
		txs, err := repository.NewFileTransactionStore(path).Load(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "-150.50", txs[0].Amount.String())
		assert.Equal(t, "200.00", txs[1].Amount.String())
	})
}

func TestFileBalanceStore(t *testing.T) {
	ctx := context.Background()
	balance := domain.AccountBalance{
		IBAN:   testutil.SenderIBAN,
		Amount: domain.NewMoney(decimal.RequireFromString("49.50")),
		Date:   "2026-10-14",
	}

	t.Run("missing file is not created", func(t *testing.T) {
		path := testutil.TempPath(t, "account_balances.json")
		err := repository.NewFileBalanceStore(path).Append(ctx, balance)
		require.ErrorIs(t, err, domain.ErrStoreMissing)
		assert.NoFileExists(t, path)
	})

	t.Run("appends to existing file", func(t *testing.T) {
		path := testutil.TempPath(t, "account_balances.json")
		testutil.WriteFile(t, path, "[]")
		s := repository.NewFileBalanceStore(path)

		require.NoError(t, s.Append(ctx, balance))
		balances, err := s.Load(ctx)
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.Equal(t, balance.IBAN, balances[0].IBAN)
		assert.Equal(t, "49.50", balances[0].Amount.String())
	})
}
