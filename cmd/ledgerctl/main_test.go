package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/transfer-ledger/internal/app"
	"github.com/josh-kwaku/transfer-ledger/internal/config"
	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/testutil"
)

func setupApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()
	a, err := app.New(context.Background(), &config.Config{
		LedgerBackend:     config.BackendFile,
		TransfersPath:     filepath.Join(dir, "stored_transactions.json"),
		DepositsPath:      filepath.Join(dir, "deposits.json"),
		TransactionsPath:  filepath.Join(dir, "all_transactions.json"),
		BalancesPath:      filepath.Join(dir, "account_balances.json"),
		IBANCountryPrefix: "ES",
	}, testutil.Clock(testutil.Now))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestDispatch_Transfer(t *testing.T) {
	a := setupApp(t)
	args := []string{"transfer",
		"-from", testutil.SenderIBAN,
		"-to", testutil.ReceiverIBAN,
		"-concept", testutil.Concept,
		"-type", "IMMEDIATE",
		"-date", "20/10/2026",
		"-amount", "2,000.00",
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, dispatch(context.Background(), a, args, &stdout, &stderr))
	line := strings.TrimSpace(stdout.String())
	assert.True(t, strings.HasPrefix(line, "Transfer Code: "))
	assert.Len(t, strings.TrimPrefix(line, "Transfer Code: "), 32)

	err := dispatch(context.Background(), a, args, &stdout, &stderr)
	require.ErrorIs(t, err, domain.ErrDuplicateTransfer)
	assert.Equal(t, "Output JSON file already has that transfer", domain.MessageOf(err))
}

func TestDispatch_Deposit(t *testing.T) {
	a := setupApp(t)
	input := testutil.TempPath(t, "input.json")
	testutil.WriteFile(t, input, `{"IBAN": "`+testutil.SenderIBAN+`", "AMOUNT": "EUR 300.00"}`)

	var stdout, stderr bytes.Buffer
	require.NoError(t, dispatch(context.Background(), a, []string{"deposit", "-file", input}, &stdout, &stderr))
	assert.Len(t, strings.TrimSpace(stdout.String()), 64)

	err := dispatch(context.Background(), a, []string{"deposit", "-file", input + ".missing"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, "The data file is not found.", domain.MessageOf(err))
}

func TestDispatch_Balance(t *testing.T) {
	a := setupApp(t)
	testutil.WriteFile(t, a.Config.TransactionsPath, `[{"IBAN": "`+testutil.SenderIBAN+`", "amount": "40.10"}, {"IBAN": "`+testutil.SenderIBAN+`", "amount": "-0.10"}]`)
	testutil.WriteFile(t, a.Config.BalancesPath, `[]`)

	var stdout, stderr bytes.Buffer
	require.NoError(t, dispatch(context.Background(), a, []string{"balance", "-iban", testutil.SenderIBAN}, &stdout, &stderr))
	assert.Equal(t, testutil.SenderIBAN+" 40.00 2026-10-14\n", stdout.String())
}

func TestDispatch_UnknownCommand(t *testing.T) {
	a := setupApp(t)
	err := dispatch(context.Background(), a, []string{"withdraw"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}

func TestRun_NoArgs(t *testing.T) {
	require.ErrorIs(t, run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}), errUsage)
}
