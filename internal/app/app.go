// Package app wires configuration into the ledger, its stores and the
// services shared by the API server and the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/josh-kwaku/transfer-ledger/internal/config"
	"github.com/josh-kwaku/transfer-ledger/internal/repository"
	"github.com/josh-kwaku/transfer-ledger/internal/service/balance"
	"github.com/josh-kwaku/transfer-ledger/internal/service/deposit"
	"github.com/josh-kwaku/transfer-ledger/internal/service/transfer"
	"github.com/josh-kwaku/transfer-ledger/internal/validation"
)

type App struct {
	Config    *config.Config
	Ledger    repository.TransferLedger
	Transfers *transfer.Service
	Deposits  *deposit.Service
	Balances  *balance.Service
}

func New(ctx context.Context, cfg *config.Config, now func() time.Time) (*App, error) {
	ledger, err := repository.OpenTransferLedger(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	ibans := validation.NewIBANValidator(cfg.IBANCountryPrefix)
	return &App{
		Config:    cfg,
		Ledger:    ledger,
		Transfers: transfer.NewService(ledger, ibans, now),
		Deposits:  deposit.NewService(repository.NewFileDepositStore(cfg.DepositsPath), ibans, now),
		Balances: balance.NewService(
			repository.NewFileTransactionStore(cfg.TransactionsPath),
			repository.NewFileBalanceStore(cfg.BalancesPath),
			ibans,
			now,
		),
	}, nil
}

func (a *App) Close() error {
	return a.Ledger.Close()
}
