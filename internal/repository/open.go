package repository

import (
	"context"
	"fmt"

	"github.com/josh-kwaku/transfer-ledger/internal/config"
)

// OpenTransferLedger builds the ledger selected by cfg.LedgerBackend.
func OpenTransferLedger(ctx context.Context, cfg *config.Config) (TransferLedger, error) {
	switch cfg.LedgerBackend {
	case config.BackendFile:
		return NewFileTransferLedger(cfg.TransfersPath), nil
	case config.BackendBolt:
		l, err := NewBoltTransferLedger(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("OpenTransferLedger: %w", err)
		}
		return l, nil
	case config.BackendPostgres:
		db, err := NewPostgresDB(ctx, cfg.DatabaseURL, PoolConfig{
			MaxOpenConns:     cfg.DBMaxOpenConns,
			MaxIdleConns:     cfg.DBMaxIdleConns,
			ConnMaxLifetimeS: cfg.DBConnMaxLifetimeS,
			ConnMaxIdleTimeS: cfg.DBConnMaxIdleTimeS,
			ConnectAttempts:  cfg.DBConnectAttempts,
		})
		if err != nil {
			return nil, fmt.Errorf("OpenTransferLedger: %w", err)
		}
		return NewPostgresTransferLedger(db), nil
	default:
		return nil, fmt.Errorf("OpenTransferLedger: unknown backend %q", cfg.LedgerBackend)
	}
}
