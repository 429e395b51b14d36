package repository

import (
	"context"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

// TransferLedger is the append-only store of transfer records. AppendAndSave
// fails with domain.ErrDuplicateTransfer when the record's code is already
// stored. Implementations assume a single writer.
type TransferLedger interface {
	Load(ctx context.Context) ([]domain.TransferRequest, error)
	AppendAndSave(ctx context.Context, record domain.TransferRequest) error
	Ping(ctx context.Context) error
	Close() error
}

// ContainsCode reports whether any record carries code.
func ContainsCode(records []domain.TransferRequest, code string) bool {
	for i := range records {
		if records[i].TransferCode == code {
			return true
		}
	}
	return false
}
