package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

type FileTransferLedger struct {
	file *jsonArrayFile[domain.TransferRequest]
}

func NewFileTransferLedger(path string) *FileTransferLedger {
	return &FileTransferLedger{file: newJSONArrayFile[domain.TransferRequest](path)}
}

func (l *FileTransferLedger) Load(ctx context.Context) ([]domain.TransferRequest, error) {
	records, err := l.file.load(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return records, nil
}

func (l *FileTransferLedger) AppendAndSave(ctx context.Context, record domain.TransferRequest) error {
	records, err := l.file.load(ctx, false)
	if err != nil {
		return fmt.Errorf("AppendAndSave: %w", err)
	}
	if ContainsCode(records, record.TransferCode) {
		return fmt.Errorf("AppendAndSave: %s: %w", record.TransferCode, domain.ErrDuplicateTransfer)
	}
	if err := l.file.save(ctx, append(records, record)); err != nil {
		return fmt.Errorf("AppendAndSave: %w", err)
	}
	return nil
}

// Ping checks that the ledger directory exists or can be created.
func (l *FileTransferLedger) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(l.file.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("Ping: %w", err)
	}
	return nil
}

func (l *FileTransferLedger) Close() error { return nil }
