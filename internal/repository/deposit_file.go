package repository

import (
	"context"
	"fmt"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

type FileDepositStore struct {
	file *jsonArrayFile[domain.DepositRequest]
}

func NewFileDepositStore(path string) *FileDepositStore {
	return &FileDepositStore{file: newJSONArrayFile[domain.DepositRequest](path)}
}

func (s *FileDepositStore) Load(ctx context.Context) ([]domain.DepositRequest, error) {
	deposits, err := s.file.load(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return deposits, nil
}

func (s *FileDepositStore) Append(ctx context.Context, deposit domain.DepositRequest) error {
	deposits, err := s.file.load(ctx, false)
	if err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	if err := s.file.save(ctx, append(deposits, deposit)); err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	return nil
}
