package repository

import (
	"context"
	"fmt"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

// FileTransactionStore reads the account movements file. The file must
// exist; unparsable content reads as no movements.
type FileTransactionStore struct {
	file *jsonArrayFile[domain.Transaction]
}

func NewFileTransactionStore(path string) *FileTransactionStore {
	return &FileTransactionStore{file: newJSONArrayFile[domain.Transaction](path)}
}

func (s *FileTransactionStore) Load(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.file.load(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return txs, nil
}

// FileBalanceStore appends computed balances. It never creates the file: a
// missing balances file is domain.ErrStoreMissing.
type FileBalanceStore struct {
	file *jsonArrayFile[domain.AccountBalance]
}

func NewFileBalanceStore(path string) *FileBalanceStore {
	return &FileBalanceStore{file: newJSONArrayFile[domain.AccountBalance](path)}
}

func (s *FileBalanceStore) Load(ctx context.Context) ([]domain.AccountBalance, error) {
	balances, err := s.file.load(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return balances, nil
}

func (s *FileBalanceStore) Append(ctx context.Context, balance domain.AccountBalance) error {
	balances, err := s.file.load(ctx, true)
	if err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	if err := s.file.save(ctx, append(balances, balance)); err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	return nil
}
