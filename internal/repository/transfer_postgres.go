package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

const transferColumns = `from_iban, to_iban, transfer_type, transfer_amount,
	transfer_concept, transfer_date, time_stamp, transfer_code`

const uniqueViolation = "23505"

type PostgresTransferLedger struct {
	db *sql.DB
}

func NewPostgresTransferLedger(db *sql.DB) *PostgresTransferLedger {
	return &PostgresTransferLedger{db: db}
}

func (l *PostgresTransferLedger) Load(ctx context.Context) ([]domain.TransferRequest, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT `+transferColumns+` FROM transfers ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer rows.Close()

	records := []domain.TransferRequest{}
	for rows.Next() {
		var r domain.TransferRequest
		if err := rows.Scan(
			&r.FromIBAN, &r.ToIBAN, &r.TransferType, &r.Amount,
			&r.Concept, &r.Date, &r.TimeStamp, &r.TransferCode,
		); err != nil {
			return nil, fmt.Errorf("Load: scan: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Load: rows: %w", err)
	}
	return records, nil
}

func (l *PostgresTransferLedger) AppendAndSave(ctx context.Context, record domain.TransferRequest) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO transfers (`+transferColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.FromIBAN, record.ToIBAN, record.TransferType, record.Amount,
		record.Concept, record.Date, record.TimeStamp, record.TransferCode,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("AppendAndSave: %s: %w", record.TransferCode, domain.ErrDuplicateTransfer)
		}
		return fmt.Errorf("AppendAndSave: %w", err)
	}
	return nil
}

func (l *PostgresTransferLedger) Ping(ctx context.Context) error {
	if err := l.db.PingContext(ctx); err != nil {
		return fmt.Errorf("Ping: %w", err)
	}
	return nil
}

func (l *PostgresTransferLedger) Close() error {
	return l.db.Close()
}
