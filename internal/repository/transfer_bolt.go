package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
)

const (
	transfersBucket     = "transfers"
	transferCodesBucket = "transfer_codes"
)

// BoltTransferLedger keeps records in insertion order under an 8-byte
// sequence key, with a second bucket indexing transfer codes.
type BoltTransferLedger struct {
	db *bolt.DB
}

func NewBoltTransferLedger(path string) (*BoltTransferLedger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("NewBoltTransferLedger: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("NewBoltTransferLedger: open: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{transfersBucket, transferCodesBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("NewBoltTransferLedger: buckets: %w", err)
	}

	return &BoltTransferLedger{db: db}, nil
}

func (l *BoltTransferLedger) Load(ctx context.Context) ([]domain.TransferRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	records := []domain.TransferRequest{}
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(transfersBucket)).ForEach(func(k, v []byte) error {
			var rec domain.TransferRequest
			if err := json.Unmarshal(v, &rec); err != nil {
				logging.FromContext(ctx).Warn("skipping unreadable ledger entry", "seq", binary.BigEndian.Uint64(k), "error", err)
				return nil
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return records, nil
}

func (l *BoltTransferLedger) AppendAndSave(ctx context.Context, record domain.TransferRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("AppendAndSave: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("AppendAndSave: encode: %w", err)
	}

	err = l.db.Update(func(tx *bolt.Tx) error {
		codes := tx.Bucket([]byte(transferCodesBucket))
		if codes.Get([]byte(record.TransferCode)) != nil {
			return fmt.Errorf("%s: %w", record.TransferCode, domain.ErrDuplicateTransfer)
		}

		transfers := tx.Bucket([]byte(transfersBucket))
		seq, err := transfers.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if err := transfers.Put(key, data); err != nil {
			return err
		}
		return codes.Put([]byte(record.TransferCode), key)
	})
	if err != nil {
		return fmt.Errorf("AppendAndSave: %w", err)
	}
	return nil
}

func (l *BoltTransferLedger) Ping(_ context.Context) error {
	if err := l.db.View(func(*bolt.Tx) error { return nil }); err != nil {
		return fmt.Errorf("Ping: %w", err)
	}
	return nil
}

func (l *BoltTransferLedger) Close() error {
	return l.db.Close()
}
