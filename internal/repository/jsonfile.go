package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
)

// jsonArrayFile persists a collection as one JSON array that is rewritten
// in full on every save. It holds no state between calls.
type jsonArrayFile[T any] struct {
	path string
}

func newJSONArrayFile[T any](path string) *jsonArrayFile[T] {
	return &jsonArrayFile[T]{path: path}
}

// load reads the collection. Unparsable or non-array content is treated as
// an empty collection. When required is false a missing file is also empty;
// otherwise it yields domain.ErrStoreMissing.
func (f *jsonArrayFile[T]) load(ctx context.Context, required bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if required {
			return nil, fmt.Errorf("%s: %w", f.path, domain.NewError(domain.KindStoreMissing, "Store not found at: "+f.path))
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logging.FromContext(ctx).Warn("store content unreadable, treating as empty", "path", f.path, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save writes items to a temporary file next to the target and renames it
// over the target, so readers never observe a half-written array.
func (f *jsonArrayFile[T]) save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename into %s: %w", f.path, err)
	}
	return nil
}
