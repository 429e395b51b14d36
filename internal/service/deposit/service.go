package deposit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/metrics"
	"github.com/josh-kwaku/transfer-ledger/internal/validation"
)

const operationDeposit = "deposit"

var (
	ErrInputNotFound      = domain.NewError(domain.KindInput, "The data file is not found.")
	ErrInputNotJSON       = domain.NewError(domain.KindInput, "The file is not in JSON format.")
	ErrInputStructure     = domain.NewError(domain.KindInput, "The JSON does not have the expected structure.")
	errInvalidDepositIBAN = domain.NewError(domain.KindIBAN, "The JSON data does not have valid values (invalid IBAN).")
)

type depositStore interface {
	Append(ctx context.Context, deposit domain.DepositRequest) error
}

// Input is a deposit submission; Amount carries the currency, as in
// "EUR 100.00".
type Input struct {
	IBAN   string
	Amount string
}

type Service struct {
	deposits depositStore
	ibans    *validation.IBANValidator
	now      func() time.Time
}

func NewService(deposits depositStore, ibans *validation.IBANValidator, now func() time.Time) *Service {
	if ibans == nil {
		ibans = validation.NewIBANValidator(validation.DefaultCountryPrefix)
	}
	if now == nil {
		now = time.Now
	}
	return &Service{deposits: deposits, ibans: ibans, now: now}
}

// DepositIntoAccount validates in, signs the deposit and appends it to the
// deposits store.
func (s *Service) DepositIntoAccount(ctx context.Context, in Input) (*domain.DepositRequest, error) {
	d, err := s.depositIntoAccount(ctx, in)
	metrics.RecordOperation(operationDeposit, err)
	if err != nil {
		logging.FromContext(ctx).Warn("deposit rejected", "kind", domain.KindOf(err), "error", err)
		return nil, fmt.Errorf("DepositIntoAccount: %w", err)
	}

	logging.FromContext(ctx).Info("deposit stored",
		"deposit_signature", d.Signature,
		"amount", d.Amount.String(),
	)
	return d, nil
}

func (s *Service) depositIntoAccount(ctx context.Context, in Input) (*domain.DepositRequest, error) {
	if err := s.ibans.Validate(in.IBAN, validation.Domestic); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errInvalidDepositIBAN)
	}
	amount, err := validation.ValidateDepositAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	d := domain.NewDepositRequest(in.IBAN, amount, s.now())
	if err := s.deposits.Append(ctx, d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DepositFromFile reads a {"IBAN": ..., "AMOUNT": ...} object from path and
// deposits it.
func (s *Service) DepositFromFile(ctx context.Context, path string) (*domain.DepositRequest, error) {
	in, err := readInputFile(path)
	if err != nil {
		metrics.RecordOperation(operationDeposit, err)
		logging.FromContext(ctx).Warn("deposit input rejected", "path", path, "error", err)
		return nil, fmt.Errorf("DepositFromFile: %w", err)
	}

	d, err := s.DepositIntoAccount(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("DepositFromFile: %w", err)
	}
	return d, nil
}

func readInputFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Input{}, fmt.Errorf("%s: %w", path, ErrInputNotFound)
	}
	if err != nil {
		return Input{}, fmt.Errorf("read %s: %w", path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Input{}, fmt.Errorf("%s: %v: %w", path, err, ErrInputNotJSON)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return Input{}, fmt.Errorf("%s: top level is not an object: %w", path, ErrInputStructure)
	}
	iban, ok := obj["IBAN"].(string)
	if !ok {
		return Input{}, fmt.Errorf("%s: IBAN missing or not a string: %w", path, ErrInputStructure)
	}
	amount, ok := obj["AMOUNT"].(string)
	if !ok {
		return Input{}, fmt.Errorf("%s: AMOUNT missing or not a string: %w", path, ErrInputStructure)
	}
	return Input{IBAN: iban, Amount: amount}, nil
}
