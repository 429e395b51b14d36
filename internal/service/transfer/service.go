package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/metrics"
	"github.com/josh-kwaku/transfer-ledger/internal/repository"
	"github.com/josh-kwaku/transfer-ledger/internal/validation"
)

const operationProcessTransfer = "process_transfer"

type ledger interface {
	Load(ctx context.Context) ([]domain.TransferRequest, error)
	AppendAndSave(ctx context.Context, record domain.TransferRequest) error
}

// Input is a raw transfer submission. Amount may be a string or a number.
type Input struct {
	FromIBAN     string
	ToIBAN       string
	Concept      string
	TransferType string
	Date         string
	Amount       any
}

type Result struct {
	Message string
	Record  domain.TransferRequest
}

type Service struct {
	ledger ledger
	ibans  *validation.IBANValidator
	now    func() time.Time
}

func NewService(l ledger, ibans *validation.IBANValidator, now func() time.Time) *Service {
	if ibans == nil {
		ibans = validation.NewIBANValidator(validation.DefaultCountryPrefix)
	}
	if now == nil {
		now = time.Now
	}
	return &Service{ledger: l, ibans: ibans, now: now}
}

// ProcessTransfer validates in, derives the transfer record and stores it
// unless a record with the same code is already in the ledger. Validation
// stops at the first failing field.
func (s *Service) ProcessTransfer(ctx context.Context, in Input) (*Result, error) {
	res, err := s.processTransfer(ctx, in)
	metrics.RecordOperation(operationProcessTransfer, err)
	if err != nil {
		logging.FromContext(ctx).Warn("transfer rejected",
			"kind", domain.KindOf(err),
			"transfer_type", in.TransferType,
			"error", err,
		)
		return nil, fmt.Errorf("ProcessTransfer: %w", err)
	}

	logging.FromContext(ctx).Info("transfer stored",
		"transfer_code", res.Record.TransferCode,
		"transfer_type", res.Record.TransferType,
		"amount", res.Record.Amount.String(),
	)
	return res, nil
}

func (s *Service) processTransfer(ctx context.Context, in Input) (*Result, error) {
	now := s.now()

	fields, err := s.validate(in, now)
	if err != nil {
		return nil, err
	}
	record := domain.NewTransferRequest(fields, now)

	records, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, err
	}
	if repository.ContainsCode(records, record.TransferCode) {
		return nil, fmt.Errorf("%s: %w", record.TransferCode, domain.ErrDuplicateTransfer)
	}
	if err := s.ledger.AppendAndSave(ctx, record); err != nil {
		return nil, err
	}

	return &Result{
		Message: "Transfer Code: " + record.TransferCode,
		Record:  record,
	}, nil
}

func (s *Service) validate(in Input, now time.Time) (domain.TransferFields, error) {
	if err := s.ibans.Validate(in.FromIBAN, validation.Domestic); err != nil {
		return domain.TransferFields{}, fmt.Errorf("sender: %w", err)
	}
	// The type has not been validated yet; an unknown value gets the
	// domestic receiver rule and fails later on the type check.
	if err := s.ibans.ValidateReceiver(in.ToIBAN, domain.TransferType(in.TransferType)); err != nil {
		return domain.TransferFields{}, fmt.Errorf("receiver: %w", err)
	}
	if err := validation.ValidateConcept(in.Concept); err != nil {
		return domain.TransferFields{}, err
	}
	transferType, err := validation.ValidateType(in.TransferType)
	if err != nil {
		return domain.TransferFields{}, err
	}
	if err := validation.ValidateDate(in.Date, now); err != nil {
		return domain.TransferFields{}, err
	}
	amount, err := validation.ValidateAmount(in.Amount)
	if err != nil {
		return domain.TransferFields{}, err
	}

	return domain.TransferFields{
		FromIBAN:     in.FromIBAN,
		ToIBAN:       in.ToIBAN,
		TransferType: transferType,
		Concept:      in.Concept,
		Date:         in.Date,
		Amount:       amount,
	}, nil
}

// ListTransfers returns the ledger in insertion order.
func (s *Service) ListTransfers(ctx context.Context) ([]domain.TransferRequest, error) {
	records, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListTransfers: %w", err)
	}
	return records, nil
}
