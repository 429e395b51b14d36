package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/metrics"
	"github.com/josh-kwaku/transfer-ledger/internal/validation"
)

const (
	operationStoreBalance = "store_balance"
	balanceDateLayout     = "2006-01-02"
)

type transactionStore interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
}

type balanceStore interface {
	Append(ctx context.Context, balance domain.AccountBalance) error
}

type Service struct {
	transactions transactionStore
	balances     balanceStore
	ibans        *validation.IBANValidator
	now          func() time.Time
}

func NewService(transactions transactionStore, balances balanceStore, ibans *validation.IBANValidator, now func() time.Time) *Service {
	if ibans == nil {
		ibans = validation.NewIBANValidator(validation.DefaultCountryPrefix)
	}
	if now == nil {
		now = time.Now
	}
	return &Service{transactions: transactions, balances: balances, ibans: ibans, now: now}
}

// AggregateMovements sums the amounts of every transaction booked against
// iban. It fails with domain.ErrTransactionsNotFound when there is none.
func (s *Service) AggregateMovements(ctx context.Context, iban string) (domain.Money, error) {
	if err := s.ibans.Validate(iban, validation.Domestic); err != nil {
		return domain.Money{}, fmt.Errorf("AggregateMovements: %w", err)
	}

	txs, err := s.transactions.Load(ctx)
	if err != nil {
		return domain.Money{}, fmt.Errorf("AggregateMovements: %w", err)
	}

	total := decimal.Zero
	found := false
	for _, tx := range txs {
		if tx.IBAN != iban {
			continue
		}
		found = true
		total = total.Add(tx.Amount.Decimal)
	}
	if !found {
		return domain.Money{}, fmt.Errorf("AggregateMovements: %s: %w", iban, domain.ErrTransactionsNotFound)
	}
	return domain.NewMoney(total), nil
}

// StoreNewBalance computes the balance of iban and appends it, stamped with
// today's date, to the balances store.
func (s *Service) StoreNewBalance(ctx context.Context, iban string) (*domain.AccountBalance, error) {
	b, err := s.storeNewBalance(ctx, iban)
	metrics.RecordOperation(operationStoreBalance, err)
	if err != nil {
		logging.FromContext(ctx).Warn("balance not stored", "kind", domain.KindOf(err), "error", err)
		return nil, fmt.Errorf("StoreNewBalance: %w", err)
	}

	logging.FromContext(ctx).Info("balance stored", "amount", b.Amount.String(), "date", b.Date)
	return b, nil
}

func (s *Service) storeNewBalance(ctx context.Context, iban string) (*domain.AccountBalance, error) {
	total, err := s.AggregateMovements(ctx, iban)
	if err != nil {
		return nil, err
	}

	b := domain.AccountBalance{
		IBAN:   iban,
		Amount: total,
		Date:   s.now().Format(balanceDateLayout),
	}
	if err := s.balances.Append(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}
