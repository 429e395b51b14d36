package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

const depositCurrencyPrefix = "EUR "

// ValidateDepositAmount parses an amount of the form "EUR 123.45".
func ValidateDepositAmount(value string) (domain.Money, error) {
	raw, ok := strings.CutPrefix(value, depositCurrencyPrefix)
	if !ok {
		return domain.Money{}, fmt.Errorf("deposit amount %q: %w", value, domain.ErrInvalidCurrency)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return domain.Money{}, fmt.Errorf("deposit amount %q: %v: %w", raw, err, domain.NewError(domain.KindAmount, "Invalid amount format"))
	}

	switch {
	case !d.IsPositive():
		return domain.Money{}, fmt.Errorf("deposit amount %s: %w", d, domain.NewError(domain.KindAmount, "Deposit amount must be greater than zero"))
	case d.LessThan(MinTransferAmount):
		return domain.Money{}, fmt.Errorf("deposit amount %s: %w", d, domain.NewError(domain.KindAmount, "Amount must be >= 10.00"))
	case d.GreaterThan(MaxTransferAmount):
		return domain.Money{}, fmt.Errorf("deposit amount %s: %w", d, domain.NewError(domain.KindAmount, "Amount must be <= 10000.00"))
	case !d.Equal(d.Round(2)):
		return domain.Money{}, fmt.Errorf("deposit amount %s: %w", d, domain.NewError(domain.KindAmount, "Amount format invalid, must have two decimal places"))
	}
	return domain.NewMoney(d), nil
}
