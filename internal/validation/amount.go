package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

var (
	MinTransferAmount = decimal.RequireFromString("10.00")
	MaxTransferAmount = decimal.RequireFromString("10000.00")
)

// ValidateAmount accepts a string (commas are treated as thousands
// separators and dropped) or a number (rendered with two fractional digits)
// and returns the amount when it has the form NNN.NN and lies within
// [MinTransferAmount, MaxTransferAmount].
func ValidateAmount(value any) (domain.Money, error) {
	normalized, err := normalizeAmount(value)
	if err != nil {
		return domain.Money{}, err
	}

	if strings.Count(normalized, ".") != 1 {
		return domain.Money{}, fmt.Errorf("amount %q must have one decimal point: %w", normalized, domain.ErrInvalidAmount)
	}
	intPart, fracPart, _ := strings.Cut(normalized, ".")
	if !isDigits(intPart) || !isDigits(fracPart) || len(fracPart) != 2 {
		return domain.Money{}, fmt.Errorf("amount %q must have the form NNN.NN: %w", normalized, domain.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return domain.Money{}, fmt.Errorf("amount %q: %v: %w", normalized, err, domain.ErrInvalidAmount)
	}
	if d.LessThan(MinTransferAmount) || d.GreaterThan(MaxTransferAmount) {
		return domain.Money{}, fmt.Errorf("amount %s outside %s..%s: %w", d.StringFixed(2),
			MinTransferAmount.StringFixed(2), MaxTransferAmount.StringFixed(2), domain.ErrInvalidAmount)
	}
	return domain.NewMoney(d), nil
}

func normalizeAmount(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.ReplaceAll(v, ",", ""), nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return "", fmt.Errorf("amount %q: %w", v, domain.ErrInvalidAmount)
		}
		return d.StringFixed(2), nil
	case float64:
		return decimal.NewFromFloat(v).StringFixed(2), nil
	case int:
		return decimal.NewFromInt(int64(v)).StringFixed(2), nil
	case int64:
		return decimal.NewFromInt(v).StringFixed(2), nil
	case decimal.Decimal:
		return v.StringFixed(2), nil
	case domain.Money:
		return v.StringFixed(2), nil
	default:
		return "", fmt.Errorf("amount of type %T: %w", value, domain.ErrInvalidAmount)
	}
}
