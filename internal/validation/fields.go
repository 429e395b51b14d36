package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

const (
	conceptMinWords  = 2
	conceptMinLength = 10
	conceptMaxLength = 30

	dateLayout  = "02/01/2006"
	minDateYear = 2025
	maxDateYear = 2051
)

func ValidateConcept(text string) error {
	if words := len(strings.Fields(text)); words < conceptMinWords {
		return fmt.Errorf("concept has %d words, want at least %d: %w", words, conceptMinWords, domain.ErrInvalidConcept)
	}
	if n := utf8.RuneCountInString(text); n < conceptMinLength || n > conceptMaxLength {
		return fmt.Errorf("concept length %d outside %d..%d: %w", n, conceptMinLength, conceptMaxLength, domain.ErrInvalidConcept)
	}
	return nil
}

func ValidateType(value string) (domain.TransferType, error) {
	t := domain.TransferType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("transfer type %q: %w", value, domain.ErrInvalidType)
	}
	return t, nil
}

// ValidateDate checks a DD/MM/YYYY date against the calendar, the accepted
// year window and the current date taken from now.
func ValidateDate(text string, now time.Time) error {
	if len(text) != len(dateLayout) || text[2] != '/' || text[5] != '/' ||
		!isDigits(text[:2]) || !isDigits(text[3:5]) || !isDigits(text[6:]) {
		return fmt.Errorf("date %q is not DD/MM/YYYY: %w", text, domain.ErrInvalidDate)
	}

	parsed, err := time.ParseInLocation(dateLayout, text, now.Location())
	if err != nil {
		return fmt.Errorf("date %q: %v: %w", text, err, domain.ErrInvalidDate)
	}

	day, month, year := parsed.Day(), int(parsed.Month()), parsed.Year()
	if day < 1 || day > 31 || month < 1 || month > 12 || year < minDateYear || year > maxDateYear {
		return fmt.Errorf("date %q outside accepted range: %w", text, domain.ErrInvalidDate)
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return fmt.Errorf("date %q is before %s: %w", text, today.Format(dateLayout), domain.ErrInvalidDate)
	}
	return nil
}
