package validation

import (
	"fmt"
	"strings"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

type IBANProfile int

const (
	// Domestic requires the configured country prefix, 24 characters and
	// digits after the prefix.
	Domestic IBANProfile = iota
	// Generic accepts 15 to 34 alphanumeric characters.
	Generic
)

const (
	DefaultCountryPrefix = "ES"
	domesticIBANLength   = 24
	genericIBANMinLength = 15
	genericIBANMaxLength = 34
)

type IBANValidator struct {
	countryPrefix string
}

func NewIBANValidator(countryPrefix string) *IBANValidator {
	if countryPrefix == "" {
		countryPrefix = DefaultCountryPrefix
	}
	return &IBANValidator{countryPrefix: countryPrefix}
}

func (v *IBANValidator) Validate(value string, profile IBANProfile) error {
	switch profile {
	case Generic:
		if n := len(value); n < genericIBANMinLength || n > genericIBANMaxLength {
			return fmt.Errorf("iban length %d outside %d..%d: %w", n, genericIBANMinLength, genericIBANMaxLength, domain.ErrInvalidIBAN)
		}
		if !isAlnum(value) {
			return fmt.Errorf("iban has non alphanumeric characters: %w", domain.ErrInvalidIBAN)
		}
		return nil
	default:
		if !strings.HasPrefix(value, v.countryPrefix) {
			return fmt.Errorf("iban must start with %s: %w", v.countryPrefix, domain.ErrInvalidIBAN)
		}
		if len(value) != domesticIBANLength {
			return fmt.Errorf("iban length %d, want %d: %w", len(value), domesticIBANLength, domain.ErrInvalidIBAN)
		}
		if !isDigits(value[len(v.countryPrefix):]) {
			return fmt.Errorf("iban has non digit characters after prefix: %w", domain.ErrInvalidIBAN)
		}
		return nil
	}
}

// ValidateReceiver applies the receiver rule: IMMEDIATE transfers only need a
// non-blank value, every other type uses the domestic shape.
func (v *IBANValidator) ValidateReceiver(value string, transferType domain.TransferType) error {
	if transferType == domain.TransferTypeImmediate {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("receiver is blank: %w", domain.ErrInvalidIBAN)
		}
		return nil
	}
	return v.Validate(value, Domestic)
}

var defaultIBANValidator = NewIBANValidator(DefaultCountryPrefix)

func ValidateIBAN(value string, profile IBANProfile) error {
	return defaultIBANValidator.Validate(value, profile)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return s != ""
}
