package domain

import "errors"

type ErrorKind string

const (
	KindIBAN     ErrorKind = "IBAN"
	KindConcept  ErrorKind = "CONCEPT"
	KindType     ErrorKind = "TYPE"
	KindDate     ErrorKind = "DATE"
	KindAmount   ErrorKind = "AMOUNT"
	KindCurrency ErrorKind = "CURRENCY"
	KindInput    ErrorKind = "INPUT"

	KindStoreMissing         ErrorKind = "STORE_MISSING"
	KindDuplicateTransfer    ErrorKind = "DUPLICATE_TRANSFER"
	KindTransactionsNotFound ErrorKind = "TRANSACTIONS_NOT_FOUND"
)

type ErrorFamily string

const (
	FamilyValidation  ErrorFamily = "validation"
	FamilyPersistence ErrorFamily = "persistence"
)

// Error is the single error type raised by validation and persistence.
// Two errors match under errors.Is when their kinds are equal, so the
// sentinels below can be used regardless of the message carried.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Family() ErrorFamily {
	switch e.Kind {
	case KindStoreMissing, KindDuplicateTransfer, KindTransactionsNotFound:
		return FamilyPersistence
	default:
		return FamilyValidation
	}
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrInvalidIBAN     = NewError(KindIBAN, "Not valid IBANS")
	ErrInvalidConcept  = NewError(KindConcept, "Concept is not valid")
	ErrInvalidType     = NewError(KindType, "Transfer type is not valid")
	ErrInvalidDate     = NewError(KindDate, "Transfer date is not valid")
	ErrInvalidAmount   = NewError(KindAmount, "Amount is not valid")
	ErrInvalidCurrency = NewError(KindCurrency, "Invalid currency format")
	ErrInvalidInput    = NewError(KindInput, "Input data is not valid")

	ErrStoreMissing         = NewError(KindStoreMissing, "Store not found")
	ErrDuplicateTransfer    = NewError(KindDuplicateTransfer, "Output JSON file already has that transfer")
	ErrTransactionsNotFound = NewError(KindTransactionsNotFound, "Transaction not stored")
)

// KindOf returns the kind carried by err, or "" when err is not a domain error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Family() == FamilyValidation
}

func IsPersistence(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Family() == FamilyPersistence
}

// MessageOf returns the human-readable message of the domain error in err's
// chain, falling back to err.Error().
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
