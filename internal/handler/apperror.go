package handler

import (
	"net/http"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrMethodNotAllowed = &AppError{http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvalidIBAN     = &AppError{http.StatusBadRequest, "INVALID_IBAN", "Not valid IBANS"}
	ErrInvalidConcept  = &AppError{http.StatusBadRequest, "INVALID_CONCEPT", "Concept is not valid"}
	ErrInvalidType     = &AppError{http.StatusBadRequest, "INVALID_TRANSFER_TYPE", "Transfer type is not valid"}
	ErrInvalidDate     = &AppError{http.StatusBadRequest, "INVALID_DATE", "Transfer date is not valid"}
	ErrInvalidAmount   = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount is not valid"}
	ErrInvalidCurrency = &AppError{http.StatusBadRequest, "INVALID_CURRENCY", "Invalid currency format"}
	ErrInvalidInput    = &AppError{http.StatusBadRequest, "INVALID_INPUT", "Input data is not valid"}

	ErrDuplicateTransfer    = &AppError{http.StatusConflict, "DUPLICATE_TRANSFER", "Transfer already stored"}
	ErrTransactionsNotFound = &AppError{http.StatusNotFound, "TRANSACTIONS_NOT_FOUND", "Transaction not stored"}
	ErrStoreUnavailable     = &AppError{http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Store not found"}
)

var appErrorsByKind = map[domain.ErrorKind]*AppError{
	domain.KindIBAN:                 ErrInvalidIBAN,
	domain.KindConcept:              ErrInvalidConcept,
	domain.KindType:                 ErrInvalidType,
	domain.KindDate:                 ErrInvalidDate,
	domain.KindAmount:               ErrInvalidAmount,
	domain.KindCurrency:             ErrInvalidCurrency,
	domain.KindInput:                ErrInvalidInput,
	domain.KindDuplicateTransfer:    ErrDuplicateTransfer,
	domain.KindTransactionsNotFound: ErrTransactionsNotFound,
	domain.KindStoreMissing:         ErrStoreUnavailable,
}
