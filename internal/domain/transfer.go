package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

type TransferType string

const (
	TransferTypeOrdinary  TransferType = "ORDINARY"
	TransferTypeUrgent    TransferType = "URGENT"
	TransferTypeImmediate TransferType = "IMMEDIATE"
)

func (t TransferType) IsValid() bool {
	switch t {
	case TransferTypeOrdinary, TransferTypeUrgent, TransferTypeImmediate:
		return true
	}
	return false
}

// TransferRequest is the persisted transfer record. Values are built once by
// NewTransferRequest and never modified afterwards.
type TransferRequest struct {
	FromIBAN     string       `json:"from_iban"`
	ToIBAN       string       `json:"to_iban"`
	TransferType TransferType `json:"transfer_type"`
	Amount       Money        `json:"transfer_amount"`
	Concept      string       `json:"transfer_concept"`
	Date         string       `json:"transfer_date"`
	TimeStamp    float64      `json:"time_stamp"`
	TransferCode string       `json:"transfer_code"`
}

type TransferFields struct {
	FromIBAN     string
	ToIBAN       string
	TransferType TransferType
	Concept      string
	Date         string
	Amount       Money
}

func NewTransferRequest(f TransferFields, now time.Time) TransferRequest {
	t := TransferRequest{
		FromIBAN:     f.FromIBAN,
		ToIBAN:       f.ToIBAN,
		TransferType: f.TransferType,
		Amount:       f.Amount,
		Concept:      f.Concept,
		Date:         f.Date,
		TimeStamp:    EpochSeconds(now),
	}
	t.TransferCode = t.ComputeTransferCode()
	return t
}

// CanonicalString is the field-tagged serialisation the transfer code is
// computed from. Field order is fixed and includes the timestamp.
func (t TransferRequest) CanonicalString() string {
	var b strings.Builder
	b.WriteString("Transfer:{from_iban:")
	b.WriteString(t.FromIBAN)
	b.WriteString(",to_iban:")
	b.WriteString(t.ToIBAN)
	b.WriteString(",transfer_type:")
	b.WriteString(string(t.TransferType))
	b.WriteString(",transfer_concept:")
	b.WriteString(t.Concept)
	b.WriteString(",transfer_date:")
	b.WriteString(t.Date)
	b.WriteString(",transfer_amount:")
	b.WriteString(t.Amount.String())
	b.WriteString(",time_stamp:")
	b.WriteString(FormatEpoch(t.TimeStamp))
	b.WriteString("}")
	return b.String()
}

func (t TransferRequest) ComputeTransferCode() string {
	sum := md5.Sum([]byte(t.CanonicalString()))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether the stored transfer code matches the record's fields.
func (t TransferRequest) Verify() bool {
	return t.TransferCode == t.ComputeTransferCode()
}

func EpochSeconds(t time.Time) float64 {
	return float64(t.UTC().UnixMicro()) / 1e6
}

func FormatEpoch(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}
