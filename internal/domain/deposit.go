package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	DepositAlgorithm = "SHA-256"
	DepositType      = "DEPOSIT"
)

type DepositRequest struct {
	Alg       string  `json:"alg"`
	Type      string  `json:"type"`
	ToIBAN    string  `json:"to_iban"`
	Amount    Money   `json:"deposit_amount"`
	Date      float64 `json:"deposit_date"`
	Signature string  `json:"deposit_signature"`
}

func NewDepositRequest(toIBAN string, amount Money, now time.Time) DepositRequest {
	d := DepositRequest{
		Alg:    DepositAlgorithm,
		Type:   DepositType,
		ToIBAN: toIBAN,
		Amount: amount,
		Date:   EpochSeconds(now),
	}
	d.Signature = d.ComputeSignature()
	return d
}

func (d DepositRequest) signatureString() string {
	return "{alg:" + d.Alg + ",typ:" + d.Type + ",iban:" + d.ToIBAN +
		",amount:" + d.Amount.String() + ",deposit_date:" + FormatEpoch(d.Date) + "}"
}

func (d DepositRequest) ComputeSignature() string {
	sum := sha256.Sum256([]byte(d.signatureString()))
	return hex.EncodeToString(sum[:])
}
