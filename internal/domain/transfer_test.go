package domain

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexCode = regexp.MustCompile(`^[0-9a-f]{32}$`)

func sampleFields() TransferFields {
	return TransferFields{
		FromIBAN:     "ES9121000418450200051332",
		ToIBAN:       "ES7921000813610123456789",
		TransferType: TransferTypeOrdinary,
		Concept:      "monthly rent payment",
		Date:         "20/10/2026",
		Amount:       NewMoney(decimal.RequireFromString("1250.50")),
	}
}

func TestNewTransferRequest(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 15, 30, 123456000, time.UTC)
	tr := NewTransferRequest(sampleFields(), now)

	assert.Equal(t, 1791969330.123456, tr.TimeStamp)
	assert.Regexp(t, hexCode, tr.TransferCode)
	assert.True(t, tr.Verify())
	assert.Equal(t,
		"Transfer:{from_iban:ES9121000418450200051332,to_iban:ES7921000813610123456789,"+
			"transfer_type:ORDINARY,transfer_concept:monthly rent payment,transfer_date:20/10/2026,"+
			"transfer_amount:1250.50,time_stamp:1791969330.123456}",
		tr.CanonicalString())
}

func TestTransferCodeIsDeterministic(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

	a := NewTransferRequest(sampleFields(), now)
	b := NewTransferRequest(sampleFields(), now)
	assert.Equal(t, a.TransferCode, b.TransferCode)

	later := NewTransferRequest(sampleFields(), now.Add(time.Microsecond))
	assert.NotEqual(t, a.TransferCode, later.TransferCode)

	f := sampleFields()
	f.Concept = "monthly rent payment!"
	changed := NewTransferRequest(f, now)
	assert.NotEqual(t, a.TransferCode, changed.TransferCode)
}

func TestTransferRequestJSONRoundTrip(t *testing.T) {
	tr := NewTransferRequest(sampleFields(), time.Date(2026, time.October, 14, 9, 15, 30, 987654000, time.UTC))

	b, err := json.Marshal(tr)
	require.NoError(t, err)
	for _, field := range []string{
		`"from_iban"`, `"to_iban"`, `"transfer_type"`, `"transfer_amount":1250.50`,
		`"transfer_concept"`, `"transfer_date"`, `"time_stamp"`, `"transfer_code"`,
	} {
		assert.True(t, strings.Contains(string(b), field), "missing %s in %s", field, b)
	}

	var decoded TransferRequest
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, tr.TransferCode, decoded.ComputeTransferCode())
	assert.True(t, decoded.Verify())
}

func TestVerifyDetectsTampering(t *testing.T) {
	tr := NewTransferRequest(sampleFields(), time.Now())
	tr.Amount = NewMoney(decimal.RequireFromString("9999.99"))
	assert.False(t, tr.Verify())
}

func TestTransferTypeIsValid(t *testing.T) {
	assert.True(t, TransferTypeOrdinary.IsValid())
	assert.True(t, TransferTypeUrgent.IsValid())
	assert.True(t, TransferTypeImmediate.IsValid())
	assert.False(t, TransferType("immediate").IsValid())
	assert.False(t, TransferType("").IsValid())
}

func TestDepositSignature(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	d := NewDepositRequest("ES9121000418450200051332", NewMoney(decimal.RequireFromString("100")), now)

	assert.Equal(t, DepositAlgorithm, d.Alg)
	assert.Equal(t, DepositType, d.Type)
	assert.Regexp(t, `^[0-9a-f]{64}$`, d.Signature)
	assert.Equal(t, d.Signature, d.ComputeSignature())

	other := NewDepositRequest("ES9121000418450200051332", NewMoney(decimal.RequireFromString("100")), now.Add(time.Second))
	assert.NotEqual(t, d.Signature, other.Signature)
}

func TestMoneyJSON(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"12.5"`), &m))
	assert.Equal(t, "12.50", m.String())

	require.NoError(t, json.Unmarshal([]byte(`-150.25`), &m))
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "-150.25", string(b))
}
