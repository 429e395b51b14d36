package domain

// Transaction is one movement read from the transactions store. Other fields
// present in the stored objects are ignored.
type Transaction struct {
	IBAN   string `json:"IBAN"`
	Amount Money  `json:"amount"`
}

type AccountBalance struct {
	IBAN   string `json:"iban"`
	Amount Money  `json:"amount"`
	Date   string `json:"date"`
}
