package core

import (
	"errors"
	"fmt"
)

// Transaction type values with aggregation-specific behavior. Other values
// are accepted on input but excluded from type-specific aggregations.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Transaction is a single financial record. Fields are best-effort: the
// engine never rejects a record, so a missing or malformed date/amount
// degrades at query time instead of failing at load time.
type Transaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      Amount `json:"amount"`
	Type        string `json:"type"`
	Merchant    string `json:"merchant"`
	Description string `json:"description"`
}

var (
	ErrInvalidMonth = errors.New("month out of range")
	ErrInvalidDay   = errors.New("day out of range")
)

// FormatTransaction renders a one-line human readable form of tx. It is a
// plain function on purpose: records keep their flat shape and presentation
// stays out of the data model.
func FormatTransaction(tx Transaction) string {
	return fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		tx.ID, tx.Date, string(tx.Amount), tx.Type, tx.Merchant, tx.Description)
}
