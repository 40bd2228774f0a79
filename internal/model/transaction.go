// Package model holds the plain values shared across the ledger:
// transactions, boleto invoices and cards.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/dates"
)

// Transaction is a money movement between two accounts. Origin and
// Destination carry account numbers for bookkeeping only; the accounts
// themselves are not owned by the record.
type Transaction struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	IssueDate     dates.Date
	ScheduledDate *dates.Date // nil for immediate transactions
	Origin        string
	Destination   string
	Description   string
}

// EffectiveDate is the date used for history ordering: the scheduled date
// when present, otherwise the issue date.
func (t *Transaction) EffectiveDate() dates.Date {
	if t.ScheduledDate != nil {
		return *t.ScheduledDate
	}
	return t.IssueDate
}

// Scheduled reports whether the transaction carries a future settlement date.
func (t *Transaction) Scheduled() bool {
	return t.ScheduledDate != nil
}
