package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/dates"
)

// Invoice is a payable boleto: an amount due by a date, accruing a fixed
// fee for every day paid late. Origin and Destination are account numbers,
// bookkeeping only.
type Invoice struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	DueDate       dates.Date
	LateFeePerDay decimal.Decimal
	Origin        string
	Destination   string
}

// AmountDueOn returns the invoice amount plus the late fee accrued by the
// given day. Payments on or before the due date carry no fee.
func (i *Invoice) AmountDueOn(day dates.Date) decimal.Decimal {
	lateDays := -dates.Interval(i.DueDate, day)
	if lateDays < 0 {
		lateDays = 0
	}
	return i.Amount.Add(i.LateFeePerDay.Mul(decimal.NewFromInt(int64(lateDays))))
}
