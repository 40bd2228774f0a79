package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card is a credit card issued into an account's wallet. Product names the
// tier card line it belongs to; MaxLimit is the credit limit the card grants.
type Card struct {
	ID       uuid.UUID
	Label    string
	Number   string
	Product  string
	MaxLimit decimal.Decimal
}
