// Package tier defines the closed set of account products and the limits
// each one carries: the deposit ceiling enforced by validation and the
// credit limit of the tier's card line.
package tier

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/model"
)

// Tier is an account product class.
type Tier int

const (
	Unknown Tier = iota
	Standard
	Premium
	Diamond
)

// Deposit ceilings cap both a single deposit and the account's lifetime
// deposited total.
var (
	standardDepositCeiling = decimal.NewFromInt(1000)
	premiumDepositCeiling  = decimal.NewFromInt(50000)
	diamondDepositCeiling  = decimal.NewFromInt(80000)

	standardCardLimit = decimal.NewFromInt(1500)
	premiumCardLimit  = decimal.NewFromInt(15000)
	diamondCardLimit  = decimal.NewFromInt(30000)
)

// Parse maps a tier name to its Tier, case-insensitively.
func Parse(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, true
	case "premium":
		return Premium, true
	case "diamond":
		return Diamond, true
	}
	return Unknown, false
}

func (t Tier) String() string {
	switch t {
	case Standard:
		return "standard"
	case Premium:
		return "premium"
	case Diamond:
		return "diamond"
	}
	return "unknown"
}

// DepositCeiling returns the tier's maximum deposit value, which also caps
// the cumulative deposited total. The second return is false for Unknown.
func (t Tier) DepositCeiling() (decimal.Decimal, bool) {
	switch t {
	case Standard:
		return standardDepositCeiling, true
	case Premium:
		return premiumDepositCeiling, true
	case Diamond:
		return diamondDepositCeiling, true
	}
	return decimal.Zero, false
}

// CardLimit returns the credit limit of the tier's card line. The second
// return is false for Unknown, which has no card product.
func (t Tier) CardLimit() (decimal.Decimal, bool) {
	switch t {
	case Standard:
		return standardCardLimit, true
	case Premium:
		return premiumCardLimit, true
	case Diamond:
		return diamondCardLimit, true
	}
	return decimal.Zero, false
}

// NewCard builds a card of the tier's card line. It reports false when the
// tier has no card product.
func (t Tier) NewCard(label, number string) (model.Card, bool) {
	limit, ok := t.CardLimit()
	if !ok {
		return model.Card{}, false
	}
	return model.Card{
		ID:       uuid.New(),
		Label:    label,
		Number:   number,
		Product:  t.String(),
		MaxLimit: limit,
	}, true
}
