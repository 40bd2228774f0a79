// Package wallet tracks the cards issued to an account, the credit limit
// they grant and the invoice (fatura) currently owed against it.
package wallet

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/model"
)

// ErrNoCard is returned when a limit is queried before any card was issued.
var ErrNoCard = errors.New("no card issued")

// Wallet is an account's card collection plus limit bookkeeping. It is not
// safe for concurrent use; callers serialize access per account.
type Wallet struct {
	cards        []model.Card
	usedLimit    decimal.Decimal
	autoDebit    bool
	autoDebitDay int
}

// New returns an empty wallet.
func New() *Wallet {
	return &Wallet{}
}

// AddCard appends c in issue order. Adding a card already held is a no-op.
func (w *Wallet) AddCard(c model.Card) {
	for _, held := range w.cards {
		if held.ID == c.ID {
			return
		}
	}
	w.cards = append(w.cards, c)
}

// Cards returns a copy of the held cards in issue order.
func (w *Wallet) Cards() []model.Card {
	out := make([]model.Card, len(w.cards))
	copy(out, w.cards)
	return out
}

// DecreaseAvailableLimit registers credit use: the invoice grows by amount.
func (w *Wallet) DecreaseAvailableLimit(amount decimal.Decimal) {
	w.usedLimit = w.usedLimit.Add(amount)
}

// IncreaseAvailableLimit registers an invoice payment: the amount owed
// shrinks, never below zero.
func (w *Wallet) IncreaseAvailableLimit(amount decimal.Decimal) {
	w.usedLimit = w.usedLimit.Sub(amount)
	if w.usedLimit.IsNegative() {
		w.usedLimit = decimal.Zero
	}
}

// Invoice returns the fatura: the amount currently owed on the cards.
func (w *Wallet) Invoice() decimal.Decimal {
	return w.usedLimit
}

// MaxLimit returns the highest credit limit among the held cards.
func (w *Wallet) MaxLimit() (decimal.Decimal, error) {
	if len(w.cards) == 0 {
		return decimal.Zero, ErrNoCard
	}
	max := w.cards[0].MaxLimit
	for _, c := range w.cards[1:] {
		if c.MaxLimit.GreaterThan(max) {
			max = c.MaxLimit
		}
	}
	return max, nil
}

// RemainingLimit returns how much credit is still available.
func (w *Wallet) RemainingLimit() (decimal.Decimal, error) {
	max, err := w.MaxLimit()
	if err != nil {
		return decimal.Zero, err
	}
	return max.Sub(w.usedLimit), nil
}

// SetAutoDebit configures invoice auto-debit. Day zero, or an explicit
// disable, always turns auto-debit off.
func (w *Wallet) SetAutoDebit(enabled bool, day int) {
	if enabled && day > 0 {
		w.autoDebit = true
		w.autoDebitDay = day
		return
	}
	w.autoDebit = false
	w.autoDebitDay = 0
}

// AutoDebit returns whether auto-debit is on and the day of month it runs.
func (w *Wallet) AutoDebit() (bool, int) {
	return w.autoDebit, w.autoDebitDay
}
