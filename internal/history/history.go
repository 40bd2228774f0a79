// Package history stores an account's transactions in reverse chronological
// order together with the boleto invoices it has seen.
package history

import (
	"errors"

	"github.com/contavel-dev/contavel/internal/model"
)

// ErrDuplicateTransaction is returned when a transaction is recorded twice.
var ErrDuplicateTransaction = errors.New("transaction already recorded")

// History is an ordered, duplicate-rejecting store of transactions plus a
// set of invoices. Not safe for concurrent use.
type History struct {
	transactions []*model.Transaction
	invoices     []*model.Invoice
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// AddTransaction inserts t keeping the list ordered by descending effective
// date (most recent first). A newcomer with an effective date equal to an
// existing entry is placed ahead of it. Re-adding a recorded transaction
// fails with ErrDuplicateTransaction.
func (h *History) AddTransaction(t *model.Transaction) error {
	for _, held := range h.transactions {
		if held.ID == t.ID {
			return ErrDuplicateTransaction
		}
	}

	at := len(h.transactions)
	for i, held := range h.transactions {
		if !held.EffectiveDate().After(t.EffectiveDate()) {
			at = i
			break
		}
	}

	h.transactions = append(h.transactions, nil)
	copy(h.transactions[at+1:], h.transactions[at:])
	h.transactions[at] = t
	return nil
}

// AddInvoice records i. Adding the same invoice again is a silent no-op.
func (h *History) AddInvoice(i *model.Invoice) {
	for _, held := range h.invoices {
		if held.ID == i.ID {
			return
		}
	}
	h.invoices = append(h.invoices, i)
}

// Transactions returns the recorded transactions, most recent first.
// Never nil.
func (h *History) Transactions() []*model.Transaction {
	out := make([]*model.Transaction, 0, len(h.transactions))
	return append(out, h.transactions...)
}

// Invoices returns the recorded invoices in insertion order. Never nil.
func (h *History) Invoices() []*model.Invoice {
	out := make([]*model.Invoice, 0, len(h.invoices))
	return append(out, h.invoices...)
}
