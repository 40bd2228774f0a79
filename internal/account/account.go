// Package account implements the single-account ledger aggregate: balance,
// loan, saved funds, the card wallet and the transaction history. Every
// mutation assumes its inputs were validated upstream; no operation rolls
// back partial state. Accounts are not safe for concurrent use; callers
// serialize access.
package account

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/dates"
	"github.com/contavel-dev/contavel/internal/history"
	"github.com/contavel-dev/contavel/internal/model"
	"github.com/contavel-dev/contavel/internal/tier"
	"github.com/contavel-dev/contavel/internal/wallet"
)

var (
	// ErrInsufficientFunds is returned when the balance cannot cover a debit.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnsupportedCardType is returned when the account's tier has no card line.
	ErrUnsupportedCardType = errors.New("account tier has no card line")
	// ErrInvalidLoan is returned for a non-positive principal or installment count.
	ErrInvalidLoan = errors.New("loan needs a positive amount and installment count")
	// ErrMissingSchedule is returned when a scheduled transfer carries no date.
	ErrMissingSchedule = errors.New("scheduled transaction needs a date")
)

// SavedFundsMode selects the direction of a saved-funds move.
type SavedFundsMode int

const (
	Save SavedFundsMode = iota
	Withdraw
)

// TransferIntent carries the caller-validated inputs for an immediate or
// scheduled transfer.
type TransferIntent struct {
	Amount        decimal.Decimal
	Destination   *Account
	ScheduledDate *dates.Date
	Description   string
}

// pendingTransfer pairs a scheduled transaction with the destination it
// settles against.
type pendingTransfer struct {
	txn  *model.Transaction
	dest *Account
}

// Account is the ledger aggregate. It exclusively owns its wallet, history,
// pix keys, pending schedule and notification inbox.
type Account struct {
	number          string
	tier            tier.Tier
	balance         decimal.Decimal
	loan            decimal.Decimal
	loanInstallment decimal.Decimal
	savedFunds      decimal.Decimal
	totalDeposited  decimal.Decimal
	wallet          *wallet.Wallet
	history         *history.History
	pix             *PixRegistry
	pending         []pendingTransfer
	notifications   []*model.Transaction
}

// New opens an account at the given tier with zero balances.
func New(number string, t tier.Tier) *Account {
	return &Account{
		number:  number,
		tier:    t,
		wallet:  wallet.New(),
		history: history.New(),
		pix:     NewPixRegistry(),
	}
}

// Restore rebuilds an account from persisted balances. Used by the store
// when loading the books; the wallet, history and schedule start empty.
func Restore(number string, t tier.Tier, balance, loan, installment, saved, deposited decimal.Decimal) *Account {
	a := New(number, t)
	a.balance = balance
	a.loan = loan
	a.loanInstallment = installment
	a.savedFunds = saved
	a.totalDeposited = deposited
	return a
}

func (a *Account) Number() string { return a.number }

func (a *Account) Tier() tier.Tier { return a.tier }

func (a *Account) Balance() decimal.Decimal { return a.balance }

func (a *Account) Loan() decimal.Decimal { return a.loan }

func (a *Account) LoanInstallment() decimal.Decimal { return a.loanInstallment }

func (a *Account) SavedFunds() decimal.Decimal { return a.savedFunds }

func (a *Account) TotalDeposited() decimal.Decimal { return a.totalDeposited }

func (a *Account) Wallet() *wallet.Wallet { return a.wallet }

func (a *Account) History() *history.History { return a.history }

func (a *Account) Pix() *PixRegistry { return a.pix }

// IncreaseBalance credits amount unconditionally.
func (a *Account) IncreaseBalance(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// CreateLoan issues a loan: the principal lands on the balance and the
// fixed installment is principal divided by the installment count.
func (a *Account) CreateLoan(amount decimal.Decimal, installments int) error {
	if !amount.IsPositive() || installments < 1 {
		return ErrInvalidLoan
	}
	a.loan = amount
	a.loanInstallment = amount.Div(decimal.NewFromInt(int64(installments)))
	a.balance = a.balance.Add(amount)
	return nil
}

// PayLoan settles the whole outstanding loan at once.
func (a *Account) PayLoan() error {
	if a.balance.LessThan(a.loan) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(a.loan)
	a.loan = decimal.Zero
	a.loanInstallment = decimal.Zero
	return nil
}

// PayLoanInstallment pays one installment, or only the outstanding
// remainder when that is smaller than the installment.
func (a *Account) PayLoanInstallment() error {
	due := a.loanInstallment
	if a.loan.LessThan(due) {
		due = a.loan
	}
	if a.balance.LessThan(due) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(due)
	a.loan = a.loan.Sub(due)
	if a.loan.IsZero() {
		a.loanInstallment = decimal.Zero
	}
	return nil
}

// PayInvoice pays a boleto from this account to the destination: the amount
// plus any accrued late fee leaves the balance, the destination is credited
// and notified, and both histories record the settlement. This is the one
// operation that touches two accounts; there is no transactional boundary,
// so callers validate before invoking it.
func (a *Account) PayInvoice(bill *model.Invoice, destination *Account, today dates.Date) (*model.Transaction, error) {
	amount := bill.AmountDueOn(today)
	if a.balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	destination.IncreaseBalance(amount)

	t := &model.Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		IssueDate:   today,
		Origin:      a.number,
		Destination: destination.number,
		Description: "boleto " + bill.ID.String(),
	}
	if err := a.history.AddTransaction(t); err != nil {
		return nil, err
	}
	if err := destination.history.AddTransaction(t); err != nil {
		return nil, err
	}
	a.history.AddInvoice(bill)
	destination.Notify(t)
	return t, nil
}

// PayCardInvoice debits amount from the balance and shrinks the card
// invoice by the same amount (the wallet floors the invoice at zero).
func (a *Account) PayCardInvoice(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
	a.wallet.IncreaseAvailableLimit(amount)
}

// SetSavedFunds moves amount between the spendable balance and saved funds.
// Balance sufficiency for a save is the caller's responsibility; a withdraw
// exceeding the saved funds fails with ErrInsufficientFunds so the saved
// balance never goes negative.
func (a *Account) SetSavedFunds(amount decimal.Decimal, mode SavedFundsMode) error {
	switch mode {
	case Save:
		a.balance = a.balance.Sub(amount)
		a.savedFunds = a.savedFunds.Add(amount)
	case Withdraw:
		if a.savedFunds.LessThan(amount) {
			return ErrInsufficientFunds
		}
		a.savedFunds = a.savedFunds.Sub(amount)
		a.balance = a.balance.Add(amount)
	}
	return nil
}

// Transfer moves the intent amount to the destination immediately and
// records the transaction in both histories. Solvency is validated
// upstream and not re-checked here.
func (a *Account) Transfer(intent TransferIntent, today dates.Date) (*model.Transaction, error) {
	a.balance = a.balance.Sub(intent.Amount)
	intent.Destination.IncreaseBalance(intent.Amount)

	t := a.newTransaction(intent, today)
	if err := a.history.AddTransaction(t); err != nil {
		return nil, err
	}
	if err := intent.Destination.history.AddTransaction(t); err != nil {
		return nil, err
	}
	intent.Destination.Notify(t)
	return t, nil
}

// Deposit credits amount and tracks it against the lifetime deposit total
// consumed by tier ceiling validation.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
	a.totalDeposited = a.totalDeposited.Add(amount)
}

// ScheduleTransaction registers a transfer to be settled on the scheduled
// date. The transaction is created now but no money moves until SettleDue.
func (a *Account) ScheduleTransaction(intent TransferIntent, today dates.Date) (*model.Transaction, error) {
	if intent.ScheduledDate == nil {
		return nil, ErrMissingSchedule
	}
	t := a.newTransaction(intent, today)
	a.pending = append(a.pending, pendingTransfer{txn: t, dest: intent.Destination})
	return t, nil
}

// RestorePending re-registers a persisted scheduled transaction against its
// resolved destination. Used by the store when loading the books.
func (a *Account) RestorePending(t *model.Transaction, dest *Account) {
	a.pending = append(a.pending, pendingTransfer{txn: t, dest: dest})
}

// PendingTransactions returns the scheduled transactions not yet settled.
func (a *Account) PendingTransactions() []*model.Transaction {
	out := make([]*model.Transaction, 0, len(a.pending))
	for _, p := range a.pending {
		out = append(out, p.txn)
	}
	return out
}

// SettleDue applies every pending transaction whose scheduled date has
// arrived: money moves and both histories record it. Settled transactions
// leave the pending schedule; later-dated ones stay. On a history failure
// the failing transaction and every entry not yet scanned stay pending, so
// a sweep error never drops scheduled transfers.
func (a *Account) SettleDue(today dates.Date) ([]*model.Transaction, error) {
	var settled []*model.Transaction
	var remaining []pendingTransfer
	for i, p := range a.pending {
		if p.txn.ScheduledDate.After(today) {
			remaining = append(remaining, p)
			continue
		}
		a.balance = a.balance.Sub(p.txn.Amount)
		p.dest.IncreaseBalance(p.txn.Amount)
		if err := a.history.AddTransaction(p.txn); err != nil {
			a.pending = append(remaining, a.pending[i:]...)
			return settled, err
		}
		if err := p.dest.history.AddTransaction(p.txn); err != nil {
			a.pending = append(remaining, a.pending[i:]...)
			return settled, err
		}
		p.dest.Notify(p.txn)
		settled = append(settled, p.txn)
	}
	a.pending = remaining
	return settled, nil
}

// IssueCard creates a card of the account's tier line and adds it to the
// wallet. Tiers without a card line fail with ErrUnsupportedCardType.
func (a *Account) IssueCard(label, number string) (model.Card, error) {
	c, ok := a.tier.NewCard(label, number)
	if !ok {
		return model.Card{}, ErrUnsupportedCardType
	}
	a.wallet.AddCard(c)
	return c, nil
}

// ModifyPixKey adds or replaces a Pix key and reports whether the mutation
// was applied.
func (a *Account) ModifyPixKey(intent PixIntent) bool {
	return a.pix.Set(intent.Kind, intent.Value)
}

// Notify records an incoming-transaction notification.
func (a *Account) Notify(t *model.Transaction) {
	a.notifications = append(a.notifications, t)
}

// Notifications returns the received notifications in arrival order.
func (a *Account) Notifications() []*model.Transaction {
	out := make([]*model.Transaction, 0, len(a.notifications))
	return append(out, a.notifications...)
}

func (a *Account) newTransaction(intent TransferIntent, today dates.Date) *model.Transaction {
	return &model.Transaction{
		ID:            uuid.New(),
		Amount:        intent.Amount,
		IssueDate:     today,
		ScheduledDate: intent.ScheduledDate,
		Origin:        a.number,
		Destination:   intent.Destination.number,
		Description:   intent.Description,
	}
}
