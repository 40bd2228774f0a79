// Package validate gates ledger mutations: per-tier deposit ceilings,
// transfer solvency, card invoice and limit rules, and scheduled/boleto
// input checks. Every function is pure over its inputs plus a read-only
// view of the account, and is called before the corresponding account
// mutation.
//
// Two result channels exist on purpose: a false return is a soft rejection
// the caller re-prompts on, while an error is a broken rule (or malformed
// number) surfaced to the caller. Malformed numeric input is never
// downgraded to false on the hard paths.
package validate

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/dates"
	"github.com/contavel-dev/contavel/internal/tier"
)

// Kind names the operation whose input is being validated.
type Kind int

const (
	Transfer Kind = iota
	Deposit
	PayBill
	IncreaseBill
	Other
)

// AccountState is the read-only account view the validator needs.
type AccountState interface {
	Balance() decimal.Decimal
	TotalDeposited() decimal.Decimal
}

// WalletState is the read-only wallet view for card invoice validation.
type WalletState interface {
	Invoice() decimal.Decimal
	RemainingLimit() (decimal.Decimal, error)
}

// AmountError reports an amount that breaks a validation rule.
type AmountError struct {
	Reason string
}

func (e *AmountError) Error() string {
	return "invalid amount: " + e.Reason
}

// DepositLimitError reports a deposit that would break its tier's ceiling.
type DepositLimitError struct {
	Tier    tier.Tier
	Ceiling decimal.Decimal
}

func (e *DepositLimitError) Error() string {
	return fmt.Sprintf("deposit limit exceeded for %s tier (max: %s)", e.Tier, e.Ceiling)
}

// TransactionInput validates a raw transfer or deposit amount against the
// account's tier and current state.
//
// Transfers reject negative amounts and amounts the balance cannot cover;
// zero is accepted. Deposits soft-reject non-positive values, then enforce
// the tier ceiling on both the single value and the lifetime deposited
// total. A non-numeric raw amount is a hard failure.
func TransactionInput(raw string, kind Kind, t tier.Tier, state AccountState) (bool, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return false, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	amount := decimal.NewFromInt(int64(value))

	switch kind {
	case Transfer:
		return checkTransferAmount(amount, state)
	case Deposit:
		if value <= 0 {
			return false, nil
		}
		return checkDepositCeiling(amount, t, state)
	}
	return false, nil
}

func checkTransferAmount(amount decimal.Decimal, state AccountState) (bool, error) {
	if amount.IsNegative() {
		return false, &AmountError{Reason: "negative value"}
	}
	if state.Balance().LessThan(amount) {
		return false, &AmountError{Reason: "amount exceeds balance"}
	}
	return true, nil
}

func checkDepositCeiling(amount decimal.Decimal, t tier.Tier, state AccountState) (bool, error) {
	ceiling, ok := t.DepositCeiling()
	if !ok {
		return false, nil
	}
	newTotal := state.TotalDeposited().Add(amount)
	if amount.LessThanOrEqual(ceiling) && newTotal.LessThanOrEqual(ceiling) {
		return true, nil
	}
	return false, &DepositLimitError{Tier: t, Ceiling: ceiling}
}

// BillAmount validates a raw amount against the card wallet for invoice
// operations.
//
// PayBill errors when a positive, balance-covered amount exceeds the
// current invoice, and reports true otherwise, even when the pre-check
// itself fails. IncreaseBill errors when a positive amount
// exceeds the remaining limit, but reports false even when every check
// passes, so callers cannot tell success from not-applicable; that is the
// inherited contract, kept until the product intent is clarified. Any
// other kind reports true unconditionally.
func BillAmount(raw string, kind Kind, state AccountState, w WalletState) (bool, error) {
	switch kind {
	case PayBill:
		ok, err := checkPositiveCovered(raw, state)
		if err != nil {
			return false, err
		}
		if ok {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return false, fmt.Errorf("parsing amount %q: %w", raw, err)
			}
			if amount.GreaterThan(w.Invoice()) {
				return false, &AmountError{Reason: "payment exceeds invoice"}
			}
		}
		return true, nil

	case IncreaseBill:
		ok, err := checkPositive(raw)
		if err != nil {
			return false, err
		}
		if ok {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return false, fmt.Errorf("parsing amount %q: %w", raw, err)
			}
			remaining, err := w.RemainingLimit()
			if err != nil {
				return false, err
			}
			if amount.GreaterThan(remaining) {
				return false, &AmountError{Reason: "exceeds remaining limit"}
			}
		}
		return false, nil
	}
	return true, nil
}

// ScheduledTransaction validates a value/date pair for a future-dated
// transfer: the value must pass transfer validation and the date must be a
// real calendar date.
func ScheduledTransaction(value, date string, t tier.Tier, state AccountState) (bool, error) {
	ok, err := TransactionInput(value, Transfer, t, state)
	if err != nil || !ok {
		return false, err
	}
	return dates.Valid(date), nil
}

// Boleto validates the value, due date and per-day late fee of a boleto.
// A negative value or fee is a hard validation error; a malformed value, an
// impossible date or a non-integer fee are soft rejections. The asymmetry
// between the negative and malformed paths is inherited behavior, kept
// until clarified.
func Boleto(value, dueDate, latePerDay string) (bool, error) {
	for _, raw := range []string{value, latePerDay} {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return false, nil
		}
		if amount.IsNegative() {
			return false, &AmountError{Reason: "negative value"}
		}
	}
	if !dates.Valid(dueDate) {
		return false, nil
	}
	if _, err := strconv.Atoi(latePerDay); err != nil {
		return false, nil
	}
	return true, nil
}

// checkPositiveCovered reports whether raw is a positive amount the current
// balance can cover. Negative amounts error; parse failures are hard
// failures.
func checkPositiveCovered(raw string, state AccountState) (bool, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return false, &AmountError{Reason: "negative value"}
	}
	if state.Balance().LessThan(amount) {
		return false, nil
	}
	return amount.IsPositive(), nil
}

// checkPositive is checkPositiveCovered without the balance test.
func checkPositive(raw string) (bool, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return false, &AmountError{Reason: "negative value"}
	}
	return amount.IsPositive(), nil
}
