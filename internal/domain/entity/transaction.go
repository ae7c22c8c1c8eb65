package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	DEPOSIT    Kind = "DEPOSIT"
	WITHDRAWAL Kind = "WITHDRAWAL"
)

// Transaction is a balance changing operation that knows how to apply itself to an account.
// Register either applies the whole operation and appends it to the account history,
// or returns an error and leaves the account untouched.
type Transaction interface {
	Kind() Kind
	Amount() decimal.Decimal
	Register(acc *Account) error
}

// Record is an entry of the account history.
type Record struct {
	ID          uuid.UUID
	Transaction Transaction
	Timestamp   time.Time
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (Deposit) Kind() Kind {
	return DEPOSIT
}

func (d Deposit) Amount() decimal.Decimal {
	return d.amount
}

func (d Deposit) Register(acc *Account) error {
	if !d.amount.IsPositive() {
		return faults.Errorf("deposit of %s: %w", d.amount, ErrInvalidAmount)
	}

	acc.balance = acc.balance.Add(d.amount)
	acc.record(d, acc.now())
	return nil
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (Withdrawal) Kind() Kind {
	return WITHDRAWAL
}

func (w Withdrawal) Amount() decimal.Decimal {
	return w.amount
}

func (w Withdrawal) Register(acc *Account) error {
	if !w.amount.IsPositive() {
		return faults.Errorf("withdrawal of %s: %w", w.amount, ErrInvalidAmount)
	}
	if w.amount.GreaterThan(acc.balance) {
		return faults.Errorf("withdrawal of %s with balance %s: %w", w.amount, acc.balance, ErrInsufficientBalance)
	}

	now := acc.now()
	policy := acc.Policy()
	if err := policy.Allow(w.amount, now); err != nil {
		return err
	}

	acc.balance = acc.balance.Sub(w.amount)
	policy.Withdrawn(now)
	acc.record(w, now)
	return nil
}
