package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const Agency = "0001"

type AccountType string

const (
	BASIC    AccountType = "BASIC"
	CHECKING AccountType = "CHECKING"
)

// WithdrawalPolicy holds the withdrawal rules that go beyond the balance check.
type WithdrawalPolicy interface {
	// Allow is called once the amount and the balance were validated.
	Allow(amount decimal.Decimal, now time.Time) error
	// Withdrawn is called after a withdrawal was applied.
	Withdrawn(now time.Time)
}

type unrestricted struct{}

func (unrestricted) Allow(decimal.Decimal, time.Time) error { return nil }

func (unrestricted) Withdrawn(time.Time) {}

type Option func(*Account)

// WithClock sets the time source used to stamp transactions.
func WithClock(clock func() time.Time) Option {
	return func(a *Account) {
		a.clock = clock
	}
}

// Account is usable as a zero value: it then has no withdrawal rules and uses the wall clock.
// NewAccount and NewCheckingAccount set the agency, the owner and the policy.
type Account struct {
	number  int
	agency  string
	typ     AccountType
	balance decimal.Decimal
	history []Record
	owner   *Client
	policy  WithdrawalPolicy
	clock   func() time.Time
}

func NewAccount(number int, owner *Client, opts ...Option) *Account {
	return newAccount(number, owner, BASIC, unrestricted{}, opts)
}

func newAccount(number int, owner *Client, typ AccountType, policy WithdrawalPolicy, opts []Option) *Account {
	a := &Account{
		number:  number,
		agency:  Agency,
		typ:     typ,
		balance: decimal.Zero,
		owner:   owner,
		policy:  policy,
		clock:   time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	return NewDeposit(amount).Register(a)
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	return NewWithdrawal(amount).Register(a)
}

func (a *Account) Number() int {
	return a.number
}

func (a *Account) Agency() string {
	return a.agency
}

func (a *Account) Type() AccountType {
	return a.typ
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Owner() *Client {
	return a.owner
}

func (a *Account) Policy() WithdrawalPolicy {
	if a.policy == nil {
		return unrestricted{}
	}
	return a.policy
}

// History returns a copy of the recorded transactions, oldest first.
func (a *Account) History() []Record {
	out := make([]Record, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Account) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock()
}

func (a *Account) record(tx Transaction, at time.Time) {
	a.history = append(a.history, Record{
		ID:          uuid.New(),
		Transaction: tx,
		Timestamp:   at,
	})
}
