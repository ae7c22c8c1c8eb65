package entity

import (
	"time"

	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
)

// CheckingPolicy caps the amount of a single withdrawal and the number of withdrawals per calendar day.
// The counter lives in memory, so it also starts from zero whenever the process starts.
type CheckingPolicy struct {
	limit    decimal.Decimal
	maxDaily int
	today    int
	day      time.Time
}

func NewCheckingPolicy(limit decimal.Decimal, maxDaily int) *CheckingPolicy {
	return &CheckingPolicy{
		limit:    limit,
		maxDaily: maxDaily,
	}
}

func NewCheckingAccount(number int, owner *Client, limit decimal.Decimal, maxDaily int, opts ...Option) *Account {
	return newAccount(number, owner, CHECKING, NewCheckingPolicy(limit, maxDaily), opts)
}

func (p *CheckingPolicy) Allow(amount decimal.Decimal, now time.Time) error {
	if amount.GreaterThan(p.limit) {
		return faults.Errorf("withdrawal of %s over the limit of %s: %w", amount, p.limit, ErrWithdrawalLimit)
	}
	if n := p.WithdrawalsOn(now); n >= p.maxDaily {
		return faults.Errorf("%d of %d withdrawals done today: %w", n, p.maxDaily, ErrDailyWithdrawalLimit)
	}
	return nil
}

// Withdrawn counts a withdrawal. The counter only restarts on a later calendar day,
// so a clock moving backwards keeps counting against the current day.
func (p *CheckingPolicy) Withdrawn(now time.Time) {
	if dayAfter(now, p.day) {
		p.day = now
		p.today = 0
	}
	p.today++
}

func (p *CheckingPolicy) Limit() decimal.Decimal {
	return p.limit
}

func (p *CheckingPolicy) MaxDailyWithdrawals() int {
	return p.maxDaily
}

// WithdrawalsOn returns how many withdrawals count against the calendar day of now.
func (p *CheckingPolicy) WithdrawalsOn(now time.Time) int {
	if dayAfter(now, p.day) {
		return 0
	}
	return p.today
}

// dayAfter reports whether t falls on a later calendar day than ref.
func dayAfter(t, ref time.Time) bool {
	return midnight(t).After(midnight(ref))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
