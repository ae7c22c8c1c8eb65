package entity

import "errors"

var (
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrWithdrawalLimit       = errors.New("amount exceeds the withdrawal limit")
	ErrDailyWithdrawalLimit  = errors.New("daily withdrawal limit reached")
	ErrInvalidRegistrationID = errors.New("invalid registration id")
	ErrForeignAccount        = errors.New("account belongs to another client")
)
