package event

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MoneyDeposited struct {
	Account       int             `json:"account,omitempty"`
	Money         decimal.Decimal `json:"money,omitempty"`
	Balance       decimal.Decimal `json:"balance,omitempty"`
	TransactionID uuid.UUID       `json:"transactionId,omitempty"`
}

func (MoneyDeposited) GetType() string {
	return Event_MoneyDeposited
}

type MoneyWithdrawn struct {
	Account       int             `json:"account,omitempty"`
	Money         decimal.Decimal `json:"money,omitempty"`
	Balance       decimal.Decimal `json:"balance,omitempty"`
	TransactionID uuid.UUID       `json:"transactionId,omitempty"`
}

func (MoneyWithdrawn) GetType() string {
	return Event_MoneyWithdrawn
}

type TransactionRejected struct {
	Account int             `json:"account,omitempty"`
	Kind    string          `json:"kind,omitempty"`
	Money   decimal.Decimal `json:"money,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

func (TransactionRejected) GetType() string {
	return Event_TransactionRejected
}
