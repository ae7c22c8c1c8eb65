package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quintans/simple-bank/internal/domain/entity"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrEntityExists   = errors.New("entity already exists")
)

type ClientService interface {
	Register(ctx context.Context, cmd RegisterClientCommand) (ClientDTO, error)
	List(ctx context.Context) ([]ClientDTO, error)
}

type RegisterClientCommand struct {
	RegistrationID string    `json:"registrationId"`
	Name           string    `json:"name"`
	BirthDate      time.Time `json:"birthDate"`
	Address        string    `json:"address"`
}

type ClientDTO struct {
	RegistrationID string    `json:"registrationId"`
	Name           string    `json:"name"`
	BirthDate      time.Time `json:"birthDate"`
	Address        string    `json:"address,omitempty"`
	Accounts       []int     `json:"accounts,omitempty"`
}

type AccountService interface {
	Open(ctx context.Context, cmd OpenAccountCommand) (AccountDTO, error)
	Deposit(ctx context.Context, cmd TransactionCommand) (AccountDTO, error)
	Withdraw(ctx context.Context, cmd TransactionCommand) (AccountDTO, error)
	Statement(ctx context.Context, query StatementQuery) (StatementDTO, error)
	List(ctx context.Context) ([]AccountDTO, error)
}

type OpenAccountCommand struct {
	RegistrationID string `json:"registrationId"`
	Checking       bool   `json:"checking"`
}

type TransactionCommand struct {
	RegistrationID string          `json:"registrationId"`
	AccountNumber  int             `json:"accountNumber"`
	Amount         decimal.Decimal `json:"amount"`
}

type StatementQuery struct {
	RegistrationID string `json:"registrationId"`
	AccountNumber  int    `json:"accountNumber"`
}

type AccountDTO struct {
	Number              int              `json:"number"`
	Agency              string           `json:"agency"`
	Type                string           `json:"type"`
	Owner               string           `json:"owner,omitempty"`
	Balance             decimal.Decimal  `json:"balance"`
	WithdrawalLimit     *decimal.Decimal `json:"withdrawalLimit,omitempty"`
	MaxDailyWithdrawals int              `json:"maxDailyWithdrawals,omitempty"`
	WithdrawalsToday    int              `json:"withdrawalsToday,omitempty"`
}

type RecordDTO struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

type StatementDTO struct {
	Account AccountDTO  `json:"account"`
	Records []RecordDTO `json:"records"`
}

type ClientRepository interface {
	Get(ctx context.Context, id entity.RegistrationID) (*entity.Client, error)
	New(ctx context.Context, client *entity.Client) error
	All(ctx context.Context) ([]*entity.Client, error)
}

type AccountRepository interface {
	NextNumber(ctx context.Context) (int, error)
	Get(ctx context.Context, number int) (*entity.Account, error)
	New(ctx context.Context, acc *entity.Account) error
	All(ctx context.Context) ([]*entity.Account, error)
}
