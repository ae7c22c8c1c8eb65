package app

import (
	"context"
	"time"

	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/entity"
	"github.com/quintans/simple-bank/shared/event"
	"github.com/quintans/simple-bank/shared/utils"
)

// CheckingTerms are the withdrawal rules given to every new checking account.
type CheckingTerms struct {
	WithdrawalLimit     decimal.Decimal
	MaxDailyWithdrawals int
}

type AccountService struct {
	clients  domain.ClientRepository
	accounts domain.AccountRepository
	terms    CheckingTerms
	clock    func() time.Time
}

func NewAccountService(clients domain.ClientRepository, accounts domain.AccountRepository, terms CheckingTerms, clock func() time.Time) AccountService {
	if clock == nil {
		clock = time.Now
	}
	return AccountService{
		clients:  clients,
		accounts: accounts,
		terms:    terms,
		clock:    clock,
	}
}

func (s AccountService) Open(ctx context.Context, cmd domain.OpenAccountCommand) (domain.AccountDTO, error) {
	_, logger := utils.LogTagsToCtx(ctx, logrus.Fields{
		"method":   "AccountService.Open",
		"checking": cmd.Checking,
	})

	client, err := s.clients.Get(ctx, entity.RegistrationID(cmd.RegistrationID))
	if err != nil {
		return domain.AccountDTO{}, err
	}
	number, err := s.accounts.NextNumber(ctx)
	if err != nil {
		return domain.AccountDTO{}, err
	}

	var acc *entity.Account
	if cmd.Checking {
		acc = entity.NewCheckingAccount(number, client, s.terms.WithdrawalLimit, s.terms.MaxDailyWithdrawals, entity.WithClock(s.clock))
	} else {
		acc = entity.NewAccount(number, client, entity.WithClock(s.clock))
	}
	if err := s.accounts.New(ctx, acc); err != nil {
		return domain.AccountDTO{}, err
	}
	if err := client.AddAccount(acc); err != nil {
		return domain.AccountDTO{}, err
	}

	audit(logger, event.AccountOpened{
		Number: acc.Number(),
		Type:   string(acc.Type()),
		Owner:  client.RegistrationID().Mask(),
	})
	return s.toAccountDTO(acc), nil
}

func (s AccountService) Deposit(ctx context.Context, cmd domain.TransactionCommand) (domain.AccountDTO, error) {
	return s.transact(ctx, "AccountService.Deposit", cmd, entity.NewDeposit(cmd.Amount))
}

func (s AccountService) Withdraw(ctx context.Context, cmd domain.TransactionCommand) (domain.AccountDTO, error) {
	return s.transact(ctx, "AccountService.Withdraw", cmd, entity.NewWithdrawal(cmd.Amount))
}

func (s AccountService) transact(ctx context.Context, method string, cmd domain.TransactionCommand, tx entity.Transaction) (domain.AccountDTO, error) {
	_, logger := utils.LogTagsToCtx(ctx, logrus.Fields{
		"method":  method,
		"account": cmd.AccountNumber,
		"amount":  tx.Amount(),
	})

	client, acc, err := s.ownedAccount(ctx, cmd.RegistrationID, cmd.AccountNumber)
	if err != nil {
		return domain.AccountDTO{}, err
	}

	if err := client.Transact(acc, tx); err != nil {
		audit(logger.WithError(err), event.TransactionRejected{
			Account: acc.Number(),
			Kind:    string(tx.Kind()),
			Money:   tx.Amount(),
			Reason:  err.Error(),
		})
		return domain.AccountDTO{}, err
	}

	history := acc.History()
	last := history[len(history)-1]
	switch tx.Kind() {
	case entity.DEPOSIT:
		audit(logger, event.MoneyDeposited{
			Account:       acc.Number(),
			Money:         tx.Amount(),
			Balance:       acc.Balance(),
			TransactionID: last.ID,
		})
	case entity.WITHDRAWAL:
		audit(logger, event.MoneyWithdrawn{
			Account:       acc.Number(),
			Money:         tx.Amount(),
			Balance:       acc.Balance(),
			TransactionID: last.ID,
		})
	}
	return s.toAccountDTO(acc), nil
}

func (s AccountService) Statement(ctx context.Context, query domain.StatementQuery) (domain.StatementDTO, error) {
	_, acc, err := s.ownedAccount(ctx, query.RegistrationID, query.AccountNumber)
	if err != nil {
		return domain.StatementDTO{}, err
	}

	history := acc.History()
	dto := domain.StatementDTO{
		Account: s.toAccountDTO(acc),
		Records: make([]domain.RecordDTO, 0, len(history)),
	}
	for _, r := range history {
		dto.Records = append(dto.Records, domain.RecordDTO{
			ID:        r.ID,
			Kind:      string(r.Transaction.Kind()),
			Amount:    r.Transaction.Amount(),
			Timestamp: r.Timestamp,
		})
	}
	return dto, nil
}

func (s AccountService) List(ctx context.Context) ([]domain.AccountDTO, error) {
	accounts, err := s.accounts.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AccountDTO, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, s.toAccountDTO(acc))
	}
	return out, nil
}

// ownedAccount loads the client and the account, failing with entity.ErrForeignAccount
// when the account is not one of the client's.
func (s AccountService) ownedAccount(ctx context.Context, registrationID string, number int) (*entity.Client, *entity.Account, error) {
	client, err := s.clients.Get(ctx, entity.RegistrationID(registrationID))
	if err != nil {
		return nil, nil, err
	}
	acc, err := s.accounts.Get(ctx, number)
	if err != nil {
		return nil, nil, err
	}
	if !client.Owns(acc) {
		return nil, nil, faults.Errorf("account %d of %s: %w", number, client.RegistrationID().Mask(), entity.ErrForeignAccount)
	}
	return client, acc, nil
}

func (s AccountService) toAccountDTO(acc *entity.Account) domain.AccountDTO {
	dto := domain.AccountDTO{
		Number:  acc.Number(),
		Agency:  acc.Agency(),
		Type:    string(acc.Type()),
		Balance: acc.Balance(),
	}
	if owner := acc.Owner(); owner != nil {
		dto.Owner = owner.Name()
	}
	if p, ok := acc.Policy().(*entity.CheckingPolicy); ok {
		limit := p.Limit()
		dto.WithdrawalLimit = &limit
		dto.MaxDailyWithdrawals = p.MaxDailyWithdrawals()
		dto.WithdrawalsToday = p.WithdrawalsOn(s.clock())
	}
	return dto
}
