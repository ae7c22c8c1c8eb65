package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/entity"
	"github.com/quintans/simple-bank/shared/utils"
)

const (
	dateLayout = "02-01-2006"
	maxLineLen = 4096
)

const menu = `
================ MENU ================
[d]  Deposit
[w]  Withdraw
[s]  Statement
[nc] New client
[na] New account
[la] List accounts
[lc] List clients
[q]  Quit
=> `

var (
	errQuit        = errors.New("quit")
	errLineTooLong = errors.New("input line too long")
)

// Console is the interactive front end of the ledger. It reads commands from in,
// writes everything the user sees to out and never lets a failed operation end the session.
type Console struct {
	logger     logrus.FieldLogger
	clientSvc  domain.ClientService
	accountSvc domain.AccountService

	in   *bufio.Reader
	out  io.Writer
	ok   *color.Color
	fail *color.Color
	note *color.Color
}

func NewConsole(logger logrus.FieldLogger, clientSvc domain.ClientService, accountSvc domain.AccountService, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:     logger,
		clientSvc:  clientSvc,
		accountSvc: accountSvc,
		in:         bufio.NewReader(in),
		out:        out,
		ok:         color.New(color.FgGreen),
		fail:       color.New(color.FgRed),
		note:       color.New(color.FgYellow),
	}
}

// Run serves commands until the user quits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	ctx = utils.LogToCtx(ctx, c.logger)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.note.Fprint(c.out, menu)
		option, err := c.readLine()
		if err == nil {
			err = c.dispatch(ctx, strings.ToLower(option))
		}

		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			c.ok.Fprintln(c.out, "Bye!")
			return nil
		case errors.Is(err, errLineTooLong):
			c.fail.Fprintf(c.out, "\nInput too long, lines are limited to %d characters. Operation cancelled.\n", maxLineLen)
		default:
			return ignoreEOF(err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, option string) error {
	switch option {
	case "d":
		return c.deposit(ctx)
	case "w":
		return c.withdraw(ctx)
	case "s":
		return c.statement(ctx)
	case "nc":
		return c.newClient(ctx)
	case "na":
		return c.newAccount(ctx)
	case "la":
		return c.listAccounts(ctx)
	case "lc":
		return c.listClients(ctx)
	case "q":
		return errQuit
	default:
		c.fail.Fprintln(c.out, "Invalid option, please choose one from the menu.")
		return nil
	}
}

func (c *Console) deposit(ctx context.Context) error {
	return c.transact(ctx, "Deposit", c.accountSvc.Deposit)
}

func (c *Console) withdraw(ctx context.Context) error {
	return c.transact(ctx, "Withdrawal", c.accountSvc.Withdraw)
}

func (c *Console) transact(ctx context.Context, label string, do func(context.Context, domain.TransactionCommand) (domain.AccountDTO, error)) error {
	id, number, err := c.askAccount()
	if err != nil || number == 0 {
		return err
	}
	raw, err := c.ask("Amount: ")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		c.fail.Fprintf(c.out, "'%s' is not a valid amount.\n", raw)
		return nil
	}

	dto, err := do(ctx, domain.TransactionCommand{
		RegistrationID: id,
		AccountNumber:  number,
		Amount:         amount,
	})
	if err != nil {
		c.report(err)
		return nil
	}
	c.ok.Fprintf(c.out, "%s done. Balance: R$ %s\n", label, dto.Balance.StringFixed(2))
	return nil
}

func (c *Console) statement(ctx context.Context) error {
	id, number, err := c.askAccount()
	if err != nil || number == 0 {
		return err
	}
	st, err := c.accountSvc.Statement(ctx, domain.StatementQuery{RegistrationID: id, AccountNumber: number})
	if err != nil {
		c.report(err)
		return nil
	}

	fmt.Fprintf(c.out, "\n============== STATEMENT ==============\nAgency %s  Account %d  (%s)\n", st.Account.Agency, st.Account.Number, st.Account.Type)
	if len(st.Records) == 0 {
		fmt.Fprintln(c.out, "No transactions yet.")
	}
	for _, r := range st.Records {
		fmt.Fprintf(c.out, "%s  %-10s R$ %s\n", r.Timestamp.Format("2006-01-02 15:04"), r.Kind, r.Amount.StringFixed(2))
	}
	fmt.Fprintf(c.out, "\nBalance: R$ %s\n=======================================\n", st.Account.Balance.StringFixed(2))
	return nil
}

func (c *Console) newClient(ctx context.Context) error {
	id, err := c.ask("Registration id (CPF): ")
	if err != nil {
		return err
	}
	name, err := c.ask("Full name: ")
	if err != nil {
		return err
	}
	rawBirth, err := c.ask("Birth date (dd-mm-yyyy): ")
	if err != nil {
		return err
	}
	birth, err := time.Parse(dateLayout, rawBirth)
	if err != nil {
		c.fail.Fprintf(c.out, "'%s' is not a valid date.\n", rawBirth)
		return nil
	}
	address, err := c.ask("Address: ")
	if err != nil {
		return err
	}

	dto, err := c.clientSvc.Register(ctx, domain.RegisterClientCommand{
		RegistrationID: id,
		Name:           name,
		BirthDate:      birth,
		Address:        address,
	})
	if err != nil {
		c.report(err)
		return nil
	}
	c.ok.Fprintf(c.out, "Client %s registered.\n", dto.Name)
	return nil
}

func (c *Console) newAccount(ctx context.Context) error {
	id, err := c.ask("Registration id (CPF): ")
	if err != nil {
		return err
	}
	kind, err := c.ask("Checking account? [y/N]: ")
	if err != nil {
		return err
	}

	dto, err := c.accountSvc.Open(ctx, domain.OpenAccountCommand{
		RegistrationID: id,
		Checking:       strings.EqualFold(kind, "y"),
	})
	if err != nil {
		c.report(err)
		return nil
	}
	c.ok.Fprintf(c.out, "Account %d opened at agency %s.\n", dto.Number, dto.Agency)
	return nil
}

func (c *Console) listAccounts(ctx context.Context) error {
	accounts, err := c.accountSvc.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(accounts) == 0 {
		c.note.Fprintln(c.out, "No accounts yet.")
		return nil
	}
	for _, a := range accounts {
		fmt.Fprintf(c.out, "Agency: %s  Account: %d  Type: %s  Owner: %s  Balance: R$ %s", a.Agency, a.Number, a.Type, a.Owner, a.Balance.StringFixed(2))
		if a.WithdrawalLimit != nil {
			fmt.Fprintf(c.out, "  Limit: R$ %s  Withdrawals today: %d/%d", a.WithdrawalLimit.StringFixed(2), a.WithdrawalsToday, a.MaxDailyWithdrawals)
		}
		fmt.Fprintln(c.out)
	}
	return nil
}

func (c *Console) listClients(ctx context.Context) error {
	clients, err := c.clientSvc.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(clients) == 0 {
		c.note.Fprintln(c.out, "No clients yet.")
		return nil
	}
	for _, cl := range clients {
		fmt.Fprintf(c.out, "%s  %s  born %s  accounts %v\n", cl.RegistrationID, cl.Name, cl.BirthDate.Format(dateLayout), cl.Accounts)
	}
	return nil
}

// askAccount returns a zero account number, and no error, when the user typed an invalid one.
func (c *Console) askAccount() (string, int, error) {
	id, err := c.ask("Registration id (CPF): ")
	if err != nil {
		return "", 0, err
	}
	raw, err := c.ask("Account number: ")
	if err != nil {
		return "", 0, err
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		c.fail.Fprintf(c.out, "'%s' is not a valid account number.\n", raw)
		return "", 0, nil
	}
	return id, number, nil
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.readLine()
}

// readLine consumes a whole line even when it is longer than maxLineLen,
// so the next read starts on the following line.
func (c *Console) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, more, err := c.in.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong && len(line)+len(chunk) > maxLineLen {
			tooLong = true
			line = nil
		}
		if !tooLong {
			line = append(line, chunk...)
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}

func (c *Console) report(err error) {
	msg, known := resolveError(err)
	if !known {
		c.logger.WithError(err).Error("unexpected failure")
	}
	c.fail.Fprintln(c.out, msg)
}

// resolveError maps a failure to the message shown to the user.
func resolveError(err error) (string, bool) {
	switch {
	case errors.Is(err, entity.ErrInvalidAmount):
		return "Operation failed: the amount must be greater than zero.", true
	case errors.Is(err, entity.ErrInsufficientBalance):
		return "Operation failed: insufficient balance.", true
	case errors.Is(err, entity.ErrWithdrawalLimit):
		return "Operation failed: the amount exceeds the withdrawal limit.", true
	case errors.Is(err, entity.ErrDailyWithdrawalLimit):
		return "Operation failed: maximum number of withdrawals for today reached.", true
	case errors.Is(err, entity.ErrInvalidRegistrationID):
		return "Operation failed: invalid registration id.", true
	case errors.Is(err, entity.ErrForeignAccount):
		return "Operation failed: the account does not belong to this client.", true
	case errors.Is(err, domain.ErrEntityNotFound):
		return "Operation failed: client or account not found.", true
	case errors.Is(err, domain.ErrEntityExists):
		return "Operation failed: a client with this registration id already exists.", true
	default:
		return "Operation failed: unexpected error.", false
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
