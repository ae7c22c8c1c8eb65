package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/app"
	"github.com/quintans/simple-bank/internal/domain/entity"
	"github.com/quintans/simple-bank/internal/infra/gateway/memory"
)

func init() {
	color.NoColor = true
}

func runConsole(t *testing.T, lines ...string) (string, string) {
	t.Helper()
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)

	clients := memory.NewClientRepository()
	accounts := memory.NewAccountRepository()
	now := func() time.Time { return time.Date(2026, time.October, 17, 14, 5, 0, 0, time.UTC) }
	terms := app.CheckingTerms{WithdrawalLimit: decimal.NewFromInt(500), MaxDailyWithdrawals: 3}

	var out bytes.Buffer
	c := NewConsole(
		logger,
		app.NewClientService(clients, false),
		app.NewAccountService(clients, accounts, terms, now),
		strings.NewReader(strings.Join(lines, "\n")+"\n"),
		&out,
	)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), logs.String()
}

var registerAna = []string{"nc", "123.456.789-09", "Ana Souza", "03-05-1990", "Rua A, 10"}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestConsoleAccountScenario(t *testing.T) {
	out, _ := runConsole(t, script(
		registerAna,
		[]string{"na", "12345678909", "n"},
		[]string{"d", "12345678909", "1", "100"},
		[]string{"w", "12345678909", "1", "150"},
		[]string{"w", "12345678909", "1", "50,00"},
		[]string{"s", "12345678909", "1"},
		[]string{"q"},
	)...)

	assert.Contains(t, out, "Client Ana Souza registered.")
	assert.Contains(t, out, "Account 1 opened at agency 0001.")
	assert.Contains(t, out, "Deposit done. Balance: R$ 100.00")
	assert.Contains(t, out, "Operation failed: insufficient balance.")
	assert.Contains(t, out, "Withdrawal done. Balance: R$ 50.00")
	assert.Contains(t, out, "2026-10-17 14:05  DEPOSIT    R$ 100.00")
	assert.Contains(t, out, "2026-10-17 14:05  WITHDRAWAL R$ 50.00")
	assert.Contains(t, out, "Balance: R$ 50.00")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestConsoleCheckingLimits(t *testing.T) {
	lines := script(
		registerAna,
		[]string{"na", "12345678909", "y"},
		[]string{"d", "12345678909", "1", "1000"},
		[]string{"w", "12345678909", "1", "600"},
	)
	for i := 0; i < 3; i++ {
		lines = append(lines, "w", "12345678909", "1", "200")
	}
	lines = append(lines, "w", "12345678909", "1", "100", "la")

	out, _ := runConsole(t, lines...)
	assert.Contains(t, out, "Operation failed: the amount exceeds the withdrawal limit.")
	assert.Equal(t, 3, strings.Count(out, "Withdrawal done."))
	assert.Contains(t, out, "Operation failed: maximum number of withdrawals for today reached.")
	assert.Contains(t, out, "Account: 1  Type: CHECKING  Owner: Ana Souza  Balance: R$ 400.00  Limit: R$ 500.00  Withdrawals today: 3/3")
}

func TestConsoleInputErrors(t *testing.T) {
	out, _ := runConsole(t, script(
		[]string{"x"},
		[]string{"nc", "123", "Bad", "01-01-2000", "Nowhere"},
		[]string{"nc", "12345678909", "Bad date", "2000-01-01"},
		registerAna,
		registerAna,
		[]string{"d", "12345678909", "abc"},
		[]string{"d", "12345678909", "7", "10"},
		[]string{"na", "529.982.247-25", "n"},
		[]string{"la", "lc"},
	)...)

	assert.Contains(t, out, "Invalid option, please choose one from the menu.")
	assert.Contains(t, out, "Operation failed: invalid registration id.")
	assert.Contains(t, out, "'2000-01-01' is not a valid date.")
	assert.Contains(t, out, "Operation failed: a client with this registration id already exists.")
	assert.Contains(t, out, "'abc' is not a valid account number.")
	assert.Contains(t, out, "Operation failed: client or account not found.")
	assert.Contains(t, out, "No accounts yet.")
	assert.Contains(t, out, "123.456.789-09  Ana Souza  born 03-05-1990  accounts []")
}

func TestConsoleSurvivesLongLines(t *testing.T) {
	out, _ := runConsole(t, script(
		[]string{strings.Repeat("x", maxLineLen+1)},
		[]string{"nc", "123.456.789-09", "Ana Souza", "03-05-1990", strings.Repeat("Rua A ", 70000/6)},
		[]string{"lc"},
		registerAna,
		[]string{"lc", "q"},
	)...)

	assert.Equal(t, 2, strings.Count(out, "Input too long, lines are limited to 4096 characters. Operation cancelled."))
	assert.Contains(t, out, "No clients yet.")
	assert.Contains(t, out, "Client Ana Souza registered.")
	assert.Contains(t, out, "123.456.789-09  Ana Souza  born 03-05-1990  accounts []")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	out, _ := runConsole(t, "d", "12345678909")
	assert.Contains(t, out, "Account number: ")
	assert.NotContains(t, out, "Bye!")
}

func TestConsoleStopsWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewConsole(logrus.New(), nil, nil, strings.NewReader("q\n"), io.Discard)
	require.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestResolveError(t *testing.T) {
	tests := []struct {
		err   error
		known bool
		msg   string
	}{
		{faults.Wrap(entity.ErrInvalidAmount), true, "greater than zero"},
		{fmt.Errorf("x: %w", entity.ErrInsufficientBalance), true, "insufficient balance"},
		{entity.ErrWithdrawalLimit, true, "withdrawal limit"},
		{entity.ErrDailyWithdrawalLimit, true, "withdrawals for today"},
		{entity.ErrInvalidRegistrationID, true, "invalid registration id"},
		{entity.ErrForeignAccount, true, "does not belong"},
		{domain.ErrEntityNotFound, true, "not found"},
		{domain.ErrEntityExists, true, "already exists"},
		{io.ErrUnexpectedEOF, false, "unexpected error"},
	}
	for _, tt := range tests {
		msg, known := resolveError(tt.err)
		assert.Equal(t, tt.known, known, tt.err.Error())
		assert.Contains(t, msg, tt.msg)
	}
}
