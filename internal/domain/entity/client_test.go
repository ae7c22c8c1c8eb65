package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	birth := time.Date(1985, time.January, 20, 0, 0, 0, 0, time.UTC)
	c, err := NewClient("123.456.789-09", "João da Silva", birth, "Av. Brasil, 1000")
	require.NoError(t, err)
	assert.Equal(t, RegistrationID("12345678909"), c.RegistrationID())
	assert.Equal(t, "João da Silva", c.Name())
	assert.Equal(t, birth, c.BirthDate())
	assert.Equal(t, "Av. Brasil, 1000", c.Address())
	assert.Empty(t, c.Accounts())
}

func TestNewClientInvalidRegistration(t *testing.T) {
	for _, id := range []RegistrationID{"", "123", "1234567890a", "123.456.789-0", "123456789012"} {
		c, err := NewClient(id, "x", time.Time{}, "y")
		require.ErrorIs(t, err, ErrInvalidRegistrationID, string(id))
		assert.Nil(t, c)
	}
}

func TestClientAccounts(t *testing.T) {
	c := newClient(t)
	a1 := NewAccount(1, c)
	a2 := NewCheckingAccount(2, c, dec("500"), 3)

	require.NoError(t, c.AddAccount(a1))
	require.NoError(t, c.AddAccount(a2))
	require.NoError(t, c.AddAccount(a1))

	accounts := c.Accounts()
	require.Len(t, accounts, 2)
	assert.Same(t, a1, accounts[0])
	assert.Same(t, a2, accounts[1])

	accounts[0] = nil
	assert.Same(t, a1, c.Accounts()[0])
}

func TestClientRejectsForeignAccount(t *testing.T) {
	c := newClient(t)
	other := newClient(t)
	acc := NewAccount(1, other)

	require.ErrorIs(t, c.AddAccount(acc), ErrForeignAccount)
	assert.Empty(t, c.Accounts())
	assert.False(t, c.Owns(acc))
}

func TestClientTransact(t *testing.T) {
	c := newClient(t)
	acc := NewAccount(1, c)
	require.NoError(t, c.AddAccount(acc))

	require.NoError(t, c.Transact(acc, NewDeposit(dec("1000"))))
	require.NoError(t, c.Transact(acc, NewWithdrawal(dec("150"))))
	assert.True(t, acc.Balance().Equal(dec("850")))

	require.ErrorIs(t, c.Transact(acc, NewWithdrawal(dec("851"))), ErrInsufficientBalance)

	other := newClient(t)
	require.ErrorIs(t, other.Transact(acc, NewDeposit(dec("1"))), ErrForeignAccount)
	assert.True(t, acc.Balance().Equal(dec("850")))
	assert.Len(t, acc.History(), 2)
}
