package entity

import (
	"time"

	"github.com/quintans/faults"
)

type Client struct {
	registrationID RegistrationID
	name           string
	birthDate      time.Time
	address        string
	accounts       []*Account
}

// NewClient returns ErrInvalidRegistrationID, and no client, when id is malformed.
// The id is stored in its normalized form.
func NewClient(id RegistrationID, name string, birthDate time.Time, address string) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		registrationID: id.Normalize(),
		name:           name,
		birthDate:      birthDate,
		address:        address,
	}, nil
}

func (c *Client) RegistrationID() RegistrationID {
	return c.registrationID
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) BirthDate() time.Time {
	return c.birthDate
}

func (c *Client) Address() string {
	return c.address
}

// Accounts returns a copy of the client accounts in opening order.
func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Client) AddAccount(acc *Account) error {
	if acc.Owner() != c {
		return faults.Errorf("attaching account %d to %s: %w", acc.Number(), c.registrationID.Mask(), ErrForeignAccount)
	}
	if c.Owns(acc) {
		return nil
	}
	c.accounts = append(c.accounts, acc)
	return nil
}

func (c *Client) Owns(acc *Account) bool {
	for _, a := range c.accounts {
		if a == acc {
			return true
		}
	}
	return false
}

// Transact registers tx on one of the client's own accounts.
func (c *Client) Transact(acc *Account, tx Transaction) error {
	if !c.Owns(acc) {
		return faults.Errorf("%s on account %d by %s: %w", tx.Kind(), acc.Number(), c.registrationID.Mask(), ErrForeignAccount)
	}
	return tx.Register(acc)
}
