package event

const (
	Event_ClientRegistered    = "ClientRegistered"
	Event_AccountOpened       = "AccountOpened"
	Event_MoneyDeposited      = "MoneyDeposited"
	Event_MoneyWithdrawn      = "MoneyWithdrawn"
	Event_TransactionRejected = "TransactionRejected"
)

// Event is an audit entry describing something that happened in the ledger.
type Event interface {
	GetType() string
}

type ClientRegistered struct {
	RegistrationID string `json:"registrationId,omitempty"`
	Name           string `json:"name,omitempty"`
}

func (ClientRegistered) GetType() string {
	return Event_ClientRegistered
}

type AccountOpened struct {
	Number int    `json:"number,omitempty"`
	Type   string `json:"type,omitempty"`
	Owner  string `json:"owner,omitempty"`
}

func (AccountOpened) GetType() string {
	return Event_AccountOpened
}
