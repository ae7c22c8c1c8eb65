package memory

import (
	"context"

	"github.com/quintans/faults"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/entity"
)

// ClientRepository keeps clients for the lifetime of the process, in registration order.
type ClientRepository struct {
	byID  map[entity.RegistrationID]*entity.Client
	order []*entity.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		byID: map[entity.RegistrationID]*entity.Client{},
	}
}

func (r *ClientRepository) Get(_ context.Context, id entity.RegistrationID) (*entity.Client, error) {
	c, ok := r.byID[id.Normalize()]
	if !ok {
		return nil, faults.Errorf("client %s: %w", id.Mask(), domain.ErrEntityNotFound)
	}
	return c, nil
}

func (r *ClientRepository) New(_ context.Context, client *entity.Client) error {
	id := client.RegistrationID()
	if _, ok := r.byID[id]; ok {
		return faults.Errorf("client %s: %w", id.Mask(), domain.ErrEntityExists)
	}
	r.byID[id] = client
	r.order = append(r.order, client)
	return nil
}

func (r *ClientRepository) All(context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, len(r.order))
	copy(out, r.order)
	return out, nil
}
