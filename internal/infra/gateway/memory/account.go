package memory

import (
	"context"

	"github.com/quintans/faults"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/entity"
)

// AccountRepository keeps accounts for the lifetime of the process, in opening order.
// Numbers are handed out sequentially starting at 1.
type AccountRepository struct {
	byNumber map[int]*entity.Account
	order    []*entity.Account
	last     int
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byNumber: map[int]*entity.Account{},
	}
}

func (r *AccountRepository) NextNumber(context.Context) (int, error) {
	return r.last + 1, nil
}

func (r *AccountRepository) Get(_ context.Context, number int) (*entity.Account, error) {
	acc, ok := r.byNumber[number]
	if !ok {
		return nil, faults.Errorf("account %d: %w", number, domain.ErrEntityNotFound)
	}
	return acc, nil
}

func (r *AccountRepository) New(_ context.Context, acc *entity.Account) error {
	n := acc.Number()
	if _, ok := r.byNumber[n]; ok {
		return faults.Errorf("account %d: %w", n, domain.ErrEntityExists)
	}
	r.byNumber[n] = acc
	r.order = append(r.order, acc)
	if n > r.last {
		r.last = n
	}
	return nil
}

func (r *AccountRepository) All(context.Context) ([]*entity.Account, error) {
	out := make([]*entity.Account, len(r.order))
	copy(out, r.order)
	return out, nil
}
