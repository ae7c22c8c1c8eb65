package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/entity"
)

func newClient(t *testing.T, id entity.RegistrationID) *entity.Client {
	t.Helper()
	c, err := entity.NewClient(id, "Maria", time.Date(1970, time.March, 1, 0, 0, 0, 0, time.UTC), "Rua B, 2")
	require.NoError(t, err)
	return c
}

func TestClientRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()

	_, err := repo.Get(ctx, "12345678909")
	require.ErrorIs(t, err, domain.ErrEntityNotFound)

	c1 := newClient(t, "123.456.789-09")
	c2 := newClient(t, "52998224725")
	require.NoError(t, repo.New(ctx, c1))
	require.NoError(t, repo.New(ctx, c2))
	require.ErrorIs(t, repo.New(ctx, newClient(t, "12345678909")), domain.ErrEntityExists)

	got, err := repo.Get(ctx, "123.456.789-09")
	require.NoError(t, err)
	assert.Same(t, c1, got)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Same(t, c1, all[0])
	assert.Same(t, c2, all[1])
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	owner := newClient(t, "12345678909")

	n, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	a1 := entity.NewAccount(n, owner)
	require.NoError(t, repo.New(ctx, a1))

	n, err = repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	a2 := entity.NewAccount(n, owner)
	require.NoError(t, repo.New(ctx, a2))

	require.ErrorIs(t, repo.New(ctx, entity.NewAccount(2, owner)), domain.ErrEntityExists)

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Same(t, a2, got)

	_, err = repo.Get(ctx, 3)
	require.ErrorIs(t, err, domain.ErrEntityNotFound)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Account{a1, a2}, all)
}
