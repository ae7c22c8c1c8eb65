package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/quintans/simple-bank/internal/domain"
	"github.com/quintans/simple-bank/internal/domain/entity"
	"github.com/quintans/simple-bank/shared/event"
	"github.com/quintans/simple-bank/shared/utils"
)

// maskedID logs a registration id with its identifying digits hidden.
// The mask is only computed when an entry is actually written.
type maskedID entity.RegistrationID

func (m maskedID) String() string {
	return entity.RegistrationID(m).Mask()
}

type ClientService struct {
	repo      domain.ClientRepository
	strictIDs bool
}

// NewClientService returns a service that, when strictIDs is set, also verifies the CPF check digits.
func NewClientService(repo domain.ClientRepository, strictIDs bool) ClientService {
	return ClientService{
		repo:      repo,
		strictIDs: strictIDs,
	}
}

func (s ClientService) Register(ctx context.Context, cmd domain.RegisterClientCommand) (domain.ClientDTO, error) {
	id := entity.RegistrationID(cmd.RegistrationID)
	_, logger := utils.LogTagsToCtx(ctx, logrus.Fields{
		"method":       "ClientService.Register",
		"registration": maskedID(id),
	})

	if s.strictIDs {
		if err := id.VerifyCheckDigits(); err != nil {
			logger.WithError(err).Warn("registration id refused")
			return domain.ClientDTO{}, err
		}
	}

	client, err := entity.NewClient(id, cmd.Name, cmd.BirthDate, cmd.Address)
	if err != nil {
		logger.WithError(err).Warn("registration id refused")
		return domain.ClientDTO{}, err
	}
	if err := s.repo.New(ctx, client); err != nil {
		return domain.ClientDTO{}, err
	}

	audit(logger, event.ClientRegistered{
		RegistrationID: client.RegistrationID().Mask(),
		Name:           client.Name(),
	})
	return toClientDTO(client), nil
}

func (s ClientService) List(ctx context.Context) ([]domain.ClientDTO, error) {
	clients, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientDTO(c))
	}
	return out, nil
}

func toClientDTO(c *entity.Client) domain.ClientDTO {
	dto := domain.ClientDTO{
		RegistrationID: c.RegistrationID().Format(),
		Name:           c.Name(),
		BirthDate:      c.BirthDate(),
		Address:        c.Address(),
	}
	for _, acc := range c.Accounts() {
		dto.Accounts = append(dto.Accounts, acc.Number())
	}
	return dto
}
