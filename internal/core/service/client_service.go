package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

type ClientService struct {
	api ports.ClientsAPI
	c   caller
}

func NewClientService(api ports.ClientsAPI, logger zerolog.Logger) *ClientService {
	return &ClientService{api: api, c: newCaller("client", logger)}
}

func (s *ClientService) ListClients(ctx context.Context, search *string) ([]domain.Client, error) {
	return call(ctx, s.c, "ListClients", "Failed to fetch the client list", func(ctx context.Context) ([]domain.Client, error) {
		dtos, err := s.api.ListClients(ctx, ports.ClientsListParams{Search: search})
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toClient), nil
	})
}

func (s *ClientService) CreateClient(ctx context.Context, dto ports.ClientDto) (*domain.Client, error) {
	return call(ctx, s.c, "CreateClient", "Failed to create the client", func(ctx context.Context) (*domain.Client, error) {
		created, err := s.api.CreateClient(ctx, ports.ClientsCreateRequest{ClientDto: dto})
		if err != nil {
			return nil, err
		}
		cl := toClient(*created)
		return &cl, nil
	})
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, dto ports.ClientDto) error {
	return exec(ctx, s.c, "UpdateClient", "Failed to update the client", func(ctx context.Context) error {
		return s.api.UpdateClient(ctx, ports.ClientsUpdateRequest{Id: id, ClientDto: dto})
	})
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeleteClient", "Failed to delete the client", func(ctx context.Context) error {
		return s.api.DeleteClient(ctx, id)
	})
}

// CurrentClient returns the client profile of the token holder.
func (s *ClientService) CurrentClient(ctx context.Context) (*domain.Client, error) {
	return call(ctx, s.c, "CurrentClient", "Failed to fetch your profile", func(ctx context.Context) (*domain.Client, error) {
		dto, err := s.api.Me(ctx)
		if err != nil {
			return nil, err
		}
		cl := toClient(*dto)
		return &cl, nil
	})
}
