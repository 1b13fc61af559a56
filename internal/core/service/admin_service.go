package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

type AdminService struct {
	api ports.AdministratorsAPI
	c   caller
}

func NewAdminService(api ports.AdministratorsAPI, logger zerolog.Logger) *AdminService {
	return &AdminService{api: api, c: newCaller("admin", logger)}
}

func (s *AdminService) ListAdministrators(ctx context.Context) ([]domain.Administrator, error) {
	return call(ctx, s.c, "ListAdministrators", "Failed to fetch the administrator list", func(ctx context.Context) ([]domain.Administrator, error) {
		dtos, err := s.api.ListAdministrators(ctx)
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toAdministrator), nil
	})
}

func (s *AdminService) CreateAdministrator(ctx context.Context, dto ports.AdministratorDto) (*domain.Administrator, error) {
	return call(ctx, s.c, "CreateAdministrator", "Failed to create the administrator", func(ctx context.Context) (*domain.Administrator, error) {
		created, err := s.api.CreateAdministrator(ctx, ports.AdministratorsCreateRequest{AdministratorDto: dto})
		if err != nil {
			return nil, err
		}
		a := toAdministrator(*created)
		return &a, nil
	})
}

func (s *AdminService) DeleteAdministrator(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeleteAdministrator", "Failed to delete the administrator", func(ctx context.Context) error {
		return s.api.DeleteAdministrator(ctx, id)
	})
}
