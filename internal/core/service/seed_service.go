package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

type SeedService struct {
	api ports.SeedsAPI
	c   caller
}

func NewSeedService(api ports.SeedsAPI, logger zerolog.Logger) *SeedService {
	return &SeedService{api: api, c: newCaller("seed", logger)}
}

// ListSeeds returns seed batches filtered by maturity and viability; either
// filter may be nil.
func (s *SeedService) ListSeeds(ctx context.Context, f ports.SeedFilter) ([]domain.Seed, error) {
	params := ports.SeedsListParams{}
	if f.Maturity != nil {
		m := string(*f.Maturity)
		params.Maturity = &m
	}
	if f.Viability != nil {
		v := int32(*f.Viability)
		params.Viability = &v
	}

	return call(ctx, s.c, "ListSeeds", "Failed to fetch the seed list", func(ctx context.Context) ([]domain.Seed, error) {
		dtos, err := s.api.ListSeeds(ctx, params)
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toSeed), nil
	})
}

func (s *SeedService) CreateSeed(ctx context.Context, dto ports.SeedDto) (*domain.Seed, error) {
	return call(ctx, s.c, "CreateSeed", "Failed to create the seed", func(ctx context.Context) (*domain.Seed, error) {
		created, err := s.api.CreateSeed(ctx, ports.SeedsCreateRequest{SeedDto: dto})
		if err != nil {
			return nil, err
		}
		seed := toSeed(*created)
		return &seed, nil
	})
}

func (s *SeedService) UpdateSeed(ctx context.Context, id string, dto ports.SeedDto) error {
	return exec(ctx, s.c, "UpdateSeed", "Failed to update the seed", func(ctx context.Context) error {
		return s.api.UpdateSeed(ctx, ports.SeedsUpdateRequest{Id: id, SeedDto: dto})
	})
}

func (s *SeedService) DeleteSeed(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeleteSeed", "Failed to delete the seed", func(ctx context.Context) error {
		return s.api.DeleteSeed(ctx, id)
	})
}
