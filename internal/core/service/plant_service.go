package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

type PlantService struct {
	api ports.PlantsAPI
	c   caller
}

func NewPlantService(api ports.PlantsAPI, logger zerolog.Logger) *PlantService {
	return &PlantService{api: api, c: newCaller("plant", logger)}
}

// ListPlants returns the plants matching the optional family and species filters.
func (s *PlantService) ListPlants(ctx context.Context, f ports.PlantFilter) ([]domain.Plant, error) {
	return call(ctx, s.c, "ListPlants", "Failed to fetch the plant list", func(ctx context.Context) ([]domain.Plant, error) {
		dtos, err := s.api.ListPlants(ctx, ports.PlantsListParams{Family: f.Family, Species: f.Species})
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toPlant), nil
	})
}

func (s *PlantService) CreatePlant(ctx context.Context, dto ports.PlantDto) (*domain.Plant, error) {
	return call(ctx, s.c, "CreatePlant", "Failed to create the plant", func(ctx context.Context) (*domain.Plant, error) {
		created, err := s.api.CreatePlant(ctx, ports.PlantsCreateRequest{PlantDto: dto})
		if err != nil {
			return nil, err
		}
		p := toPlant(*created)
		return &p, nil
	})
}

func (s *PlantService) UpdatePlant(ctx context.Context, id string, dto ports.PlantDto) error {
	return exec(ctx, s.c, "UpdatePlant", "Failed to update the plant", func(ctx context.Context) error {
		return s.api.UpdatePlant(ctx, ports.PlantsUpdateRequest{Id: id, PlantDto: dto})
	})
}

func (s *PlantService) DeletePlant(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeletePlant", "Failed to delete the plant", func(ctx context.Context) error {
		return s.api.DeletePlant(ctx, id)
	})
}
