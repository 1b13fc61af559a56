package greenhouseapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/greenhouse/console/internal/core/ports"
)

const plantsPath = "/api/plants"

type PlantsAPI struct{ t *transport }

var _ ports.PlantsAPI = (*PlantsAPI)(nil)

func (a *PlantsAPI) ListPlants(ctx context.Context, params ports.PlantsListParams) ([]ports.PlantDto, error) {
	q := url.Values{}
	setString(q, "family", params.Family)
	setString(q, "species", params.Species)

	var out []ports.PlantDto
	if err := a.t.do(ctx, http.MethodGet, plantsPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *PlantsAPI) CreatePlant(ctx context.Context, req ports.PlantsCreateRequest) (*ports.PlantDto, error) {
	var out ports.PlantDto
	if err := a.t.do(ctx, http.MethodPost, plantsPath, nil, req.PlantDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PlantsAPI) UpdatePlant(ctx context.Context, req ports.PlantsUpdateRequest) error {
	return a.t.do(ctx, http.MethodPut, itemPath(plantsPath, req.Id), nil, req.PlantDto, nil)
}

func (a *PlantsAPI) DeletePlant(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(plantsPath, id), nil, nil, nil)
}
