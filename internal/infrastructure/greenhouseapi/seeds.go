package greenhouseapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/greenhouse/console/internal/core/ports"
)

const seedsPath = "/api/seeds"

type SeedsAPI struct{ t *transport }

var _ ports.SeedsAPI = (*SeedsAPI)(nil)

func (a *SeedsAPI) ListSeeds(ctx context.Context, params ports.SeedsListParams) ([]ports.SeedDto, error) {
	q := url.Values{}
	setString(q, "maturity", params.Maturity)
	setInt(q, "viability", params.Viability)

	var out []ports.SeedDto
	if err := a.t.do(ctx, http.MethodGet, seedsPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SeedsAPI) CreateSeed(ctx context.Context, req ports.SeedsCreateRequest) (*ports.SeedDto, error) {
	var out ports.SeedDto
	if err := a.t.do(ctx, http.MethodPost, seedsPath, nil, req.SeedDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SeedsAPI) UpdateSeed(ctx context.Context, req ports.SeedsUpdateRequest) error {
	return a.t.do(ctx, http.MethodPut, itemPath(seedsPath, req.Id), nil, req.SeedDto, nil)
}

func (a *SeedsAPI) DeleteSeed(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(seedsPath, id), nil, nil, nil)
}
