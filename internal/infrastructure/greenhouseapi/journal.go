package greenhouseapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/greenhouse/console/internal/core/ports"
)

const (
	journalPath      = "/api/journal"
	growthStagesPath = "/api/growth-stages"
)

// JournalAPI manages journal records. Without an employeeId filter the
// server scopes the list to the caller's own records for employee tokens.
type JournalAPI struct{ t *transport }

var _ ports.JournalAPI = (*JournalAPI)(nil)

func (a *JournalAPI) ListRecords(ctx context.Context, params ports.JournalListParams) ([]ports.JournalRecordDto, error) {
	q := url.Values{}
	setString(q, "plantId", params.PlantId)
	setString(q, "employeeId", params.EmployeeId)
	setString(q, "growthStageId", params.GrowthStageId)

	var out []ports.JournalRecordDto
	if err := a.t.do(ctx, http.MethodGet, journalPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *JournalAPI) CreateRecord(ctx context.Context, req ports.JournalCreateRequest) (*ports.JournalRecordDto, error) {
	var out ports.JournalRecordDto
	if err := a.t.do(ctx, http.MethodPost, journalPath, nil, req.JournalRecordDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JournalAPI) UpdateRecord(ctx context.Context, req ports.JournalUpdateRequest) error {
	return a.t.do(ctx, http.MethodPut, itemPath(journalPath, req.Id), nil, req.JournalRecordDto, nil)
}

func (a *JournalAPI) DeleteRecord(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(journalPath, id), nil, nil, nil)
}

type GrowthStagesAPI struct{ t *transport }

var _ ports.GrowthStagesAPI = (*GrowthStagesAPI)(nil)

func (a *GrowthStagesAPI) ListGrowthStages(ctx context.Context) ([]ports.GrowthStageDto, error) {
	var out []ports.GrowthStageDto
	if err := a.t.do(ctx, http.MethodGet, growthStagesPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *GrowthStagesAPI) CreateGrowthStage(ctx context.Context, req ports.GrowthStagesCreateRequest) (*ports.GrowthStageDto, error) {
	var out ports.GrowthStageDto
	if err := a.t.do(ctx, http.MethodPost, growthStagesPath, nil, req.GrowthStageDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *GrowthStagesAPI) UpdateGrowthStage(ctx context.Context, req ports.GrowthStagesUpdateRequest) error {
	return a.t.do(ctx, http.MethodPut, itemPath(growthStagesPath, req.Id), nil, req.GrowthStageDto, nil)
}

func (a *GrowthStagesAPI) DeleteGrowthStage(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(growthStagesPath, id), nil, nil, nil)
}
