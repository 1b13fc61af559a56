package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

// JournalService covers journal records and the growth stages they refer to.
type JournalService struct {
	records ports.JournalAPI
	stages  ports.GrowthStagesAPI
	c       caller
}

func NewJournalService(records ports.JournalAPI, stages ports.GrowthStagesAPI, logger zerolog.Logger) *JournalService {
	return &JournalService{records: records, stages: stages, c: newCaller("journal", logger)}
}

func (s *JournalService) ListRecords(ctx context.Context, f ports.JournalFilter) ([]domain.JournalRecord, error) {
	params := ports.JournalListParams{
		PlantId:       f.PlantID,
		EmployeeId:    f.EmployeeID,
		GrowthStageId: f.GrowthStageID,
	}
	return call(ctx, s.c, "ListRecords", "Failed to fetch the journal", func(ctx context.Context) ([]domain.JournalRecord, error) {
		dtos, err := s.records.ListRecords(ctx, params)
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toJournalRecord), nil
	})
}

// ListMyRecords lists the caller's own records. No employee filter is sent;
// the server scopes the list by the bearer token.
func (s *JournalService) ListMyRecords(ctx context.Context) ([]domain.JournalRecord, error) {
	return call(ctx, s.c, "ListMyRecords", "Failed to fetch your journal records", func(ctx context.Context) ([]domain.JournalRecord, error) {
		dtos, err := s.records.ListRecords(ctx, ports.JournalListParams{})
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toJournalRecord), nil
	})
}

func (s *JournalService) CreateRecord(ctx context.Context, dto ports.JournalRecordDto) (*domain.JournalRecord, error) {
	return call(ctx, s.c, "CreateRecord", "Failed to create the journal record", func(ctx context.Context) (*domain.JournalRecord, error) {
		created, err := s.records.CreateRecord(ctx, ports.JournalCreateRequest{JournalRecordDto: dto})
		if err != nil {
			return nil, err
		}
		r := toJournalRecord(*created)
		return &r, nil
	})
}

func (s *JournalService) UpdateRecord(ctx context.Context, id string, dto ports.JournalRecordDto) error {
	return exec(ctx, s.c, "UpdateRecord", "Failed to update the journal record", func(ctx context.Context) error {
		return s.records.UpdateRecord(ctx, ports.JournalUpdateRequest{Id: id, JournalRecordDto: dto})
	})
}

func (s *JournalService) DeleteRecord(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeleteRecord", "Failed to delete the journal record", func(ctx context.Context) error {
		return s.records.DeleteRecord(ctx, id)
	})
}

func (s *JournalService) ListGrowthStages(ctx context.Context) ([]domain.GrowthStage, error) {
	return call(ctx, s.c, "ListGrowthStages", "Failed to fetch the growth stages", func(ctx context.Context) ([]domain.GrowthStage, error) {
		dtos, err := s.stages.ListGrowthStages(ctx)
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toGrowthStage), nil
	})
}

func (s *JournalService) CreateGrowthStage(ctx context.Context, dto ports.GrowthStageDto) (*domain.GrowthStage, error) {
	return call(ctx, s.c, "CreateGrowthStage", "Failed to create the growth stage", func(ctx context.Context) (*domain.GrowthStage, error) {
		created, err := s.stages.CreateGrowthStage(ctx, ports.GrowthStagesCreateRequest{GrowthStageDto: dto})
		if err != nil {
			return nil, err
		}
		g := toGrowthStage(*created)
		return &g, nil
	})
}

func (s *JournalService) UpdateGrowthStage(ctx context.Context, id string, dto ports.GrowthStageDto) error {
	return exec(ctx, s.c, "UpdateGrowthStage", "Failed to update the growth stage", func(ctx context.Context) error {
		return s.stages.UpdateGrowthStage(ctx, ports.GrowthStagesUpdateRequest{Id: id, GrowthStageDto: dto})
	})
}

func (s *JournalService) DeleteGrowthStage(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeleteGrowthStage", "Failed to delete the growth stage", func(ctx context.Context) error {
		return s.stages.DeleteGrowthStage(ctx, id)
	})
}
