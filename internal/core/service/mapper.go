package service

import (
	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

func toPlant(d ports.PlantDto) domain.Plant {
	return domain.Plant{
		ID:            deref(d.Id),
		Name:          d.Name,
		Family:        deref(d.Family),
		Species:       deref(d.Species),
		Description:   deref(d.Description),
		GrowthStageID: deref(d.GrowthStageId),
		Condition:     domain.ConditionFromCode(code(d.Condition)),
		Light:         domain.LightFromCode(code(d.Light)),
		Flower:        domain.FlowerFromCode(code(d.Flower)),
		Fruit:         domain.FruitFromCode(code(d.Fruit)),
		Reproduction:  domain.ReproductionFromCode(code(d.Reproduction)),
	}
}

func toSeed(d ports.SeedDto) domain.Seed {
	return domain.Seed{
		ID:          deref(d.Id),
		PlantID:     deref(d.PlantId),
		Name:        d.Name,
		Maturity:    domain.SeedMaturity(deref(d.Maturity)),
		Viability:   domain.ViabilityFromCode(code(d.Viability)),
		Quantity:    code(d.Quantity),
		CollectedAt: timeOf(d.CollectedAt),
	}
}

func toJournalRecord(d ports.JournalRecordDto) domain.JournalRecord {
	return domain.JournalRecord{
		ID:            deref(d.Id),
		PlantID:       d.PlantId,
		GrowthStageID: deref(d.GrowthStageId),
		EmployeeID:    deref(d.EmployeeId),
		Note:          deref(d.Note),
		Condition:     domain.ConditionFromCode(code(d.Condition)),
		RecordedAt:    timeOf(d.RecordedAt),
	}
}

func toGrowthStage(d ports.GrowthStageDto) domain.GrowthStage {
	return domain.GrowthStage{
		ID:          deref(d.Id),
		Name:        d.Name,
		Description: deref(d.Description),
		Order:       code(d.Order),
	}
}

func toClient(d ports.ClientDto) domain.Client {
	return domain.Client{
		ID:       deref(d.Id),
		Username: d.Username,
		Email:    deref(d.Email),
		FullName: deref(d.FullName),
		Phone:    deref(d.Phone),
		Company:  deref(d.Company),
	}
}

func toEmployee(d ports.EmployeeDto) domain.Employee {
	return domain.Employee{
		ID:       deref(d.Id),
		Username: d.Username,
		Email:    deref(d.Email),
		FullName: deref(d.FullName),
		Position: deref(d.Position),
	}
}

func toAdministrator(d ports.AdministratorDto) domain.Administrator {
	return domain.Administrator{
		ID:       deref(d.Id),
		Username: d.Username,
		Email:    deref(d.Email),
		FullName: deref(d.FullName),
	}
}

func toAuthUser(d ports.UserDto) domain.AuthUser {
	return domain.AuthUser{
		ID:       deref(d.Id),
		Username: d.Username,
		Email:    deref(d.Email),
		Role:     d.Role,
	}
}

// mapAll converts a list; the result is never nil.
func mapAll[D, V any](in []D, fn func(D) V) []V {
	out := make([]V, 0, len(in))
	for _, d := range in {
		out = append(out, fn(d))
	}
	return out
}
