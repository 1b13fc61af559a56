package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/ports"
)

// JournalHandler serves journal records and the growth stage catalogue.
type JournalHandler struct {
	journal   ports.JournalService
	employees ports.EmployeeService
}

func NewJournalHandler(journal ports.JournalService, employees ports.EmployeeService) *JournalHandler {
	return &JournalHandler{journal: journal, employees: employees}
}

// ListRecords returns every record matching the optional plantId, employeeId
// and growthStageId filters.
func (h *JournalHandler) ListRecords(c echo.Context) error {
	f := ports.JournalFilter{
		PlantID:       queryPtr(c, "plantId"),
		EmployeeID:    queryPtr(c, "employeeId"),
		GrowthStageID: queryPtr(c, "growthStageId"),
	}
	records, err := h.journal.ListRecords(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// ListMine returns the records of the signed-in employee.
func (h *JournalHandler) ListMine(c echo.Context) error {
	records, err := h.journal.ListMyRecords(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// CreateRecord attributes the record to the signed-in employee unless the
// body names one.
func (h *JournalHandler) CreateRecord(c echo.Context) error {
	var dto ports.JournalRecordDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if dto.EmployeeId == nil {
		id, err := h.employees.CurrentEmployeeID(ctx)
		if err != nil {
			return err
		}
		dto.EmployeeId = &id
	}

	created, err := h.journal.CreateRecord(ctx, dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *JournalHandler) UpdateRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var dto ports.JournalRecordDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	if err := h.journal.UpdateRecord(c.Request().Context(), id, dto); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *JournalHandler) DeleteRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.journal.DeleteRecord(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *JournalHandler) ListGrowthStages(c echo.Context) error {
	stages, err := h.journal.ListGrowthStages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stages)
}

func (h *JournalHandler) CreateGrowthStage(c echo.Context) error {
	var dto ports.GrowthStageDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	created, err := h.journal.CreateGrowthStage(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *JournalHandler) UpdateGrowthStage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var dto ports.GrowthStageDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	if err := h.journal.UpdateGrowthStage(c.Request().Context(), id, dto); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *JournalHandler) DeleteGrowthStage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.journal.DeleteGrowthStage(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
