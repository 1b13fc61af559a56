package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/ports"
)

// PlantHandler serves the plant catalogue.
type PlantHandler struct {
	plants ports.PlantService
}

func NewPlantHandler(plants ports.PlantService) *PlantHandler {
	return &PlantHandler{plants: plants}
}

// List supports the optional family and species query filters.
func (h *PlantHandler) List(c echo.Context) error {
	f := ports.PlantFilter{Family: queryPtr(c, "family"), Species: queryPtr(c, "species")}
	plants, err := h.plants.ListPlants(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plants)
}

func (h *PlantHandler) Create(c echo.Context) error {
	var dto ports.PlantDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	created, err := h.plants.CreatePlant(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PlantHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var dto ports.PlantDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	if err := h.plants.UpdatePlant(c.Request().Context(), id, dto); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlantHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.plants.DeletePlant(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SeedHandler serves the seed bank.
type SeedHandler struct {
	seeds ports.SeedService
}

func NewSeedHandler(seeds ports.SeedService) *SeedHandler {
	return &SeedHandler{seeds: seeds}
}

// List supports the optional maturity (IMMATURE|MATURE|OVERMATURE) and
// viability (0-3) query filters.
func (h *SeedHandler) List(c echo.Context) error {
	maturity, err := parseMaturity(c)
	if err != nil {
		return err
	}
	viability, err := parseViability(c)
	if err != nil {
		return err
	}

	seeds, err := h.seeds.ListSeeds(c.Request().Context(), ports.SeedFilter{Maturity: maturity, Viability: viability})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seeds)
}

func (h *SeedHandler) Create(c echo.Context) error {
	var dto ports.SeedDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	created, err := h.seeds.CreateSeed(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *SeedHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var dto ports.SeedDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	if err := h.seeds.UpdateSeed(c.Request().Context(), id, dto); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SeedHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.seeds.DeleteSeed(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
