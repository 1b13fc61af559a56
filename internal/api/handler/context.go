package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/domain"
)

// queryPtr returns the query parameter as a pointer, or nil when the key is
// absent. An empty value that is present is forwarded as "".
func queryPtr(c echo.Context, name string) *string {
	params := c.QueryParams()
	if !params.Has(name) {
		return nil
	}
	v := params.Get(name)
	return &v
}

// bindValid binds the request body into dst and runs the registered validator.
func bindValid(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// pathID returns the :id route parameter, failing fast when it is blank.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return id, nil
}

func parseMaturity(c echo.Context) (*domain.SeedMaturity, error) {
	raw := queryPtr(c, "maturity")
	if raw == nil {
		return nil, nil
	}
	m := domain.SeedMaturity(*raw)
	if !m.Valid() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "maturity must be one of: IMMATURE MATURE OVERMATURE")
	}
	return &m, nil
}

func parseViability(c echo.Context) (*domain.Viability, error) {
	raw := queryPtr(c, "viability")
	if raw == nil {
		return nil, nil
	}
	code, err := strconv.Atoi(*raw)
	if err != nil || code < int(domain.ViabilityUnknown) || code > int(domain.ViabilityHigh) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "viability must be a code between 0 and 3")
	}
	v := domain.Viability(code)
	return &v, nil
}
