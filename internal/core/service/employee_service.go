package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

// EmployeeService manages employees and caches the current employee's id.
// The cache is filled by the first successful CurrentEmployeeID call and
// dropped by Invalidate, which the session controller runs on logout.
type EmployeeService struct {
	api ports.EmployeesAPI
	c   caller

	mu        sync.Mutex
	currentID string
}

func NewEmployeeService(api ports.EmployeesAPI, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{api: api, c: newCaller("employee", logger)}
}

func (s *EmployeeService) ListEmployees(ctx context.Context, position *string) ([]domain.Employee, error) {
	return call(ctx, s.c, "ListEmployees", "Failed to fetch the employee list", func(ctx context.Context) ([]domain.Employee, error) {
		dtos, err := s.api.ListEmployees(ctx, ports.EmployeesListParams{Position: position})
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toEmployee), nil
	})
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, dto ports.EmployeeDto) (*domain.Employee, error) {
	return call(ctx, s.c, "CreateEmployee", "Failed to create the employee", func(ctx context.Context) (*domain.Employee, error) {
		created, err := s.api.CreateEmployee(ctx, ports.EmployeesCreateRequest{EmployeeDto: dto})
		if err != nil {
			return nil, err
		}
		e := toEmployee(*created)
		return &e, nil
	})
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, dto ports.EmployeeDto) error {
	return exec(ctx, s.c, "UpdateEmployee", "Failed to update the employee", func(ctx context.Context) error {
		return s.api.UpdateEmployee(ctx, ports.EmployeesUpdateRequest{Id: id, EmployeeDto: dto})
	})
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	return exec(ctx, s.c, "DeleteEmployee", "Failed to delete the employee", func(ctx context.Context) error {
		return s.api.DeleteEmployee(ctx, id)
	})
}

// CurrentEmployeeID returns the id of the employee behind the bearer token.
// Only the first call reaches the server. A profile without an id fails with
// domain.ErrMissingEmployeeID and leaves the cache empty.
func (s *EmployeeService) CurrentEmployeeID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID != "" {
		return s.currentID, nil
	}

	profile, err := call(ctx, s.c, "CurrentEmployeeID", "Failed to fetch the employee profile", s.api.Me)
	if err != nil {
		return "", err
	}
	if profile == nil || deref(profile.Id) == "" {
		s.c.log.Error().Str("op", "CurrentEmployeeID").Msg("profile response has no id")
		return "", domain.ErrMissingEmployeeID
	}

	s.currentID = *profile.Id
	return s.currentID, nil
}

// Invalidate drops the cached employee id.
func (s *EmployeeService) Invalidate() {
	s.mu.Lock()
	s.currentID = ""
	s.mu.Unlock()
}
