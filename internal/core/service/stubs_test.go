package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub API clients
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func strPtr(s string) *string { return &s }
func i32Ptr(v int32) *int32   { return &v }

type stubPlantsAPI struct {
	plants     []ports.PlantDto
	err        error
	panicValue any

	listCalls  []ports.PlantsListParams
	created    []ports.PlantsCreateRequest
	updated    []ports.PlantsUpdateRequest
	deletedIDs []string
}

func (s *stubPlantsAPI) ListPlants(_ context.Context, params ports.PlantsListParams) ([]ports.PlantDto, error) {
	s.listCalls = append(s.listCalls, params)
	if s.panicValue != nil {
		panic(s.panicValue)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.plants, nil
}

func (s *stubPlantsAPI) CreatePlant(_ context.Context, req ports.PlantsCreateRequest) (*ports.PlantDto, error) {
	s.created = append(s.created, req)
	if s.err != nil {
		return nil, s.err
	}
	out := req.PlantDto
	out.Id = strPtr("plant-1")
	return &out, nil
}

func (s *stubPlantsAPI) UpdatePlant(_ context.Context, req ports.PlantsUpdateRequest) error {
	s.updated = append(s.updated, req)
	return s.err
}

func (s *stubPlantsAPI) DeletePlant(_ context.Context, id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.err
}

// stubSeedsAPI filters by maturity and viability the way the backend does.
type stubSeedsAPI struct {
	seeds     []ports.SeedDto
	err       error
	listCalls []ports.SeedsListParams
	created   []ports.SeedsCreateRequest
	updated   []ports.SeedsUpdateRequest
}

func (s *stubSeedsAPI) ListSeeds(_ context.Context, params ports.SeedsListParams) ([]ports.SeedDto, error) {
	s.listCalls = append(s.listCalls, params)
	if s.err != nil {
		return nil, s.err
	}
	var out []ports.SeedDto
	for _, seed := range s.seeds {
		if params.Maturity != nil && (seed.Maturity == nil || *seed.Maturity != *params.Maturity) {
			continue
		}
		if params.Viability != nil && (seed.Viability == nil || *seed.Viability != *params.Viability) {
			continue
		}
		out = append(out, seed)
	}
	return out, nil
}

func (s *stubSeedsAPI) CreateSeed(_ context.Context, req ports.SeedsCreateRequest) (*ports.SeedDto, error) {
	s.created = append(s.created, req)
	if s.err != nil {
		return nil, s.err
	}
	out := req.SeedDto
	out.Id = strPtr("seed-1")
	return &out, nil
}

func (s *stubSeedsAPI) UpdateSeed(_ context.Context, req ports.SeedsUpdateRequest) error {
	s.updated = append(s.updated, req)
	return s.err
}

func (s *stubSeedsAPI) DeleteSeed(_ context.Context, _ string) error { return s.err }

type stubJournalAPI struct {
	records   []ports.JournalRecordDto
	err       error
	listCalls []ports.JournalListParams
	created   []ports.JournalCreateRequest
	updated   []ports.JournalUpdateRequest
}

func (s *stubJournalAPI) ListRecords(_ context.Context, params ports.JournalListParams) ([]ports.JournalRecordDto, error) {
	s.listCalls = append(s.listCalls, params)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubJournalAPI) CreateRecord(_ context.Context, req ports.JournalCreateRequest) (*ports.JournalRecordDto, error) {
	s.created = append(s.created, req)
	if s.err != nil {
		return nil, s.err
	}
	out := req.JournalRecordDto
	out.Id = strPtr("record-1")
	return &out, nil
}

func (s *stubJournalAPI) UpdateRecord(_ context.Context, req ports.JournalUpdateRequest) error {
	s.updated = append(s.updated, req)
	return s.err
}

func (s *stubJournalAPI) DeleteRecord(_ context.Context, _ string) error { return s.err }

type stubGrowthStagesAPI struct {
	stages []ports.GrowthStageDto
	err    error
}

func (s *stubGrowthStagesAPI) ListGrowthStages(context.Context) ([]ports.GrowthStageDto, error) {
	return s.stages, s.err
}

func (s *stubGrowthStagesAPI) CreateGrowthStage(_ context.Context, req ports.GrowthStagesCreateRequest) (*ports.GrowthStageDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := req.GrowthStageDto
	out.Id = strPtr("stage-1")
	return &out, nil
}

func (s *stubGrowthStagesAPI) UpdateGrowthStage(context.Context, ports.GrowthStagesUpdateRequest) error {
	return s.err
}

func (s *stubGrowthStagesAPI) DeleteGrowthStage(context.Context, string) error { return s.err }

type stubEmployeesAPI struct {
	employees []ports.EmployeeDto
	profile   *ports.EmployeeDto
	err       error
	meErr     error
	meCalls   int
	listCalls []ports.EmployeesListParams
}

func (s *stubEmployeesAPI) ListEmployees(_ context.Context, params ports.EmployeesListParams) ([]ports.EmployeeDto, error) {
	s.listCalls = append(s.listCalls, params)
	return s.employees, s.err
}

func (s *stubEmployeesAPI) CreateEmployee(_ context.Context, req ports.EmployeesCreateRequest) (*ports.EmployeeDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := req.EmployeeDto
	out.Id = strPtr("employee-1")
	return &out, nil
}

func (s *stubEmployeesAPI) UpdateEmployee(context.Context, ports.EmployeesUpdateRequest) error {
	return s.err
}

func (s *stubEmployeesAPI) DeleteEmployee(context.Context, string) error { return s.err }

func (s *stubEmployeesAPI) Me(context.Context) (*ports.EmployeeDto, error) {
	s.meCalls++
	if s.meErr != nil {
		return nil, s.meErr
	}
	return s.profile, nil
}

type stubClientsAPI struct {
	clients   []ports.ClientDto
	err       error
	listCalls []ports.ClientsListParams
}

func (s *stubClientsAPI) ListClients(_ context.Context, params ports.ClientsListParams) ([]ports.ClientDto, error) {
	s.listCalls = append(s.listCalls, params)
	return s.clients, s.err
}

func (s *stubClientsAPI) CreateClient(_ context.Context, req ports.ClientsCreateRequest) (*ports.ClientDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := req.ClientDto
	out.Id = strPtr("client-1")
	return &out, nil
}

func (s *stubClientsAPI) UpdateClient(context.Context, ports.ClientsUpdateRequest) error { return s.err }

func (s *stubClientsAPI) DeleteClient(context.Context, string) error { return s.err }

func (s *stubClientsAPI) Me(context.Context) (*ports.ClientDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ClientDto{Id: strPtr("client-1"), Username: "cora"}, nil
}

type stubAdministratorsAPI struct {
	admins []ports.AdministratorDto
	err    error
}

func (s *stubAdministratorsAPI) ListAdministrators(context.Context) ([]ports.AdministratorDto, error) {
	return s.admins, s.err
}

func (s *stubAdministratorsAPI) CreateAdministrator(_ context.Context, req ports.AdministratorsCreateRequest) (*ports.AdministratorDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := req.AdministratorDto
	out.Id = strPtr("admin-1")
	return &out, nil
}

func (s *stubAdministratorsAPI) DeleteAdministrator(context.Context, string) error { return s.err }

type stubUsersAPI struct {
	users     []ports.UserDto
	err       error
	listCalls []ports.UsersListParams
}

func (s *stubUsersAPI) ListUsers(_ context.Context, params ports.UsersListParams) ([]ports.UserDto, error) {
	s.listCalls = append(s.listCalls, params)
	return s.users, s.err
}

// stubAuthAPI behaves like the backend: it issues tokens on login and
// answers whoami while the token is valid.
type stubAuthAPI struct {
	token      string
	loginErr   error
	meErr      error
	me         *ports.UserDto
	logins     []ports.LoginRequest
	registered []ports.RegisterRequest
	meCalls    int
}

func (s *stubAuthAPI) Login(_ context.Context, req ports.LoginRequest) (*ports.AuthResponseDto, error) {
	s.logins = append(s.logins, req)
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResponseDto{Token: s.token}, nil
}

func (s *stubAuthAPI) Register(_ context.Context, req ports.RegisterRequest) (*ports.AuthResponseDto, error) {
	s.registered = append(s.registered, req)
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResponseDto{Token: s.token, Username: strPtr(req.RegisterDto.Username)}, nil
}

func (s *stubAuthAPI) Me(context.Context) (*ports.UserDto, error) {
	s.meCalls++
	if s.meErr != nil {
		return nil, s.meErr
	}
	return s.me, nil
}

// stubServerError mimics the API client's HTTP error.
type stubServerError struct {
	status  int
	message string
}

func (e *stubServerError) Error() string {
	if e.message != "" {
		return e.message
	}
	return "request failed"
}

func (e *stubServerError) HTTPStatus() int       { return e.status }
func (e *stubServerError) ServerMessage() string { return e.message }
