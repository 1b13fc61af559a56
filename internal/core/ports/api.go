package ports

import "context"

// Client-side contracts of the greenhouse REST API, one per resource family.

type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponseDto, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponseDto, error)
	Me(ctx context.Context) (*UserDto, error)
}

type PlantsAPI interface {
	ListPlants(ctx context.Context, params PlantsListParams) ([]PlantDto, error)
	CreatePlant(ctx context.Context, req PlantsCreateRequest) (*PlantDto, error)
	UpdatePlant(ctx context.Context, req PlantsUpdateRequest) error
	DeletePlant(ctx context.Context, id string) error
}

type SeedsAPI interface {
	ListSeeds(ctx context.Context, params SeedsListParams) ([]SeedDto, error)
	CreateSeed(ctx context.Context, req SeedsCreateRequest) (*SeedDto, error)
	UpdateSeed(ctx context.Context, req SeedsUpdateRequest) error
	DeleteSeed(ctx context.Context, id string) error
}

type JournalAPI interface {
	ListRecords(ctx context.Context, params JournalListParams) ([]JournalRecordDto, error)
	CreateRecord(ctx context.Context, req JournalCreateRequest) (*JournalRecordDto, error)
	UpdateRecord(ctx context.Context, req JournalUpdateRequest) error
	DeleteRecord(ctx context.Context, id string) error
}

type GrowthStagesAPI interface {
	ListGrowthStages(ctx context.Context) ([]GrowthStageDto, error)
	CreateGrowthStage(ctx context.Context, req GrowthStagesCreateRequest) (*GrowthStageDto, error)
	UpdateGrowthStage(ctx context.Context, req GrowthStagesUpdateRequest) error
	DeleteGrowthStage(ctx context.Context, id string) error
}

type ClientsAPI interface {
	ListClients(ctx context.Context, params ClientsListParams) ([]ClientDto, error)
	CreateClient(ctx context.Context, req ClientsCreateRequest) (*ClientDto, error)
	UpdateClient(ctx context.Context, req ClientsUpdateRequest) error
	DeleteClient(ctx context.Context, id string) error
	Me(ctx context.Context) (*ClientDto, error)
}

type EmployeesAPI interface {
	ListEmployees(ctx context.Context, params EmployeesListParams) ([]EmployeeDto, error)
	CreateEmployee(ctx context.Context, req EmployeesCreateRequest) (*EmployeeDto, error)
	UpdateEmployee(ctx context.Context, req EmployeesUpdateRequest) error
	DeleteEmployee(ctx context.Context, id string) error
	Me(ctx context.Context) (*EmployeeDto, error)
}

type AdministratorsAPI interface {
	ListAdministrators(ctx context.Context) ([]AdministratorDto, error)
	CreateAdministrator(ctx context.Context, req AdministratorsCreateRequest) (*AdministratorDto, error)
	DeleteAdministrator(ctx context.Context, id string) error
}

type UsersAPI interface {
	ListUsers(ctx context.Context, params UsersListParams) ([]UserDto, error)
}
