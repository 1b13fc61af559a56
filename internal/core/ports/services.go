package ports

import (
	"context"

	"github.com/greenhouse/console/internal/core/domain"
)

// Service-level filters. Every field is optional; nil means "not filtered".

type PlantFilter struct {
	Family  *string
	Species *string
}

type SeedFilter struct {
	Maturity  *domain.SeedMaturity
	Viability *domain.Viability
}

type JournalFilter struct {
	PlantID       *string
	EmployeeID    *string
	GrowthStageID *string
}

type PlantService interface {
	ListPlants(ctx context.Context, f PlantFilter) ([]domain.Plant, error)
	CreatePlant(ctx context.Context, dto PlantDto) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, id string, dto PlantDto) error
	DeletePlant(ctx context.Context, id string) error
}

type SeedService interface {
	ListSeeds(ctx context.Context, f SeedFilter) ([]domain.Seed, error)
	CreateSeed(ctx context.Context, dto SeedDto) (*domain.Seed, error)
	UpdateSeed(ctx context.Context, id string, dto SeedDto) error
	DeleteSeed(ctx context.Context, id string) error
}

type JournalService interface {
	ListRecords(ctx context.Context, f JournalFilter) ([]domain.JournalRecord, error)
	ListMyRecords(ctx context.Context) ([]domain.JournalRecord, error)
	CreateRecord(ctx context.Context, dto JournalRecordDto) (*domain.JournalRecord, error)
	UpdateRecord(ctx context.Context, id string, dto JournalRecordDto) error
	DeleteRecord(ctx context.Context, id string) error
	ListGrowthStages(ctx context.Context) ([]domain.GrowthStage, error)
	CreateGrowthStage(ctx context.Context, dto GrowthStageDto) (*domain.GrowthStage, error)
	UpdateGrowthStage(ctx context.Context, id string, dto GrowthStageDto) error
	DeleteGrowthStage(ctx context.Context, id string) error
}

type ClientService interface {
	ListClients(ctx context.Context, search *string) ([]domain.Client, error)
	CreateClient(ctx context.Context, dto ClientDto) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, dto ClientDto) error
	DeleteClient(ctx context.Context, id string) error
	CurrentClient(ctx context.Context) (*domain.Client, error)
}

type EmployeeService interface {
	ListEmployees(ctx context.Context, position *string) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, dto EmployeeDto) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, dto EmployeeDto) error
	DeleteEmployee(ctx context.Context, id string) error
	CurrentEmployeeID(ctx context.Context) (string, error)
}

type AdminService interface {
	ListAdministrators(ctx context.Context) ([]domain.Administrator, error)
	CreateAdministrator(ctx context.Context, dto AdministratorDto) (*domain.Administrator, error)
	DeleteAdministrator(ctx context.Context, id string) error
}

type UserService interface {
	ListUsers(ctx context.Context, role *string) ([]domain.AuthUser, error)
	CurrentUser(ctx context.Context) (*domain.AuthUser, error)
	DeleteUser(ctx context.Context, id string) error
}

// LoginInput carries the credentials for SessionController.Login.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	// Remember selects persistent storage over session-only storage.
	Remember bool `json:"remember"`
}

// RegisterInput carries a new account for SessionController.Register.
type RegisterInput struct {
	Username string      `json:"username" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
	Remember bool        `json:"remember"`
}

// LoginResult is what a successful login or registration yields.
type LoginResult struct {
	Username string      `json:"username"`
	Token    string      `json:"token"`
	Role     domain.Role `json:"role"`
}

type SessionController interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (*domain.AuthUser, error)
	Role(ctx context.Context) domain.Role
	State() domain.SessionState
	Subscribe(fn func(domain.SessionTransition))
}

// AdminDashboard, EmployeeDashboard and ClientDashboard are the role-specific
// landing payloads. Lists whose fetch failed are empty, never nil.

type AdminDashboard struct {
	Plants         []domain.Plant         `json:"plants"`
	Seeds          []domain.Seed          `json:"seeds"`
	GrowthStages   []domain.GrowthStage   `json:"growthStages"`
	Employees      []domain.Employee      `json:"employees"`
	Clients        []domain.Client        `json:"clients"`
	Administrators []domain.Administrator `json:"administrators"`
}

type EmployeeDashboard struct {
	Plants       []domain.Plant         `json:"plants"`
	Seeds        []domain.Seed          `json:"seeds"`
	GrowthStages []domain.GrowthStage   `json:"growthStages"`
	Records      []domain.JournalRecord `json:"records"`
}

type ClientDashboard struct {
	Plants []domain.Plant `json:"plants"`
	Seeds  []domain.Seed  `json:"seeds"`
}

type DashboardService interface {
	Admin(ctx context.Context) *AdminDashboard
	Employee(ctx context.Context) *EmployeeDashboard
	Client(ctx context.Context) *ClientDashboard
}
