package ports

import (
	"time"

	"github.com/greenhouse/console/internal/core/domain"
)

// Wire records exchanged with the greenhouse backend. Optional fields are
// pointers; enum fields carry the raw integer code.

type PlantDto struct {
	Id            *string `json:"id,omitempty"`
	Name          string  `json:"name" validate:"required"`
	Family        *string `json:"family,omitempty"`
	Species       *string `json:"species,omitempty"`
	Description   *string `json:"description,omitempty"`
	GrowthStageId *string `json:"growthStageId,omitempty"`
	Condition     *int32  `json:"condition,omitempty"`
	Light         *int32  `json:"light,omitempty"`
	Flower        *int32  `json:"flower,omitempty"`
	Fruit         *int32  `json:"fruit,omitempty"`
	Reproduction  *int32  `json:"reproduction,omitempty"`
}

type SeedDto struct {
	Id          *string    `json:"id,omitempty"`
	PlantId     *string    `json:"plantId,omitempty"`
	Name        string     `json:"name" validate:"required"`
	Maturity    *string    `json:"maturity,omitempty"`
	Viability   *int32     `json:"viability,omitempty"`
	Quantity    *int32     `json:"quantity,omitempty"`
	CollectedAt *time.Time `json:"collectedAt,omitempty"`
}

type JournalRecordDto struct {
	Id            *string    `json:"id,omitempty"`
	PlantId       string     `json:"plantId" validate:"required"`
	GrowthStageId *string    `json:"growthStageId,omitempty"`
	EmployeeId    *string    `json:"employeeId,omitempty"`
	Note          *string    `json:"note,omitempty"`
	Condition     *int32     `json:"condition,omitempty"`
	RecordedAt    *time.Time `json:"recordedAt,omitempty"`
}

type GrowthStageDto struct {
	Id          *string `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Order       *int32  `json:"order,omitempty"`
}

type ClientDto struct {
	Id       *string `json:"id,omitempty"`
	Username string  `json:"username" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	Password *string `json:"password,omitempty"`
}

type EmployeeDto struct {
	Id       *string `json:"id,omitempty"`
	Username string  `json:"username" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"fullName,omitempty"`
	Position *string `json:"position,omitempty"`
	Password *string `json:"password,omitempty"`
}

type AdministratorDto struct {
	Id       *string `json:"id,omitempty"`
	Username string  `json:"username" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"fullName,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserDto is the account record shared by every role.
type UserDto struct {
	Id       *string     `json:"id,omitempty"`
	Username string      `json:"username"`
	Email    *string     `json:"email,omitempty"`
	Role     domain.Role `json:"role"`
}

type LoginDto struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterDto struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	FullName *string      `json:"fullName,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
}

// AuthResponseDto is returned by login and register.
type AuthResponseDto struct {
	Token    string       `json:"token"`
	Username *string      `json:"username,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
}

// Request parameter structs, one per client operation. List filters are
// independently optional: a nil field is left out of the request.

type PlantsListParams struct {
	Family  *string
	Species *string
}

type PlantsCreateRequest struct{ PlantDto PlantDto }

type PlantsUpdateRequest struct {
	Id       string
	PlantDto PlantDto
}

type SeedsListParams struct {
	Maturity  *string
	Viability *int32
}

type SeedsCreateRequest struct{ SeedDto SeedDto }

type SeedsUpdateRequest struct {
	Id      string
	SeedDto SeedDto
}

type JournalListParams struct {
	PlantId       *string
	EmployeeId    *string
	GrowthStageId *string
}

type JournalCreateRequest struct{ JournalRecordDto JournalRecordDto }

type JournalUpdateRequest struct {
	Id               string
	JournalRecordDto JournalRecordDto
}

type GrowthStagesCreateRequest struct{ GrowthStageDto GrowthStageDto }

type GrowthStagesUpdateRequest struct {
	Id             string
	GrowthStageDto GrowthStageDto
}

type ClientsListParams struct {
	Search *string
}

type ClientsCreateRequest struct{ ClientDto ClientDto }

type ClientsUpdateRequest struct {
	Id        string
	ClientDto ClientDto
}

type EmployeesListParams struct {
	Position *string
}

type EmployeesCreateRequest struct{ EmployeeDto EmployeeDto }

type EmployeesUpdateRequest struct {
	Id          string
	EmployeeDto EmployeeDto
}

type AdministratorsCreateRequest struct{ AdministratorDto AdministratorDto }

type UsersListParams struct {
	Role *string
}

type LoginRequest struct{ LoginDto LoginDto }

type RegisterRequest struct{ RegisterDto RegisterDto }
