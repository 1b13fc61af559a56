package domain

import "time"

// Plant is the console view of a greenhouse plant.
type Plant struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Family        string       `json:"family"`
	Species       string       `json:"species"`
	Description   string       `json:"description"`
	GrowthStageID string       `json:"growthStageId"`
	Condition     Condition    `json:"condition"`
	Light         Light        `json:"light"`
	Flower        Flower       `json:"flower"`
	Fruit         Fruit        `json:"fruit"`
	Reproduction  Reproduction `json:"reproduction"`
}

// Seed is a stored seed batch collected from a plant.
type Seed struct {
	ID          string       `json:"id"`
	PlantID     string       `json:"plantId"`
	Name        string       `json:"name"`
	Maturity    SeedMaturity `json:"maturity"`
	Viability   Viability    `json:"viability"`
	Quantity    int          `json:"quantity"`
	CollectedAt time.Time    `json:"collectedAt"`
}

// JournalRecord is an observation an employee made about a plant.
type JournalRecord struct {
	ID            string    `json:"id"`
	PlantID       string    `json:"plantId"`
	GrowthStageID string    `json:"growthStageId"`
	EmployeeID    string    `json:"employeeId"`
	Note          string    `json:"note"`
	Condition     Condition `json:"condition"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// GrowthStage is one step of a plant's life cycle.
type GrowthStage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Client struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

type Employee struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
}

type Administrator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AuthUser is the identity behind the current bearer token.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
