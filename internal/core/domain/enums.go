package domain

// Condition is the health state recorded for a plant or journal entry.
type Condition int

const (
	ConditionUnknown   Condition = 0
	ConditionHealthy   Condition = 1
	ConditionNeedsCare Condition = 2
	ConditionDiseased  Condition = 3
	ConditionDead      Condition = 4
)

// Viability grades how likely a seed batch is to germinate.
type Viability int

const (
	ViabilityUnknown Viability = 0
	ViabilityLow     Viability = 1
	ViabilityMedium  Viability = 2
	ViabilityHigh    Viability = 3
)

// Light is the light requirement of a plant.
type Light int

const (
	LightUnknown      Light = 0
	LightShade        Light = 1
	LightPartialShade Light = 2
	LightFullSun      Light = 3
)

// Flower reports whether a plant is flowering.
type Flower int

const (
	FlowerUnknown Flower = 0
	FlowerAbsent  Flower = 1
	FlowerPresent Flower = 2
)

// Fruit reports whether a plant bears fruit.
type Fruit int

const (
	FruitUnknown Fruit = 0
	FruitAbsent  Fruit = 1
	FruitPresent Fruit = 2
)

// Reproduction is the propagation method of a plant.
type Reproduction int

const (
	ReproductionUnknown  Reproduction = 0
	ReproductionSeed     Reproduction = 1
	ReproductionCutting  Reproduction = 2
	ReproductionDivision Reproduction = 3
	ReproductionGrafting Reproduction = 4
)

// SeedMaturity is the ripeness stage of a seed batch.
type SeedMaturity string

const (
	MaturityImmature   SeedMaturity = "IMMATURE"
	MaturityMature     SeedMaturity = "MATURE"
	MaturityOvermature SeedMaturity = "OVERMATURE"
)

// Valid reports whether m is one of the known maturity stages.
func (m SeedMaturity) Valid() bool {
	switch m {
	case MaturityImmature, MaturityMature, MaturityOvermature:
		return true
	}
	return false
}

// inRange maps codes outside [0, max] to 0.
func inRange(code, max int) int {
	if code < 0 || code > max {
		return 0
	}
	return code
}

// ConditionFromCode normalizes a wire code; unknown codes become ConditionUnknown.
func ConditionFromCode(code int) Condition {
	return Condition(inRange(code, int(ConditionDead)))
}

// ViabilityFromCode normalizes a wire code; unknown codes become ViabilityUnknown.
func ViabilityFromCode(code int) Viability {
	return Viability(inRange(code, int(ViabilityHigh)))
}

// LightFromCode normalizes a wire code; unknown codes become LightUnknown.
func LightFromCode(code int) Light {
	return Light(inRange(code, int(LightFullSun)))
}

// FlowerFromCode normalizes a wire code; unknown codes become FlowerUnknown.
func FlowerFromCode(code int) Flower {
	return Flower(inRange(code, int(FlowerPresent)))
}

// FruitFromCode normalizes a wire code; unknown codes become FruitUnknown.
func FruitFromCode(code int) Fruit {
	return Fruit(inRange(code, int(FruitPresent)))
}

// ReproductionFromCode normalizes a wire code; unknown codes become ReproductionUnknown.
func ReproductionFromCode(code int) Reproduction {
	return Reproduction(inRange(code, int(ReproductionGrafting)))
}
