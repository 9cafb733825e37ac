package plan

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// UpdateSource tags which of a power producer's four requested quantities was
// edited last. Exactly one quantity is the source of truth per recompute; the
// other three are re-derived from it.
type UpdateSource string

const (
	UpdatedBuildings  UpdateSource = "buildings"
	UpdatedFuel       UpdateSource = "fuel"
	UpdatedPower      UpdateSource = "power"
	UpdatedIngredient UpdateSource = "ingredient"
)

// Valid reports whether s is one of the four known update sources.
func (s UpdateSource) Valid() bool {
	switch s {
	case UpdatedBuildings, UpdatedFuel, UpdatedPower, UpdatedIngredient:
		return true
	}
	return false
}

// PowerIngredient is a derived fuel or supplemental requirement of a power
// producer, in items per minute.
type PowerIngredient struct {
	Part         string  `json:"part"`
	Amount       float64 `json:"amount"`
	Supplemental bool    `json:"supplemental"`
}

// PowerProducer is a batch of generator buildings burning one fuel recipe.
type PowerProducer struct {
	ID       string `json:"id"`
	Building string `json:"building"`
	Recipe   string `json:"recipe"`

	// Requested quantities; Updated selects the source of truth.
	BuildingAmount   float64 `json:"buildingAmount"`
	PowerAmount      float64 `json:"powerAmount"`
	FuelAmount       float64 `json:"fuelAmount"`
	IngredientAmount float64 `json:"ingredientAmount"`

	Updated UpdateSource `json:"updated"`

	// Derived quantities.
	BuildingCount float64           `json:"buildingCount"`
	PowerProduced float64           `json:"powerProduced"`
	Ingredients   []PowerIngredient `json:"ingredients"`
	ByProduct     *ByProductItem    `json:"byProduct,omitempty"`

	BuildingRequirement BuildingRequirement `json:"buildingRequirement"`

	DisplayOrder int `json:"displayOrder"`

	BuildingGroups            []*BuildingGroup `json:"buildingGroups"`
	BuildingGroupItemSync     bool             `json:"buildingGroupItemSync"`
	BuildingGroupsHaveProblem bool             `json:"buildingGroupsHaveProblem"`
}

// NewPowerProducer creates a producer with a requested building count as the
// initial source of truth.
func NewPowerProducer(building, recipe string, buildingAmount float64) *PowerProducer {
	if buildingAmount <= 0 {
		buildingAmount = 1
	}
	return &PowerProducer{
		ID:                    uuid.NewString(),
		Building:              building,
		Recipe:                recipe,
		BuildingAmount:        buildingAmount,
		Updated:               UpdatedBuildings,
		Ingredients:           make([]PowerIngredient, 0),
		BuildingGroups:        make([]*BuildingGroup, 0),
		BuildingGroupItemSync: true,
	}
}

// GroupedItem capability set

func (p *PowerProducer) Requirement() BuildingRequirement { return p.BuildingRequirement }
func (p *PowerProducer) Groups() []*BuildingGroup         { return p.BuildingGroups }
func (p *PowerProducer) SetGroups(groups []*BuildingGroup) {
	p.BuildingGroups = groups
}
func (p *PowerProducer) GroupSync() bool           { return p.BuildingGroupItemSync }
func (p *PowerProducer) SetGroupSync(enabled bool) { p.BuildingGroupItemSync = enabled }
func (p *PowerProducer) SetGroupProblem(has bool)  { p.BuildingGroupsHaveProblem = has }

// PartTotals returns the producer's aggregate per-minute amounts: fuel and
// supplemental consumption plus the waste byproduct.
func (p *PowerProducer) PartTotals() map[string]float64 {
	totals := make(map[string]float64, len(p.Ingredients)+1)
	for _, ing := range p.Ingredients {
		totals[ing.Part] += ing.Amount
	}
	if p.ByProduct != nil {
		totals[p.ByProduct.ID] += p.ByProduct.Amount
	}
	return totals
}

// SetTargetFromEffective makes the building count the source of truth at the
// given effective count.
func (p *PowerProducer) SetTargetFromEffective(effective float64) {
	count := shared.RoundAmount(effective)
	if count <= 0 {
		count = 1
	}
	p.BuildingAmount = count
	p.Updated = UpdatedBuildings
	p.BuildingRequirement.Amount = count
}
