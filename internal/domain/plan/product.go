package plan

import "github.com/andrescamacho/satisplanner-go/internal/domain/shared"

// ProductRequirement is the derived per-minute ingredient demand of a product.
type ProductRequirement struct {
	Amount float64 `json:"amount"`
}

// ByProductItem is a secondary output merged by part id. ByProductOf names
// the primary product whose recipe produced it.
type ByProductItem struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	ByProductOf string  `json:"byProductOf"`
}

// Product is one chosen output of a factory: a part id, the recipe used to
// make it, and the requested per-minute amount. Everything else on it is
// derived by the calculation pipeline.
//
// Invariant: Amount > 0 always. Zero or negative amounts are clamped to 1 so
// every recipe ratio stays defined.
type Product struct {
	ID           string  `json:"id"`
	Recipe       string  `json:"recipe"`
	Amount       float64 `json:"amount"`
	DisplayOrder int     `json:"displayOrder"`

	Requirements map[string]ProductRequirement `json:"requirements"`
	ByProducts   []ByProductItem               `json:"byProducts"`

	BuildingRequirement BuildingRequirement `json:"buildingRequirement"`

	BuildingGroups            []*BuildingGroup `json:"buildingGroups"`
	BuildingGroupItemSync     bool             `json:"buildingGroupItemSync"`
	BuildingGroupsHaveProblem bool             `json:"buildingGroupsHaveProblem"`
}

// NewProduct creates a product for a part with the given recipe and amount.
func NewProduct(partID, recipe string, amount float64) *Product {
	if amount <= 0 {
		amount = 1
	}
	return &Product{
		ID:                    partID,
		Recipe:                recipe,
		Amount:                amount,
		Requirements:          make(map[string]ProductRequirement),
		ByProducts:            make([]ByProductItem, 0),
		BuildingGroups:        make([]*BuildingGroup, 0),
		BuildingGroupItemSync: true,
	}
}

// GroupedItem capability set

func (p *Product) Requirement() BuildingRequirement { return p.BuildingRequirement }
func (p *Product) Groups() []*BuildingGroup         { return p.BuildingGroups }
func (p *Product) SetGroups(groups []*BuildingGroup) {
	p.BuildingGroups = groups
}
func (p *Product) GroupSync() bool           { return p.BuildingGroupItemSync }
func (p *Product) SetGroupSync(enabled bool) { p.BuildingGroupItemSync = enabled }
func (p *Product) SetGroupProblem(has bool)  { p.BuildingGroupsHaveProblem = has }

// PartTotals returns the product's aggregate per-minute amounts: ingredient
// consumption, the primary product itself, and byproducts.
func (p *Product) PartTotals() map[string]float64 {
	totals := make(map[string]float64, len(p.Requirements)+1+len(p.ByProducts))
	for part, req := range p.Requirements {
		totals[part] += req.Amount
	}
	totals[p.ID] += p.Amount
	for _, bp := range p.ByProducts {
		totals[bp.ID] += bp.Amount
	}
	return totals
}

// SetTargetFromEffective converts an effective building count back into a
// requested amount via the product's own per-building output rate.
func (p *Product) SetTargetFromEffective(effective float64) {
	if p.BuildingRequirement.Amount <= 0 {
		return
	}
	perBuilding := p.Amount / p.BuildingRequirement.Amount
	amount := shared.RoundAmount(effective * perBuilding)
	if amount <= 0 {
		amount = 1
	}
	p.Amount = amount
	p.BuildingRequirement.Amount = shared.RoundAmount(effective)
}
