package services_test

import (
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
)

// stubCatalogue is an in-memory catalogue for solver tests.
type stubCatalogue struct {
	parts        map[string]*gamedata.Part
	recipes      map[string]*gamedata.Recipe
	powerRecipes map[string]*gamedata.PowerRecipe
	buildings    map[string]*gamedata.Building
}

func (c *stubCatalogue) Recipe(id string) (*gamedata.Recipe, bool) {
	r, ok := c.recipes[id]
	return r, ok
}

func (c *stubCatalogue) PowerRecipe(id string) (*gamedata.PowerRecipe, bool) {
	r, ok := c.powerRecipes[id]
	return r, ok
}

func (c *stubCatalogue) Building(id string) (*gamedata.Building, bool) {
	b, ok := c.buildings[id]
	return b, ok
}

func (c *stubCatalogue) BuildingPower(id string) float64 {
	if b, ok := c.buildings[id]; ok {
		return b.Power
	}
	return 0
}

func (c *stubCatalogue) Part(id string) (*gamedata.Part, bool) {
	p, ok := c.parts[id]
	return p, ok
}

func (c *stubCatalogue) PartName(id string) string {
	if p, ok := c.parts[id]; ok && p.Name != "" {
		return p.Name
	}
	return id
}

func (c *stubCatalogue) Version() string { return "test" }

// newTestCatalogue builds a small but realistic data set: an iron chain
// (raw ore, smelter, constructor), an alloy recipe with a byproduct, and a
// coal generator with a water supplemental.
func newTestCatalogue() *stubCatalogue {
	return &stubCatalogue{
		parts: map[string]*gamedata.Part{
			"iron-ore":   {ID: "iron-ore", Name: "Iron Ore", IsRaw: true},
			"coal":       {ID: "coal", Name: "Coal", IsRaw: true},
			"water":      {ID: "water", Name: "Water", IsRaw: true},
			"iron-ingot": {ID: "iron-ingot", Name: "Iron Ingot"},
			"iron-plate": {ID: "iron-plate", Name: "Iron Plate"},
			"alloy":      {ID: "alloy", Name: "Alloy Ingot"},
			"slag":       {ID: "slag", Name: "Slag"},
		},
		recipes: map[string]*gamedata.Recipe{
			"iron-ingot": {
				ID:       "iron-ingot",
				Building: "smelter",
				Ingredients: []gamedata.RecipeItem{
					{Part: "iron-ore", Amount: 1, PerMin: 30},
				},
				Products: []gamedata.RecipeItem{
					{Part: "iron-ingot", Amount: 1, PerMin: 30},
				},
			},
			"iron-plate": {
				ID:       "iron-plate",
				Building: "constructor",
				Ingredients: []gamedata.RecipeItem{
					{Part: "iron-ingot", Amount: 3, PerMin: 30},
				},
				Products: []gamedata.RecipeItem{
					{Part: "iron-plate", Amount: 2, PerMin: 20},
				},
			},
			"alloy": {
				ID:       "alloy",
				Building: "foundry",
				Ingredients: []gamedata.RecipeItem{
					{Part: "iron-ore", Amount: 2, PerMin: 40},
					{Part: "coal", Amount: 2, PerMin: 40},
				},
				Products: []gamedata.RecipeItem{
					{Part: "alloy", Amount: 3, PerMin: 60},
				},
				ByProducts: []gamedata.RecipeItem{
					{Part: "slag", Amount: 1, PerMin: 20},
				},
			},
		},
		powerRecipes: map[string]*gamedata.PowerRecipe{
			"coal-power": {
				ID:       "coal-power",
				Building: "coal-generator",
				Fuel:     gamedata.PowerFuel{Part: "coal", MWPerItem: 5},
				Supplemental: &gamedata.PowerSupplement{
					Part:       "water",
					RatioPerMW: 0.6,
				},
			},
			"waste-power": {
				ID:       "waste-power",
				Building: "coal-generator",
				Fuel:     gamedata.PowerFuel{Part: "coal", MWPerItem: 5},
				ByProduct: &gamedata.PowerByProduct{
					Part:         "slag",
					RatioPerFuel: 0.5,
				},
			},
		},
		buildings: map[string]*gamedata.Building{
			"smelter":        {ID: "smelter", Name: "Smelter", Power: 4},
			"constructor":    {ID: "constructor", Name: "Constructor", Power: 4},
			"foundry":        {ID: "foundry", Name: "Foundry", Power: 16},
			"coal-generator": {ID: "coal-generator", Name: "Coal Generator", Power: 75},
		},
	}
}
