package gamedata

import (
	"encoding/json"
	"fmt"
	"os"

	domain "github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
)

// dataFile is the on-disk shape of a game-data release.
type dataFile struct {
	Version      string               `json:"version"`
	Parts        []domain.Part        `json:"parts"`
	Recipes      []domain.Recipe      `json:"recipes"`
	PowerRecipes []domain.PowerRecipe `json:"powerRecipes"`
	Buildings    []domain.Building    `json:"buildings"`
}

// Catalogue is an immutable in-memory implementation of the game-data port,
// indexed by id at load time. It is constructed once at startup and safe for
// concurrent reads.
type Catalogue struct {
	version      string
	parts        map[string]*domain.Part
	recipes      map[string]*domain.Recipe
	powerRecipes map[string]*domain.PowerRecipe
	buildings    map[string]*domain.Building
}

// LoadCatalogue reads a game-data JSON file and builds the indexed catalogue.
func LoadCatalogue(path string) (*Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data file: %w", err)
	}
	return ParseCatalogue(raw)
}

// ParseCatalogue builds a catalogue from raw game-data JSON.
func ParseCatalogue(raw []byte) (*Catalogue, error) {
	var file dataFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse game data: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("game data file has no version")
	}

	c := &Catalogue{
		version:      file.Version,
		parts:        make(map[string]*domain.Part, len(file.Parts)),
		recipes:      make(map[string]*domain.Recipe, len(file.Recipes)),
		powerRecipes: make(map[string]*domain.PowerRecipe, len(file.PowerRecipes)),
		buildings:    make(map[string]*domain.Building, len(file.Buildings)),
	}

	for i := range file.Parts {
		part := &file.Parts[i]
		if part.ID == "" {
			return nil, fmt.Errorf("game data part %d has no id", i)
		}
		c.parts[part.ID] = part
	}
	for i := range file.Recipes {
		recipe := &file.Recipes[i]
		if recipe.PrimaryProduct() == nil {
			return nil, fmt.Errorf("recipe %s has no products", recipe.ID)
		}
		c.recipes[recipe.ID] = recipe
	}
	for i := range file.PowerRecipes {
		recipe := &file.PowerRecipes[i]
		if recipe.Fuel.Part == "" || recipe.Fuel.MWPerItem <= 0 {
			return nil, fmt.Errorf("power recipe %s has no usable fuel", recipe.ID)
		}
		c.powerRecipes[recipe.ID] = recipe
	}
	for i := range file.Buildings {
		building := &file.Buildings[i]
		c.buildings[building.ID] = building
	}

	return c, nil
}

// Recipe retrieves a production recipe by id
func (c *Catalogue) Recipe(id string) (*domain.Recipe, bool) {
	recipe, ok := c.recipes[id]
	return recipe, ok
}

// PowerRecipe retrieves a generator fuel recipe by id
func (c *Catalogue) PowerRecipe(id string) (*domain.PowerRecipe, bool) {
	recipe, ok := c.powerRecipes[id]
	return recipe, ok
}

// Building retrieves a building definition by id
func (c *Catalogue) Building(id string) (*domain.Building, bool) {
	building, ok := c.buildings[id]
	return building, ok
}

// BuildingPower returns the base power figure for a building type, or 0 for
// an unknown building
func (c *Catalogue) BuildingPower(id string) float64 {
	if building, ok := c.buildings[id]; ok {
		return building.Power
	}
	return 0
}

// Part retrieves a part definition by id
func (c *Catalogue) Part(id string) (*domain.Part, bool) {
	part, ok := c.parts[id]
	return part, ok
}

// PartName returns the display name for a part id, falling back to the id
// itself when the part is unknown
func (c *Catalogue) PartName(id string) string {
	if part, ok := c.parts[id]; ok && part.Name != "" {
		return part.Name
	}
	return id
}

// Version identifies the game-data release the catalogue was built from
func (c *Catalogue) Version() string {
	return c.version
}

// Counts returns the number of parts, recipes, power recipes and buildings
// loaded, for diagnostics output.
func (c *Catalogue) Counts() (parts, recipes, powerRecipes, buildings int) {
	return len(c.parts), len(c.recipes), len(c.powerRecipes), len(c.buildings)
}
