package gamedata

// Catalogue is the read-only lookup service for static game data.
// Implementations must be deterministic for a given data version and are
// constructed once at startup and injected into every solver call; the
// planner never mutates game data.
type Catalogue interface {
	// Recipe retrieves a production recipe by id
	Recipe(id string) (*Recipe, bool)

	// PowerRecipe retrieves a generator fuel recipe by id
	PowerRecipe(id string) (*PowerRecipe, bool)

	// Building retrieves a building definition by id
	Building(id string) (*Building, bool)

	// BuildingPower returns the base power figure for a building type,
	// or 0 for an unknown building
	BuildingPower(id string) float64

	// Part retrieves a part definition by id
	Part(id string) (*Part, bool)

	// PartName returns the display name for a part id, falling back to the
	// id itself when the part is unknown
	PartName(id string) string

	// Version identifies the game-data release the catalogue was built from
	Version() string
}
