package plan

import "fmt"

// Domain errors for plan operations. Missing catalogue data for an id the
// planner itself generated, or structurally invalid arguments, are hard
// errors returned to the caller; invalid user quantities are clamped and
// warned about instead.

// ErrLastBuildingGroup indicates an attempt to delete an item's only group.
type ErrLastBuildingGroup struct{}

func (e *ErrLastBuildingGroup) Error() string {
	return "cannot delete the last building group of an item"
}

// ErrGroupNotFound indicates an unknown building-group id.
type ErrGroupNotFound struct {
	GroupID string
}

func (e *ErrGroupNotFound) Error() string {
	return fmt.Sprintf("building group not found: %s", e.GroupID)
}

// ErrUnknownRecipe indicates a recipe id missing from the game-data
// catalogue, which points at a data-version mismatch.
type ErrUnknownRecipe struct {
	Recipe string
}

func (e *ErrUnknownRecipe) Error() string {
	return fmt.Sprintf("unknown recipe: %s", e.Recipe)
}

// ErrUnknownPowerRecipe indicates a power recipe id missing from the
// catalogue.
type ErrUnknownPowerRecipe struct {
	Recipe string
}

func (e *ErrUnknownPowerRecipe) Error() string {
	return fmt.Sprintf("unknown power recipe: %s", e.Recipe)
}

// ErrUnknownBuilding indicates a building id missing from the catalogue.
type ErrUnknownBuilding struct {
	Building string
}

func (e *ErrUnknownBuilding) Error() string {
	return fmt.Sprintf("unknown building: %s", e.Building)
}

// ErrUnknownUpdateSource indicates a power producer carrying an update tag
// outside the four known sources.
type ErrUnknownUpdateSource struct {
	Source string
}

func (e *ErrUnknownUpdateSource) Error() string {
	return fmt.Sprintf("unknown power producer update source: %q", e.Source)
}

// ErrDuplicateInput indicates a second import link for the same
// (source factory, part) pair.
type ErrDuplicateInput struct {
	FactoryID string
	Part      string
}

func (e *ErrDuplicateInput) Error() string {
	return fmt.Sprintf("input for part %s from factory %s already exists", e.Part, e.FactoryID)
}

// ErrPlanNotFound indicates a plan id or name with no stored record.
type ErrPlanNotFound struct {
	Key string
}

func (e *ErrPlanNotFound) Error() string {
	return fmt.Sprintf("plan not found: %s", e.Key)
}

// ErrFactoryNotFound indicates a factory id that is not in the plan.
type ErrFactoryNotFound struct {
	FactoryID string
}

func (e *ErrFactoryNotFound) Error() string {
	return fmt.Sprintf("factory not found: %s", e.FactoryID)
}

// ErrProductNotFound indicates a part id with no product in the factory.
type ErrProductNotFound struct {
	FactoryID string
	Part      string
}

func (e *ErrProductNotFound) Error() string {
	return fmt.Sprintf("factory %s has no product for part %s", e.FactoryID, e.Part)
}

// ErrItemNotFound indicates an id that matches neither a product nor a
// power producer of the factory.
type ErrItemNotFound struct {
	FactoryID string
	ItemID    string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("factory %s has no product or power producer %s", e.FactoryID, e.ItemID)
}

// ErrProducerNotFound indicates a power-producer id that is not in the
// factory.
type ErrProducerNotFound struct {
	FactoryID  string
	ProducerID string
}

func (e *ErrProducerNotFound) Error() string {
	return fmt.Sprintf("factory %s has no power producer %s", e.FactoryID, e.ProducerID)
}
