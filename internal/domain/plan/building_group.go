package plan

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// Overclock percentage bounds. A building cannot run below 1% or above 250%.
const (
	MinOverclockPercent = 1.0
	MaxOverclockPercent = 250.0
)

// GroupEffectiveTolerance is how far the summed effective building count of
// an item's groups may drift from the item's aggregate requirement before the
// item is flagged as having a building-group problem.
const GroupEffectiveTolerance = 0.1

// BuildingGroup is a batch of buildings of the same type sharing one
// overclock percentage. An item's groups must together cover its aggregate
// building requirement.
type BuildingGroup struct {
	ID string `json:"id"`

	// BuildingCount may be fractional before rounding but is generally
	// expected to be whole.
	BuildingCount float64 `json:"buildingCount"`

	// OverclockPercent is within [1, 250] with at most 4 fractional digits.
	OverclockPercent float64 `json:"overclockPercent"`

	// Parts maps part id to this group's per-minute share of the item's
	// consumption and production, distributed by effective building share.
	Parts map[string]float64 `json:"parts"`

	// PowerUsage is this group's power draw in MW under the clock-speed curve.
	PowerUsage float64 `json:"powerUsage"`
}

// NewBuildingGroup creates a group with a fresh synthetic id.
func NewBuildingGroup(buildingCount, overclockPercent float64) *BuildingGroup {
	return &BuildingGroup{
		ID:               uuid.NewString(),
		BuildingCount:    buildingCount,
		OverclockPercent: overclockPercent,
		Parts:            make(map[string]float64),
	}
}

// EffectiveBuildingCount returns count x clock/100 rounded to 3 decimals.
// Always computed fresh; never cached across group mutation.
func (g *BuildingGroup) EffectiveBuildingCount() float64 {
	return shared.RoundAmount(g.BuildingCount * g.OverclockPercent / 100)
}

// BuildingRequirement is the derived building demand of a product or power
// producer: building type, fractional count, and power consumed.
type BuildingRequirement struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	PowerConsumed float64 `json:"powerConsumed"`
}

// GroupedItem is the capability set shared by products and power producers
// so the group allocator can operate without knowing concrete item types.
type GroupedItem interface {
	// Requirement returns the item's aggregate building requirement
	Requirement() BuildingRequirement

	// Groups returns the item's building groups in order
	Groups() []*BuildingGroup

	// SetGroups replaces the item's building groups
	SetGroups(groups []*BuildingGroup)

	// GroupSync reports whether single-group edits mirror onto the aggregate
	GroupSync() bool

	// SetGroupSync enables or disables item sync
	SetGroupSync(enabled bool)

	// SetGroupProblem records whether the groups cover the requirement
	SetGroupProblem(hasProblem bool)

	// PartTotals returns the item's aggregate per-minute amount for every
	// part it consumes or produces, keyed by part id
	PartTotals() map[string]float64

	// SetTargetFromEffective propagates a new effective building count back
	// onto the item's own source-of-truth quantity
	SetTargetFromEffective(effective float64)
}

// EffectiveBuildingCountOf sums the effective counts of an item's groups,
// rounded to 3 decimals.
func EffectiveBuildingCountOf(item GroupedItem) float64 {
	total := 0.0
	for _, g := range item.Groups() {
		total += g.BuildingCount * g.OverclockPercent / 100
	}
	return shared.RoundAmount(total)
}
