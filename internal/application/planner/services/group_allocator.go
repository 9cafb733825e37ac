package services

import (
	"fmt"
	"math"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
	"github.com/andrescamacho/satisplanner-go/pkg/utils"
)

// modEpsilon soaks up float noise when testing whether a building target
// divides evenly across groups.
const modEpsilon = 1e-9

// GroupAllocator keeps every item's building groups consistent with its
// aggregate building requirement. It operates purely against the GroupedItem
// capability set, never against concrete item types.
type GroupAllocator struct {
	catalogue gamedata.Catalogue
	notifier  common.Notifier
}

// NewGroupAllocator creates an allocator against an injected catalogue
func NewGroupAllocator(catalogue gamedata.Catalogue, notifier common.Notifier) *GroupAllocator {
	return &GroupAllocator{catalogue: catalogue, notifier: notifier}
}

// AddGroup appends a building group. The first group is seeded with the
// item's full requirement; any later group starts at zero and disables item
// sync, because multiple groups mean the user wants manual control.
func (a *GroupAllocator) AddGroup(item plan.GroupedItem) *plan.BuildingGroup {
	group := plan.NewBuildingGroup(0, 100)
	groups := item.Groups()

	if len(groups) == 0 {
		item.SetGroups([]*plan.BuildingGroup{group})
		a.Rebalance(item)
		return group
	}

	item.SetGroups(append(groups, group))
	item.SetGroupSync(false)
	a.refresh(item)
	return group
}

// DeleteGroup removes a group by id. The last remaining group is
// undeletable. No implicit rebalance happens: the survivors keep their
// values, which may leave the item flagged with a group problem.
func (a *GroupAllocator) DeleteGroup(item plan.GroupedItem, groupID string) error {
	groups := item.Groups()
	if len(groups) <= 1 {
		return &plan.ErrLastBuildingGroup{}
	}

	idx := -1
	for i, g := range groups {
		if g.ID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &plan.ErrGroupNotFound{GroupID: groupID}
	}

	item.SetGroups(append(groups[:idx], groups[idx+1:]...))
	a.refresh(item)
	return nil
}

// Rebalance distributes the item's aggregate building requirement evenly
// across its groups. When the target does not divide evenly, every group
// gets the ceiling count with a uniform slight underclock, spreading the
// power-curve penalty instead of concentrating it in one group.
func (a *GroupAllocator) Rebalance(item plan.GroupedItem) {
	groups := item.Groups()
	if len(groups) == 0 {
		a.AddGroup(item)
		return
	}

	target := item.Requirement().Amount
	if target <= 0 {
		for _, g := range groups {
			g.BuildingCount = 0
			g.OverclockPercent = 100
		}
		a.refresh(item)
		return
	}

	n := float64(len(groups))
	perGroup := target / n
	remainder := math.Mod(target, n)

	if remainder < modEpsilon || n-remainder < modEpsilon {
		count := math.Round(perGroup)
		for _, g := range groups {
			g.BuildingCount = count
			g.OverclockPercent = 100
		}
	} else {
		count := math.Ceil(perGroup)
		clock := a.clampClock(perGroup / count * 100)
		for _, g := range groups {
			g.BuildingCount = count
			g.OverclockPercent = clock
		}
	}

	a.refresh(item)
}

// RemainderToLast closes the gap between the target and the effective output
// of all-but-the-last group by rewriting only the last group. Overallocation
// collapses the last group to one underclocked building; a positive gap is
// covered by the whole-building/clock combination closest to 100%, because
// extra buildings are free while overclocking burns power shards.
func (a *GroupAllocator) RemainderToLast(item plan.GroupedItem) {
	groups := item.Groups()
	if len(groups) == 0 {
		a.Rebalance(item)
		return
	}

	target := item.Requirement().Amount
	covered := 0.0
	for _, g := range groups[:len(groups)-1] {
		covered += g.BuildingCount * g.OverclockPercent / 100
	}
	gap := shared.RoundAmount(target - covered)

	last := groups[len(groups)-1]
	if gap <= 0 {
		last.BuildingCount = 1
		last.OverclockPercent = a.clampClock((1 + gap) * 100)
	} else {
		count, clock := bestRemainderSplit(gap)
		last.BuildingCount = count
		last.OverclockPercent = a.clampClock(clock)
	}

	a.refresh(item)
}

// RemainderToNewGroup covers a shortfall by appending a new group instead of
// mutating existing ones, for additive, non-destructive adjustments.
func (a *GroupAllocator) RemainderToNewGroup(item plan.GroupedItem) *plan.BuildingGroup {
	group := plan.NewBuildingGroup(0, 100)
	groups := item.Groups()
	item.SetGroups(append(groups, group))
	if len(groups) >= 1 {
		item.SetGroupSync(false)
	}
	a.RemainderToLast(item)
	return group
}

// bestRemainderSplit searches building counts n = 1..ceil(gap)+1 for the
// clock closest to 100%, tie-broken toward fewer buildings. Candidates whose
// clock would exceed 250% are rejected.
func bestRemainderSplit(gap float64) (float64, float64) {
	maxN := int(math.Ceil(gap)) + 1
	bestN := maxN
	bestScore := math.MaxFloat64

	for n := 1; n <= maxN; n++ {
		clock := gap / float64(n) * 100
		if clock > plan.MaxOverclockPercent {
			continue
		}
		score := math.Abs(math.Ceil(clock) - 100)
		if score < bestScore {
			bestScore = score
			bestN = n
		}
	}

	return float64(bestN), gap / float64(bestN) * 100
}

// UpdateGroup applies a user edit to one group's count and clock. In simple
// mode (single group with item sync on) the edit mirrors onto the item's
// aggregate requirement.
func (a *GroupAllocator) UpdateGroup(item plan.GroupedItem, groupID string, buildingCount, overclockPercent float64) error {
	group := findGroup(item, groupID)
	if group == nil {
		return &plan.ErrGroupNotFound{GroupID: groupID}
	}

	if buildingCount < 0 {
		buildingCount = 0
		common.Warn(a.notifier, "building count cannot be negative, corrected to 0")
	}
	group.BuildingCount = buildingCount
	group.OverclockPercent = a.clampClock(overclockPercent)

	if len(item.Groups()) == 1 && item.GroupSync() {
		item.SetTargetFromEffective(group.BuildingCount * group.OverclockPercent / 100)
	}

	a.refresh(item)
	return nil
}

// UpdateGroupPart is the reverse, part-driven edit: given a desired per-part
// amount for one group, invert the recipe ratio to solve for the building
// count at the group's current clock. With a single group the new count
// propagates up to the item's aggregate and a rebalance restores whole
// numbers; with multiple groups only the edited group changes and the
// aggregate becomes the new sum.
func (a *GroupAllocator) UpdateGroupPart(item plan.GroupedItem, groupID, part string, amount float64) error {
	group := findGroup(item, groupID)
	if group == nil {
		return &plan.ErrGroupNotFound{GroupID: groupID}
	}

	totals := item.PartTotals()
	totalAmount, ok := totals[part]
	requirement := item.Requirement()
	if !ok || totalAmount <= 0 || requirement.Amount <= 0 {
		return shared.NewValidationError("part",
			fmt.Sprintf("part %s is not produced or consumed by this item", part))
	}

	if amount <= 0 {
		amount = 1
		common.Warn(a.notifier, fmt.Sprintf(
			"amount for %s must be positive, corrected to 1/min", a.catalogue.PartName(part)))
	}

	perBuilding := totalAmount / requirement.Amount
	clockRatio := group.OverclockPercent / 100
	group.BuildingCount = shared.Round(amount/(perBuilding*clockRatio), 4)

	if len(item.Groups()) == 1 {
		item.SetTargetFromEffective(group.BuildingCount * clockRatio)
		a.Rebalance(item)
		return nil
	}

	item.SetTargetFromEffective(plan.EffectiveBuildingCountOf(item))
	a.refresh(item)
	return nil
}

// Reconcile brings an item's groups back in line after a solver pass: items
// without groups get their first seeded group, simple-mode items are
// rebalanced to the fresh requirement, manually managed items only get their
// per-group parts and problem flag recomputed.
func (a *GroupAllocator) Reconcile(item plan.GroupedItem) {
	groups := item.Groups()
	switch {
	case len(groups) == 0:
		a.AddGroup(item)
	case len(groups) == 1 && item.GroupSync():
		a.Rebalance(item)
	default:
		a.refresh(item)
	}
}

// HasProblem reports whether the groups fail to cover the requirement within
// tolerance, refreshing the item's flag.
func (a *GroupAllocator) HasProblem(item plan.GroupedItem) bool {
	return a.detectProblem(item)
}

// refresh recomputes the per-group part distribution, group power, and the
// problem flag. Called after every group mutation.
func (a *GroupAllocator) refresh(item plan.GroupedItem) {
	a.redistributeParts(item)
	a.detectProblem(item)
}

// redistributeParts assigns each group its share of every part the item
// consumes or produces, proportional to the group's effective building count
// so overclocked groups correctly carry more.
func (a *GroupAllocator) redistributeParts(item plan.GroupedItem) {
	requirement := item.Requirement()
	totals := item.PartTotals()
	basePower := a.catalogue.BuildingPower(requirement.Name)

	for _, g := range item.Groups() {
		g.Parts = make(map[string]float64, len(totals))
		if requirement.Amount > 0 {
			share := g.BuildingCount * g.OverclockPercent / 100 / requirement.Amount
			for part, amount := range totals {
				g.Parts[part] = shared.RoundAmount(amount * share)
			}
		}
		g.PowerUsage = GroupPower(basePower, g.BuildingCount, g.OverclockPercent)
	}
}

func (a *GroupAllocator) detectProblem(item plan.GroupedItem) bool {
	target := item.Requirement().Amount
	effective := plan.EffectiveBuildingCountOf(item)
	has := math.Abs(target-effective) > plan.GroupEffectiveTolerance
	item.SetGroupProblem(has)
	return has
}

// clampClock constrains a clock to [1, 250] at 4 decimal places, warning
// when truncation was needed.
func (a *GroupAllocator) clampClock(clock float64) float64 {
	clamped := utils.ClampFloat(clock, plan.MinOverclockPercent, plan.MaxOverclockPercent)
	if clamped != clock {
		common.Warn(a.notifier, fmt.Sprintf(
			"overclock %.4f%% is out of range, clamped to %.4f%%", clock, clamped))
	}
	return shared.RoundClock(clamped)
}

func findGroup(item plan.GroupedItem, groupID string) *plan.BuildingGroup {
	for _, g := range item.Groups() {
		if g.ID == groupID {
			return g
		}
	}
	return nil
}
