package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/adapters/notify"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// newGroupedProduct builds a product with a pre-solved building requirement
// so allocator behavior can be tested without running the production solver.
func newGroupedProduct(amount, buildings float64) *plan.Product {
	product := plan.NewProduct("iron-plate", "iron-plate", amount)
	product.BuildingRequirement = plan.BuildingRequirement{Name: "constructor", Amount: buildings}
	return product
}

func newAllocator() *services.GroupAllocator {
	return services.NewGroupAllocator(newTestCatalogue(), nil)
}

func TestGroupAllocator_FirstGroupSeedsFullRequirement(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)

	allocator.AddGroup(product)

	require.Len(t, product.BuildingGroups, 1)
	group := product.BuildingGroups[0]
	assert.Equal(t, 3.0, group.BuildingCount)
	assert.Equal(t, 100.0, group.OverclockPercent)
	assert.True(t, product.GroupSync())
}

func TestGroupAllocator_SecondGroupDisablesSync(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)

	second := allocator.AddGroup(product)

	assert.False(t, product.GroupSync())
	assert.Equal(t, 0.0, second.BuildingCount)
	// The first group is untouched; the empty second group leaves a shortfall
	// only when it would move the effective count, which it does not here.
	assert.Equal(t, 3.0, product.BuildingGroups[0].BuildingCount)
}

func TestGroupAllocator_RebalanceEvenSplit(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(80, 4)
	allocator.AddGroup(product)
	allocator.AddGroup(product)

	allocator.Rebalance(product)

	for _, group := range product.BuildingGroups {
		assert.Equal(t, 2.0, group.BuildingCount)
		assert.Equal(t, 100.0, group.OverclockPercent)
	}
	assert.False(t, product.BuildingGroupsHaveProblem)
}

func TestGroupAllocator_RebalanceUnevenUnderclocksUniformly(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(100, 5)
	allocator.AddGroup(product)
	allocator.AddGroup(product)

	allocator.Rebalance(product)

	// 5 buildings over 2 groups: each gets 3 at 83.3333%, so the effective
	// count still sums to 5 and no group runs past 100%.
	for _, group := range product.BuildingGroups {
		assert.Equal(t, 3.0, group.BuildingCount)
		assert.InDelta(t, 83.3333, group.OverclockPercent, 0.0001)
	}
	assert.InDelta(t, 5.0, plan.EffectiveBuildingCountOf(product), 0.001)
	assert.False(t, product.BuildingGroupsHaveProblem)
}

func TestGroupAllocator_RemainderToLastCoversShortfall(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(2622, 131.1)
	allocator.AddGroup(product)
	allocator.AddGroup(product)
	product.BuildingGroups[0].BuildingCount = 131
	product.BuildingGroups[0].OverclockPercent = 100

	allocator.RemainderToLast(product)

	// The 0.1 building gap is cheapest as one building at 10%.
	last := product.BuildingGroups[1]
	assert.Equal(t, 1.0, last.BuildingCount)
	assert.InDelta(t, 10.0, last.OverclockPercent, 0.0001)
	assert.False(t, product.BuildingGroupsHaveProblem)
}

func TestGroupAllocator_RemainderToLastAbsorbsOverallocation(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(50, 2.5)
	allocator.AddGroup(product)
	allocator.AddGroup(product)
	product.BuildingGroups[0].BuildingCount = 3
	product.BuildingGroups[0].OverclockPercent = 100

	allocator.RemainderToLast(product)

	// Covered 3 against a target of 2.5: the last group collapses to a
	// single building underclocked by the overshoot.
	last := product.BuildingGroups[1]
	assert.Equal(t, 1.0, last.BuildingCount)
	assert.InDelta(t, 50.0, last.OverclockPercent, 0.0001)
}

func TestGroupAllocator_RemainderPrefersClockNearHundred(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(38.4, 1.92)
	allocator.AddGroup(product)
	product.BuildingGroups[0].BuildingCount = 0
	product.BuildingGroups[0].OverclockPercent = 100

	allocator.RemainderToLast(product)

	// 1.92 buildings as 1x192% would burn shards; 2x96% is nearly stock.
	group := product.BuildingGroups[0]
	assert.Equal(t, 2.0, group.BuildingCount)
	assert.InDelta(t, 96.0, group.OverclockPercent, 0.0001)
}

func TestGroupAllocator_RemainderToNewGroup(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(100, 5)
	allocator.AddGroup(product)
	product.BuildingGroups[0].BuildingCount = 4

	group := allocator.RemainderToNewGroup(product)

	require.Len(t, product.BuildingGroups, 2)
	assert.Same(t, group, product.BuildingGroups[1])
	assert.Equal(t, 1.0, group.BuildingCount)
	assert.InDelta(t, 100.0, group.OverclockPercent, 0.0001)
	assert.False(t, product.GroupSync())
}

func TestGroupAllocator_DeleteLastGroupFails(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)

	err := allocator.DeleteGroup(product, product.BuildingGroups[0].ID)

	var last *plan.ErrLastBuildingGroup
	require.ErrorAs(t, err, &last)
}

func TestGroupAllocator_DeleteUnknownGroup(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	allocator.AddGroup(product)

	err := allocator.DeleteGroup(product, "nope")

	var notFound *plan.ErrGroupNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestGroupAllocator_DeleteKeepsSurvivorsAndFlagsGap(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(80, 4)
	allocator.AddGroup(product)
	allocator.AddGroup(product)
	allocator.Rebalance(product)
	doomed := product.BuildingGroups[1].ID

	err := allocator.DeleteGroup(product, doomed)

	require.NoError(t, err)
	require.Len(t, product.BuildingGroups, 1)
	// No implicit rebalance: the survivor keeps 2 buildings against a target
	// of 4, which is a flagged problem.
	assert.Equal(t, 2.0, product.BuildingGroups[0].BuildingCount)
	assert.True(t, product.BuildingGroupsHaveProblem)
}

func TestGroupAllocator_UpdateGroupClampsAndWarns(t *testing.T) {
	notifier := notify.NewCollectingNotifier()
	allocator := services.NewGroupAllocator(newTestCatalogue(), notifier)
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	allocator.AddGroup(product)
	group := product.BuildingGroups[1]

	err := allocator.UpdateGroup(product, group.ID, -1, 300)

	require.NoError(t, err)
	assert.Equal(t, 0.0, group.BuildingCount)
	assert.Equal(t, 250.0, group.OverclockPercent)
	assert.Len(t, notifier.Notifications(), 2)
}

func TestGroupAllocator_UpdateGroupMirrorsInSimpleMode(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	group := product.BuildingGroups[0]

	err := allocator.UpdateGroup(product, group.ID, 2, 100)

	require.NoError(t, err)
	// Single group with sync on: the edit flows back to the product's target
	// at 20/min per building.
	assert.Equal(t, 40.0, product.Amount)
	assert.Equal(t, 2.0, product.BuildingRequirement.Amount)
}

func TestGroupAllocator_UpdateGroupPartSolvesBuildingCount(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	group := product.BuildingGroups[0]

	err := allocator.UpdateGroupPart(product, group.ID, "iron-plate", 40)

	require.NoError(t, err)
	// 40/min of a 20/min-per-building part at 100% is 2 buildings; with one
	// group the target follows and the rebalance restores whole numbers.
	assert.Equal(t, 40.0, product.Amount)
	assert.Equal(t, 2.0, group.BuildingCount)
	assert.Equal(t, 100.0, group.OverclockPercent)
}

func TestGroupAllocator_UpdateGroupPartUnknownPart(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)

	err := allocator.UpdateGroupPart(product, product.BuildingGroups[0].ID, "uranium", 40)

	require.Error(t, err)
}

func TestGroupAllocator_GroupPartsAndPowerDistribution(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	product.Requirements["iron-ingot"] = plan.ProductRequirement{Amount: 90}

	allocator.AddGroup(product)

	group := product.BuildingGroups[0]
	assert.Equal(t, 60.0, group.Parts["iron-plate"])
	assert.Equal(t, 90.0, group.Parts["iron-ingot"])
	// 3 constructors at 4 MW and stock clock.
	assert.Equal(t, 12.0, group.PowerUsage)
}

func TestGroupAllocator_ProblemDetectionUsesTolerance(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	allocator.AddGroup(product)

	product.BuildingGroups[0].BuildingCount = 3
	product.BuildingGroups[1].BuildingCount = 0.05
	assert.False(t, allocator.HasProblem(product))

	product.BuildingGroups[1].BuildingCount = 1
	assert.True(t, allocator.HasProblem(product))
	assert.True(t, product.BuildingGroupsHaveProblem)
}

func TestGroupAllocator_ReconcileRespectsManualMode(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	allocator.AddGroup(product)
	product.BuildingGroups[0].BuildingCount = 4
	product.BuildingGroups[1].BuildingCount = 1

	allocator.Reconcile(product)

	// Manual groups keep their counts; only parts and the flag refresh.
	assert.Equal(t, 4.0, product.BuildingGroups[0].BuildingCount)
	assert.Equal(t, 1.0, product.BuildingGroups[1].BuildingCount)
	assert.True(t, product.BuildingGroupsHaveProblem)
}

func TestGroupAllocator_ReconcileRebalancesSimpleMode(t *testing.T) {
	allocator := newAllocator()
	product := newGroupedProduct(60, 3)
	allocator.AddGroup(product)
	product.BuildingRequirement.Amount = 5

	allocator.Reconcile(product)

	assert.Equal(t, 5.0, product.BuildingGroups[0].BuildingCount)
	assert.Equal(t, 100.0, product.BuildingGroups[0].OverclockPercent)
}
