package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

func TestSyncTracker_UntrackedFactoryStaysNil(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	f.AddProduct("iron-ingot", "iron-ingot", 30)

	tracker.CheckSync(f)

	assert.Nil(t, f.InSync)
}

func TestSyncTracker_SnapshotMarksInSync(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	f.AddProduct("iron-ingot", "iron-ingot", 30)
	f.AddPowerProducer("coal-generator", "coal-power", 4)

	tracker.Snapshot(f)

	require.NotNil(t, f.InSync)
	assert.True(t, *f.InSync)
	assert.Len(t, f.SyncState, 1)
	assert.Len(t, f.SyncStatePower, 1)
}

func TestSyncTracker_DetectsProductAmountDrift(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	product := f.AddProduct("iron-ingot", "iron-ingot", 30)
	tracker.Snapshot(f)

	product.Amount = 45
	tracker.CheckSync(f)

	require.NotNil(t, f.InSync)
	assert.False(t, *f.InSync)
}

func TestSyncTracker_DetectsRecipeDrift(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	product := f.AddProduct("iron-ingot", "iron-ingot", 30)
	tracker.Snapshot(f)

	product.Recipe = "pure-iron-ingot"
	tracker.CheckSync(f)

	assert.False(t, *f.InSync)
}

func TestSyncTracker_DetectsAddedAndRemovedItems(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	f.AddProduct("iron-ingot", "iron-ingot", 30)
	tracker.Snapshot(f)

	f.AddProduct("iron-plate", "iron-plate", 20)
	tracker.CheckSync(f)
	assert.False(t, *f.InSync)

	// Removing the addition restores the baseline.
	f.Products = f.Products[:1]
	tracker.CheckSync(f)
	assert.True(t, *f.InSync)

	f.Products = nil
	tracker.CheckSync(f)
	assert.False(t, *f.InSync)
}

func TestSyncTracker_DetectsPowerProducerDrift(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	producer := f.AddPowerProducer("coal-generator", "coal-power", 4)
	tracker.Snapshot(f)

	producer.BuildingAmount = 6
	tracker.CheckSync(f)

	assert.False(t, *f.InSync)
}

func TestSyncTracker_ResnapshotClearsDrift(t *testing.T) {
	tracker := services.NewSyncTracker()
	f := plan.NewFactory("test")
	product := f.AddProduct("iron-ingot", "iron-ingot", 30)
	tracker.Snapshot(f)
	product.Amount = 45

	tracker.Snapshot(f)
	tracker.CheckSync(f)

	assert.True(t, *f.InSync)
}
