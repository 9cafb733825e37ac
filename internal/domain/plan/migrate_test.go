package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

func TestMigrate_BackfillsNilCollections(t *testing.T) {
	f := &plan.Factory{ID: "f1", Name: "legacy"}

	plan.Migrate(f)

	assert.NotNil(t, f.Products)
	assert.NotNil(t, f.PowerProducers)
	assert.NotNil(t, f.Parts)
	assert.NotNil(t, f.BuildingRequirements)
	assert.NotNil(t, f.Inputs)
	assert.NotNil(t, f.Dependencies.Requests)
	assert.NotNil(t, f.Dependencies.Metrics)
	assert.NotNil(t, f.SyncState)
	assert.NotNil(t, f.SyncStatePower)
	assert.Equal(t, plan.CurrentDataVersion, f.DataVersion)
}

func TestMigrate_SeedsMissingBuildingGroups(t *testing.T) {
	f := &plan.Factory{
		Products: []*plan.Product{{ID: "iron-plate", Recipe: "iron-plate", Amount: 60}},
	}

	plan.Migrate(f)

	product := f.Products[0]
	require.Len(t, product.BuildingGroups, 1)
	assert.NotEmpty(t, product.BuildingGroups[0].ID)
	assert.True(t, product.BuildingGroupItemSync)
}

func TestMigrate_KeepsExistingGroups(t *testing.T) {
	group := plan.NewBuildingGroup(3, 100)
	f := &plan.Factory{
		Products: []*plan.Product{{
			ID:             "iron-plate",
			BuildingGroups: []*plan.BuildingGroup{group},
		}},
	}

	plan.Migrate(f)

	require.Len(t, f.Products[0].BuildingGroups, 1)
	assert.Same(t, group, f.Products[0].BuildingGroups[0])
	// Sync was user-controlled before; an existing group layout keeps it.
	assert.False(t, f.Products[0].BuildingGroupItemSync)
}

func TestMigrate_BackfillsProducerIdentityAndSource(t *testing.T) {
	f := &plan.Factory{
		PowerProducers: []*plan.PowerProducer{{
			Building: "coal-generator",
			Recipe:   "coal-power",
		}},
	}

	plan.Migrate(f)

	producer := f.PowerProducers[0]
	assert.NotEmpty(t, producer.ID)
	assert.Equal(t, plan.UpdatedBuildings, producer.Updated)
	require.Len(t, producer.BuildingGroups, 1)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	f := plan.NewFactory("test")
	product := f.AddProduct("iron-plate", "iron-plate", 60)
	product.BuildingGroups = []*plan.BuildingGroup{plan.NewBuildingGroup(3, 100)}

	plan.Migrate(f)
	groupID := product.BuildingGroups[0].ID
	plan.Migrate(f)

	require.Len(t, product.BuildingGroups, 1)
	assert.Equal(t, groupID, product.BuildingGroups[0].ID)
}
