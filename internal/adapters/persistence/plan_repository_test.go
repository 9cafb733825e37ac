package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) *persistence.GormPlanRepository {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return persistence.NewGormPlanRepository(db)
}

func TestPlanRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := plan.NewPlan("main base")
	factory := p.AddFactory("iron works")
	factory.AddProduct("iron-plate", "iron-plate", 60)
	factory.AddPowerProducer("coal-generator", "coal-power", 4)

	require.NoError(t, repo.Create(ctx, p))
	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, "main base", loaded.Name)
	require.Len(t, loaded.Factories, 1)
	assert.Equal(t, "iron works", loaded.Factories[0].Name)
	require.Len(t, loaded.Factories[0].Products, 1)
	assert.Equal(t, 60.0, loaded.Factories[0].Products[0].Amount)
	require.Len(t, loaded.Factories[0].PowerProducers, 1)
}

func TestPlanRepository_LoadedPlansAreMigrated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := plan.NewPlan("legacy")
	p.AddFactory("old")
	require.NoError(t, repo.Create(ctx, p))

	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)

	f := loaded.Factories[0]
	assert.NotNil(t, f.Parts)
	assert.NotNil(t, f.Dependencies.Requests)
	assert.Equal(t, plan.CurrentDataVersion, f.DataVersion)
}

func TestPlanRepository_FindByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := plan.NewPlan("starter")
	require.NoError(t, repo.Create(ctx, p))

	loaded, err := repo.FindByName(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, p.ID, loaded.ID)

	_, err = repo.FindByName(ctx, "nope")
	var notFound *plan.ErrPlanNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestPlanRepository_UpdateOverwritesFactories(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := plan.NewPlan("main")
	p.AddFactory("first")
	require.NoError(t, repo.Create(ctx, p))

	p.AddFactory("second")
	require.NoError(t, repo.Update(ctx, p))

	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Factories, 2)
}

func TestPlanRepository_ListOrdersByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	beta := plan.NewPlan("beta")
	beta.AddFactory("one")
	beta.AddFactory("two")
	require.NoError(t, repo.Create(ctx, beta))
	require.NoError(t, repo.Create(ctx, plan.NewPlan("alpha")))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].Name)
	assert.Equal(t, "beta", summaries[1].Name)
	assert.Equal(t, 2, summaries[1].Factories)
	assert.Equal(t, plan.CurrentDataVersion, summaries[1].DataVersion)
}

func TestPlanRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := plan.NewPlan("doomed")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.FindByID(ctx, p.ID)
	var notFound *plan.ErrPlanNotFound
	require.ErrorAs(t, err, &notFound)

	err = repo.Delete(ctx, p.ID)
	require.ErrorAs(t, err, &notFound)
}
