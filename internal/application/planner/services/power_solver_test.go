package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/adapters/notify"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

func solveOneProducer(t *testing.T, producer *plan.PowerProducer) {
	t.Helper()
	f := plan.NewFactory("test")
	f.PowerProducers = append(f.PowerProducers, producer)
	issues := services.NewPowerSolver(newTestCatalogue(), nil).Solve(f)
	require.Empty(t, issues)
}

func TestPowerSolver_FromBuildings(t *testing.T) {
	producer := plan.NewPowerProducer("coal-generator", "coal-power", 8)

	solveOneProducer(t, producer)

	// 8 generators x 75 MW; coal sustains 5 MW per item, water 0.6/MW.
	assert.Equal(t, 600.0, producer.PowerProduced)
	assert.Equal(t, 8.0, producer.BuildingCount)
	assert.Equal(t, 120.0, producer.FuelAmount)
	assert.Equal(t, 360.0, producer.IngredientAmount)
	require.Len(t, producer.Ingredients, 2)
	assert.Equal(t, "coal", producer.Ingredients[0].Part)
	assert.True(t, producer.Ingredients[1].Supplemental)
}

func TestPowerSolver_FromFuel(t *testing.T) {
	producer := plan.NewPowerProducer("coal-generator", "coal-power", 1)
	producer.FuelAmount = 30
	producer.Updated = plan.UpdatedFuel

	solveOneProducer(t, producer)

	assert.Equal(t, 150.0, producer.PowerProduced)
	assert.Equal(t, 2.0, producer.BuildingCount)
	assert.Equal(t, 2.0, producer.BuildingAmount)
}

func TestPowerSolver_FromPower(t *testing.T) {
	producer := plan.NewPowerProducer("coal-generator", "coal-power", 1)
	producer.PowerAmount = 75
	producer.Updated = plan.UpdatedPower

	solveOneProducer(t, producer)

	assert.Equal(t, 1.0, producer.BuildingCount)
	assert.Equal(t, 15.0, producer.FuelAmount)
}

func TestPowerSolver_FromSupplementalIngredient(t *testing.T) {
	producer := plan.NewPowerProducer("coal-generator", "coal-power", 1)
	producer.IngredientAmount = 45
	producer.Updated = plan.UpdatedIngredient

	solveOneProducer(t, producer)

	// 45 water/min at 0.6 per MW backs 75 MW, one generator.
	assert.Equal(t, 75.0, producer.PowerProduced)
	assert.Equal(t, 1.0, producer.BuildingCount)
}

func TestPowerSolver_FuelByProduct(t *testing.T) {
	producer := plan.NewPowerProducer("coal-generator", "waste-power", 2)

	solveOneProducer(t, producer)

	require.NotNil(t, producer.ByProduct)
	assert.Equal(t, "slag", producer.ByProduct.ID)
	// 150 MW burns 30 coal/min; slag at 0.5 per fuel item.
	assert.Equal(t, 15.0, producer.ByProduct.Amount)
}

func TestPowerSolver_UnknownUpdateSource(t *testing.T) {
	producer := plan.NewPowerProducer("coal-generator", "coal-power", 1)
	producer.Updated = plan.UpdateSource("banana")

	f := plan.NewFactory("test")
	f.PowerProducers = append(f.PowerProducers, producer)
	issues := services.NewPowerSolver(newTestCatalogue(), nil).Solve(f)

	require.Len(t, issues, 1)
	var unknown *plan.ErrUnknownUpdateSource
	assert.ErrorAs(t, issues[0], &unknown)
}

func TestPowerSolver_ClampsNonPositiveQuantities(t *testing.T) {
	notifier := notify.NewCollectingNotifier()
	producer := plan.NewPowerProducer("coal-generator", "coal-power", 1)
	producer.BuildingAmount = -3

	f := plan.NewFactory("test")
	f.PowerProducers = append(f.PowerProducers, producer)
	issues := services.NewPowerSolver(newTestCatalogue(), notifier).Solve(f)

	require.Empty(t, issues)
	assert.Equal(t, 1.0, producer.BuildingAmount)
	require.Len(t, notifier.Notifications(), 1)
}
