package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/adapters/notify"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

func TestProductionSolver_ExpandsIngredients(t *testing.T) {
	solver := services.NewProductionSolver(newTestCatalogue(), nil)
	f := plan.NewFactory("test")
	f.AddProduct("iron-plate", "iron-plate", 60)

	issues := solver.Solve(f)

	require.Empty(t, issues)
	product := f.Product("iron-plate")
	// 60/min at 20/min per building means 3x the recipe's ingredient rate.
	assert.Equal(t, 90.0, product.Requirements["iron-ingot"].Amount)
}

func TestProductionSolver_ByProductsMergeAcrossProducts(t *testing.T) {
	solver := services.NewProductionSolver(newTestCatalogue(), nil)
	f := plan.NewFactory("test")
	f.AddProduct("alloy", "alloy", 60)
	second := f.AddProduct("iron-plate", "alloy", 60) // same recipe twice
	second.ID = "alloy-2"

	issues := solver.Solve(f)

	require.Empty(t, issues)
	// 60/min alloy with byproduct ratio 1:3 gives 20/min slag per product.
	require.Len(t, f.ByProducts, 1)
	assert.Equal(t, "slag", f.ByProducts[0].ID)
	assert.Equal(t, 40.0, f.ByProducts[0].Amount)
}

func TestProductionSolver_ClampsNonPositiveAmount(t *testing.T) {
	notifier := notify.NewCollectingNotifier()
	solver := services.NewProductionSolver(newTestCatalogue(), notifier)
	f := plan.NewFactory("test")
	product := f.AddProduct("iron-ingot", "iron-ingot", 30)
	product.Amount = -5

	issues := solver.Solve(f)

	require.Empty(t, issues)
	assert.Equal(t, 1.0, product.Amount)
	require.Len(t, notifier.Notifications(), 1)
	assert.Contains(t, notifier.Notifications()[0].Message, "corrected to 1/min")
}

func TestProductionSolver_UnknownRecipeDegradesPerItem(t *testing.T) {
	solver := services.NewProductionSolver(newTestCatalogue(), nil)
	f := plan.NewFactory("test")
	f.AddProduct("iron-plate", "no-such-recipe", 60)
	f.AddProduct("iron-ingot", "iron-ingot", 30)

	issues := solver.Solve(f)

	require.Len(t, issues, 1)
	var unknown *plan.ErrUnknownRecipe
	require.ErrorAs(t, issues[0], &unknown)
	// The healthy product still solved.
	assert.Equal(t, 30.0, f.Product("iron-ingot").Requirements["iron-ore"].Amount)
}

func TestProductionSolver_EmptyRecipeIsInert(t *testing.T) {
	solver := services.NewProductionSolver(newTestCatalogue(), nil)
	f := plan.NewFactory("test")
	f.AddProduct("iron-plate", "", 60)

	issues := solver.Solve(f)

	require.Empty(t, issues)
	assert.Empty(t, f.Product("iron-plate").Requirements)
}
