package services

import (
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// PowerSolver re-derives a power producer's quantities from whichever of the
// four requested values was edited last. Each update source has its own pure
// derivation, so the "last edited wins" rule stays auditable.
type PowerSolver struct {
	catalogue gamedata.Catalogue
	notifier  common.Notifier
}

// NewPowerSolver creates a solver against an injected read-only catalogue
func NewPowerSolver(catalogue gamedata.Catalogue, notifier common.Notifier) *PowerSolver {
	return &PowerSolver{catalogue: catalogue, notifier: notifier}
}

// Solve recomputes every power producer in the factory. A bad producer is
// skipped and reported; the rest still solve.
func (s *PowerSolver) Solve(f *plan.Factory) []error {
	var issues []error
	for _, producer := range f.PowerProducers {
		if err := s.solveProducer(producer); err != nil {
			issues = append(issues, err)
		}
	}
	return issues
}

func (s *PowerSolver) solveProducer(p *plan.PowerProducer) error {
	recipe, ok := s.catalogue.PowerRecipe(p.Recipe)
	if !ok {
		return &plan.ErrUnknownPowerRecipe{Recipe: p.Recipe}
	}
	basePower := s.catalogue.BuildingPower(p.Building)
	if basePower <= 0 {
		return &plan.ErrUnknownBuilding{Building: p.Building}
	}
	if recipe.Fuel.MWPerItem <= 0 {
		return shared.NewValidationError("powerRecipe",
			fmt.Sprintf("power recipe %s has no usable fuel rate", recipe.ID))
	}

	power, err := s.sourcePower(p, recipe, basePower)
	if err != nil {
		return err
	}
	power = shared.RoundPower(power)

	count := shared.Round(BuildingsForPower(basePower, power), 4)
	fuel := shared.RoundAmount(power / recipe.Fuel.MWPerItem)

	p.BuildingCount = count
	p.PowerProduced = power
	p.Ingredients = []plan.PowerIngredient{{Part: recipe.Fuel.Part, Amount: fuel}}

	// Re-derive the three quantities that were not the source of truth.
	p.BuildingAmount = count
	p.PowerAmount = power
	p.FuelAmount = fuel
	p.IngredientAmount = 0

	if recipe.Supplemental != nil {
		supplemental := shared.RoundAmount(power * recipe.Supplemental.RatioPerMW)
		p.Ingredients = append(p.Ingredients, plan.PowerIngredient{
			Part:         recipe.Supplemental.Part,
			Amount:       supplemental,
			Supplemental: true,
		})
		p.IngredientAmount = supplemental
	}

	if recipe.ByProduct != nil {
		p.ByProduct = &plan.ByProductItem{
			ID:          recipe.ByProduct.Part,
			Amount:      shared.RoundAmount(fuel * recipe.ByProduct.RatioPerFuel),
			ByProductOf: recipe.Fuel.Part,
		}
	} else {
		p.ByProduct = nil
	}

	p.BuildingRequirement = plan.BuildingRequirement{Name: p.Building, Amount: count}
	return nil
}

// sourcePower resolves the producer's target power output from its tagged
// source of truth, clamping invalid user quantities to a safe floor.
func (s *PowerSolver) sourcePower(p *plan.PowerProducer, recipe *gamedata.PowerRecipe, basePower float64) (float64, error) {
	switch p.Updated {
	case plan.UpdatedBuildings:
		if p.BuildingAmount <= 0 {
			p.BuildingAmount = 1
			s.warnClamp(p, "building count", "1")
		}
		return PowerForBuildings(basePower, p.BuildingAmount), nil

	case plan.UpdatedPower:
		if p.PowerAmount <= 0 {
			p.PowerAmount = basePower
			s.warnClamp(p, "power amount", fmt.Sprintf("%.1f MW", basePower))
		}
		return p.PowerAmount, nil

	case plan.UpdatedFuel:
		if p.FuelAmount <= 0 {
			p.FuelAmount = 1
			s.warnClamp(p, "fuel amount", "1/min")
		}
		return p.FuelAmount * recipe.Fuel.MWPerItem, nil

	case plan.UpdatedIngredient:
		if recipe.Supplemental == nil {
			return 0, shared.NewValidationError("updated",
				fmt.Sprintf("power recipe %s has no supplemental ingredient to derive from", recipe.ID))
		}
		if recipe.Supplemental.RatioPerMW <= 0 {
			return 0, shared.NewValidationError("powerRecipe",
				fmt.Sprintf("power recipe %s has no usable supplemental ratio", recipe.ID))
		}
		if p.IngredientAmount <= 0 {
			p.IngredientAmount = 1
			s.warnClamp(p, "ingredient amount", "1/min")
		}
		return p.IngredientAmount / recipe.Supplemental.RatioPerMW, nil

	default:
		return 0, &plan.ErrUnknownUpdateSource{Source: string(p.Updated)}
	}
}

func (s *PowerSolver) warnClamp(p *plan.PowerProducer, field, floor string) {
	common.Warn(s.notifier, fmt.Sprintf(
		"%s for %s must be positive, corrected to %s", field, p.Building, floor))
}
