package services

import (
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// BuildingAggregator converts production amounts into building counts and
// power figures and aggregates them per building type for the whole factory.
type BuildingAggregator struct {
	catalogue gamedata.Catalogue
}

// NewBuildingAggregator creates an aggregator against an injected catalogue
func NewBuildingAggregator(catalogue gamedata.Catalogue) *BuildingAggregator {
	return &BuildingAggregator{catalogue: catalogue}
}

// Aggregate rebuilds factory.BuildingRequirements and factory.Power from the
// solved products and power producers. Products with missing catalogue data
// are skipped here; the production solver already reported them.
func (a *BuildingAggregator) Aggregate(f *plan.Factory) {
	f.BuildingRequirements = make(map[string]*plan.BuildingRequirement)
	consumed := 0.0
	produced := 0.0

	for _, product := range f.Products {
		product.BuildingRequirement = plan.BuildingRequirement{}
		if product.Recipe == "" {
			continue
		}
		recipe, ok := a.catalogue.Recipe(product.Recipe)
		if !ok {
			continue
		}
		primary := recipe.PrimaryProduct()
		if primary == nil || primary.PerMin <= 0 {
			continue
		}

		count := shared.Round(product.Amount/primary.PerMin, 4)
		basePower := a.catalogue.BuildingPower(recipe.Building)
		power := PowerForBuildings(basePower, count)

		product.BuildingRequirement = plan.BuildingRequirement{
			Name:          recipe.Building,
			Amount:        count,
			PowerConsumed: power,
		}

		total := a.requirement(f, recipe.Building)
		total.Amount = shared.RoundAmount(total.Amount + count)
		total.PowerConsumed = shared.RoundAmount(total.PowerConsumed + power)
		consumed += power
	}

	for _, producer := range f.PowerProducers {
		total := a.requirement(f, producer.Building)
		total.Amount = shared.RoundAmount(total.Amount + producer.BuildingCount)
		produced += producer.PowerProduced
	}

	f.Power = plan.PowerSummary{
		Consumed:   shared.RoundPower(consumed),
		Produced:   shared.RoundPower(produced),
		Difference: shared.RoundPower(produced - consumed),
	}
}

func (a *BuildingAggregator) requirement(f *plan.Factory, building string) *plan.BuildingRequirement {
	req, ok := f.BuildingRequirements[building]
	if !ok {
		req = &plan.BuildingRequirement{Name: building}
		f.BuildingRequirements[building] = req
	}
	return req
}
