package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// loadFactory fetches a plan and locates one of its factories. Every factory
// command goes through here so not-found errors stay uniform.
func loadFactory(ctx context.Context, plans plan.PlanRepository, planID, factoryID string) (*plan.Plan, *plan.Factory, error) {
	p, err := plans.FindByID(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	f := p.Factory(factoryID)
	if f == nil {
		return nil, nil, &plan.ErrFactoryNotFound{FactoryID: factoryID}
	}
	return p, f, nil
}

// findGroupedItem resolves an item id against a factory. Products are keyed
// by part id, power producers by their own id.
func findGroupedItem(f *plan.Factory, itemID string) (plan.GroupedItem, error) {
	if product := f.Product(itemID); product != nil {
		return product, nil
	}
	for _, producer := range f.PowerProducers {
		if producer.ID == itemID {
			return producer, nil
		}
	}
	return nil, &plan.ErrItemNotFound{FactoryID: f.ID, ItemID: itemID}
}

// recalculateAndSave runs the full pipeline over the plan and persists the
// result. Every mutating command ends with this so stored plans are never
// half-calculated.
func recalculateAndSave(ctx context.Context, plans plan.PlanRepository, pipeline *services.Pipeline, p *plan.Plan) error {
	pipeline.CalculateAll(ctx, p.Factories)
	if err := plans.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to persist plan: %w", err)
	}
	return nil
}
