package plan

import "context"

// PlanRepository defines persistence operations for plans
type PlanRepository interface {
	// Create persists a new plan
	Create(ctx context.Context, p *Plan) error

	// Update persists changes to an existing plan
	Update(ctx context.Context, p *Plan) error

	// FindByID retrieves a plan by its id, migrated to the current data version
	FindByID(ctx context.Context, id string) (*Plan, error)

	// FindByName retrieves a plan by its unique name
	FindByName(ctx context.Context, name string) (*Plan, error)

	// List returns summaries of all stored plans
	List(ctx context.Context) ([]PlanSummary, error)

	// Delete removes a plan
	Delete(ctx context.Context, id string) error
}

// PlanSummary is the listing projection of a stored plan.
type PlanSummary struct {
	ID          string
	Name        string
	Factories   int
	DataVersion string
}
