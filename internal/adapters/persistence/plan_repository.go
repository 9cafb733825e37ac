package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// GormPlanRepository implements plan.PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GORM plan repository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Create persists a new plan to the database
func (r *GormPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	model, err := r.entityToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create plan: %w", result.Error)
	}

	return nil
}

// Update persists changes to an existing plan
func (r *GormPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	model, err := r.entityToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a plan by its id, migrated to the current data version
func (r *GormPlanRepository) FindByID(ctx context.Context, id string) (*plan.Plan, error) {
	var model PlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &plan.ErrPlanNotFound{Key: id}
		}
		return nil, fmt.Errorf("failed to find plan: %w", result.Error)
	}

	return r.modelToEntity(&model)
}

// FindByName retrieves a plan by its unique name
func (r *GormPlanRepository) FindByName(ctx context.Context, name string) (*plan.Plan, error) {
	var model PlanModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &plan.ErrPlanNotFound{Key: name}
		}
		return nil, fmt.Errorf("failed to find plan: %w", result.Error)
	}

	return r.modelToEntity(&model)
}

// List returns summaries of all stored plans
func (r *GormPlanRepository) List(ctx context.Context) ([]plan.PlanSummary, error) {
	var models []PlanModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list plans: %w", result.Error)
	}

	summaries := make([]plan.PlanSummary, 0, len(models))
	for _, model := range models {
		var factories []*plan.Factory
		if err := json.Unmarshal([]byte(model.Factories), &factories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal factories for plan %s: %w", model.ID, err)
		}
		summaries = append(summaries, plan.PlanSummary{
			ID:          model.ID,
			Name:        model.Name,
			Factories:   len(factories),
			DataVersion: model.DataVersion,
		})
	}

	return summaries, nil
}

// Delete removes a plan from the database
func (r *GormPlanRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PlanModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &plan.ErrPlanNotFound{Key: id}
	}

	return nil
}

// entityToModel converts domain entity to database model
func (r *GormPlanRepository) entityToModel(p *plan.Plan) (*PlanModel, error) {
	factoriesJSON, err := json.Marshal(p.Factories)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal factories: %w", err)
	}

	return &PlanModel{
		ID:          p.ID,
		Name:        p.Name,
		Factories:   string(factoriesJSON),
		DataVersion: plan.CurrentDataVersion,
	}, nil
}

// modelToEntity converts database model to domain entity. Plans written by
// older versions are migrated before they reach the engine.
func (r *GormPlanRepository) modelToEntity(model *PlanModel) (*plan.Plan, error) {
	var factories []*plan.Factory
	if model.Factories != "" && model.Factories != "null" {
		if err := json.Unmarshal([]byte(model.Factories), &factories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal factories: %w", err)
		}
	}

	p := &plan.Plan{
		ID:        model.ID,
		Name:      model.Name,
		Factories: factories,
	}
	p.Migrate()

	return p, nil
}
