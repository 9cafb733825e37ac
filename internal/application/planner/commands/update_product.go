package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// UpdateProductCommand represents a command to change a product's requested
// amount and/or recipe. A nil field leaves the current value untouched.
type UpdateProductCommand struct {
	PlanID    string
	FactoryID string
	Part      string

	Amount *float64
	Recipe *string
}

// UpdateProductResponse represents the result of the update
type UpdateProductResponse struct {
	Amount float64
	Recipe string
}

// UpdateProductHandler handles the UpdateProduct command
type UpdateProductHandler struct {
	plans     plan.PlanRepository
	catalogue gamedata.Catalogue
	pipeline  *services.Pipeline
}

// NewUpdateProductHandler creates a new UpdateProductHandler
func NewUpdateProductHandler(plans plan.PlanRepository, catalogue gamedata.Catalogue, pipeline *services.Pipeline) *UpdateProductHandler {
	return &UpdateProductHandler{plans: plans, catalogue: catalogue, pipeline: pipeline}
}

// Handle executes the UpdateProduct command
func (h *UpdateProductHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateProductCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateProductCommand")
	}

	if cmd.Recipe != nil && *cmd.Recipe != "" {
		if _, ok := h.catalogue.Recipe(*cmd.Recipe); !ok {
			return nil, &plan.ErrUnknownRecipe{Recipe: *cmd.Recipe}
		}
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	product := f.Product(cmd.Part)
	if product == nil {
		return nil, &plan.ErrProductNotFound{FactoryID: f.ID, Part: cmd.Part}
	}

	if cmd.Amount != nil {
		product.Amount = *cmd.Amount
	}
	if cmd.Recipe != nil {
		product.Recipe = *cmd.Recipe
	}

	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &UpdateProductResponse{Amount: product.Amount, Recipe: product.Recipe}, nil
}
