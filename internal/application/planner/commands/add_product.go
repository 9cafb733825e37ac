package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// AddProductCommand represents a command to add a product to a factory
type AddProductCommand struct {
	PlanID    string
	FactoryID string
	Part      string
	Recipe    string
	Amount    float64
}

// AddProductResponse represents the result of adding a product
type AddProductResponse struct {
	ProductID string
	Amount    float64
}

// AddProductHandler handles the AddProduct command
type AddProductHandler struct {
	plans     plan.PlanRepository
	catalogue gamedata.Catalogue
	pipeline  *services.Pipeline
}

// NewAddProductHandler creates a new AddProductHandler
func NewAddProductHandler(plans plan.PlanRepository, catalogue gamedata.Catalogue, pipeline *services.Pipeline) *AddProductHandler {
	return &AddProductHandler{plans: plans, catalogue: catalogue, pipeline: pipeline}
}

// Handle executes the AddProduct command
func (h *AddProductHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddProductCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddProductCommand")
	}

	// A product may be added with an empty recipe (an inert placeholder), but
	// a named recipe must exist in the catalogue.
	if cmd.Recipe != "" {
		if _, ok := h.catalogue.Recipe(cmd.Recipe); !ok {
			return nil, &plan.ErrUnknownRecipe{Recipe: cmd.Recipe}
		}
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	product := f.AddProduct(cmd.Part, cmd.Recipe, cmd.Amount)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &AddProductResponse{ProductID: product.ID, Amount: product.Amount}, nil
}
