package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// CreatePlanCommand represents a command to create an empty named plan
type CreatePlanCommand struct {
	Name string
}

// CreatePlanResponse represents the result of creating a plan
type CreatePlanResponse struct {
	PlanID string
}

// CreatePlanHandler handles the CreatePlan command
type CreatePlanHandler struct {
	plans plan.PlanRepository
}

// NewCreatePlanHandler creates a new CreatePlanHandler
func NewCreatePlanHandler(plans plan.PlanRepository) *CreatePlanHandler {
	return &CreatePlanHandler{plans: plans}
}

// Handle executes the CreatePlan command
func (h *CreatePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreatePlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreatePlanCommand")
	}

	if cmd.Name == "" {
		return nil, shared.NewValidationError("name", "plan name cannot be empty")
	}

	p := plan.NewPlan(cmd.Name)
	if err := h.plans.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	return &CreatePlanResponse{PlanID: p.ID}, nil
}
