package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// DeletePlanCommand represents a command to delete a stored plan
type DeletePlanCommand struct {
	PlanID string
}

// DeletePlanResponse represents the result of deleting a plan
type DeletePlanResponse struct{}

// DeletePlanHandler handles the DeletePlan command
type DeletePlanHandler struct {
	plans plan.PlanRepository
}

// NewDeletePlanHandler creates a new DeletePlanHandler
func NewDeletePlanHandler(plans plan.PlanRepository) *DeletePlanHandler {
	return &DeletePlanHandler{plans: plans}
}

// Handle executes the DeletePlan command
func (h *DeletePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeletePlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeletePlanCommand")
	}

	if err := h.plans.Delete(ctx, cmd.PlanID); err != nil {
		return nil, err
	}

	return &DeletePlanResponse{}, nil
}
