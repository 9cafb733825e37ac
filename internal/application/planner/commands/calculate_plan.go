package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// CalculatePlanCommand represents a command to recompute a whole plan
type CalculatePlanCommand struct {
	PlanID string
}

// CalculatePlanResponse represents the result of the recompute
type CalculatePlanResponse struct {
	Factories             int
	FactoriesWithProblems int
}

// CalculatePlanHandler handles the CalculatePlan command
type CalculatePlanHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewCalculatePlanHandler creates a new CalculatePlanHandler
func NewCalculatePlanHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *CalculatePlanHandler {
	return &CalculatePlanHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the CalculatePlan command
func (h *CalculatePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CalculatePlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CalculatePlanCommand")
	}

	p, err := h.plans.FindByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	problems := 0
	for _, f := range p.Factories {
		if f.HasProblem {
			problems++
		}
	}

	return &CalculatePlanResponse{
		Factories:             len(p.Factories),
		FactoriesWithProblems: problems,
	}, nil
}
