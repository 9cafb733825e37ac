package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// RemoveInputCommand represents a command to remove an import link
type RemoveInputCommand struct {
	PlanID          string
	FactoryID       string
	SourceFactoryID string
	Part            string
}

// RemoveInputResponse represents the result of removing an input link
type RemoveInputResponse struct{}

// RemoveInputHandler handles the RemoveInput command
type RemoveInputHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewRemoveInputHandler creates a new RemoveInputHandler
func NewRemoveInputHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *RemoveInputHandler {
	return &RemoveInputHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the RemoveInput command
func (h *RemoveInputHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemoveInputCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemoveInputCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	f.RemoveInput(cmd.SourceFactoryID, cmd.Part)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &RemoveInputResponse{}, nil
}
