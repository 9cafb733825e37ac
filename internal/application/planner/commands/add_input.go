package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// AddInputCommand represents a command to link an import from another factory
type AddInputCommand struct {
	PlanID          string
	FactoryID       string
	SourceFactoryID string
	Part            string
	Amount          float64
}

// AddInputResponse represents the result of adding an input link
type AddInputResponse struct {
	Satisfied bool
}

// AddInputHandler handles the AddInput command
type AddInputHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewAddInputHandler creates a new AddInputHandler
func NewAddInputHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *AddInputHandler {
	return &AddInputHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the AddInput command
func (h *AddInputHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddInputCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddInputCommand")
	}

	if cmd.Part == "" {
		return nil, shared.NewValidationError("part", "input part cannot be empty")
	}
	if cmd.Amount <= 0 {
		return nil, shared.NewValidationError("amount", "input amount must be positive")
	}
	if cmd.SourceFactoryID == cmd.FactoryID {
		return nil, shared.NewValidationError("sourceFactoryId", "a factory cannot import from itself")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	source := p.Factory(cmd.SourceFactoryID)
	if source == nil {
		return nil, &plan.ErrFactoryNotFound{FactoryID: cmd.SourceFactoryID}
	}

	if err := f.AddInput(cmd.SourceFactoryID, cmd.Part, cmd.Amount); err != nil {
		return nil, err
	}

	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	satisfied := false
	if m, ok := source.Dependencies.Metrics[cmd.Part]; ok {
		satisfied = m.IsRequestSatisfied
	}
	return &AddInputResponse{Satisfied: satisfied}, nil
}
