package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// AddFactoryCommand represents a command to add a factory to a plan
type AddFactoryCommand struct {
	PlanID string
	Name   string
}

// AddFactoryResponse represents the result of adding a factory
type AddFactoryResponse struct {
	FactoryID string
}

// AddFactoryHandler handles the AddFactory command
type AddFactoryHandler struct {
	plans plan.PlanRepository
}

// NewAddFactoryHandler creates a new AddFactoryHandler
func NewAddFactoryHandler(plans plan.PlanRepository) *AddFactoryHandler {
	return &AddFactoryHandler{plans: plans}
}

// Handle executes the AddFactory command
func (h *AddFactoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddFactoryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddFactoryCommand")
	}

	if cmd.Name == "" {
		return nil, shared.NewValidationError("name", "factory name cannot be empty")
	}

	p, err := h.plans.FindByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	f := p.AddFactory(cmd.Name)
	if err := h.plans.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	return &AddFactoryResponse{FactoryID: f.ID}, nil
}
