package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// RemainderToNewGroupCommand represents a command to cover an item's
// remaining building requirement with a freshly appended group
type RemainderToNewGroupCommand struct {
	PlanID    string
	FactoryID string
	ItemID    string
}

// RemainderToNewGroupResponse represents the appended group
type RemainderToNewGroupResponse struct {
	GroupID string
}

// RemainderToNewGroupHandler handles the RemainderToNewGroup command
type RemainderToNewGroupHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewRemainderToNewGroupHandler creates a new RemainderToNewGroupHandler
func NewRemainderToNewGroupHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *RemainderToNewGroupHandler {
	return &RemainderToNewGroupHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the RemainderToNewGroup command
func (h *RemainderToNewGroupHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemainderToNewGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemainderToNewGroupCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	group := h.pipeline.Allocator().RemainderToNewGroup(item)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &RemainderToNewGroupResponse{GroupID: group.ID}, nil
}
