package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// RemainderToLastGroupCommand represents a command to rewrite an item's last
// building group so it absorbs the gap left by the other groups
type RemainderToLastGroupCommand struct {
	PlanID    string
	FactoryID string
	ItemID    string
}

// RemainderToLastGroupResponse represents the rewritten last group
type RemainderToLastGroupResponse struct {
	Group *plan.BuildingGroup
}

// RemainderToLastGroupHandler handles the RemainderToLastGroup command
type RemainderToLastGroupHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewRemainderToLastGroupHandler creates a new RemainderToLastGroupHandler
func NewRemainderToLastGroupHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *RemainderToLastGroupHandler {
	return &RemainderToLastGroupHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the RemainderToLastGroup command
func (h *RemainderToLastGroupHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemainderToLastGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemainderToLastGroupCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	h.pipeline.Allocator().RemainderToLast(item)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	groups := item.Groups()
	return &RemainderToLastGroupResponse{Group: groups[len(groups)-1]}, nil
}
