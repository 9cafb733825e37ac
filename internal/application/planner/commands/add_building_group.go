package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// AddBuildingGroupCommand represents a command to append a building group to
// a product or power producer
type AddBuildingGroupCommand struct {
	PlanID    string
	FactoryID string
	ItemID    string
}

// AddBuildingGroupResponse represents the result of adding a group
type AddBuildingGroupResponse struct {
	GroupID string
}

// AddBuildingGroupHandler handles the AddBuildingGroup command
type AddBuildingGroupHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewAddBuildingGroupHandler creates a new AddBuildingGroupHandler
func NewAddBuildingGroupHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *AddBuildingGroupHandler {
	return &AddBuildingGroupHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the AddBuildingGroup command
func (h *AddBuildingGroupHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddBuildingGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddBuildingGroupCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	group := h.pipeline.Allocator().AddGroup(item)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &AddBuildingGroupResponse{GroupID: group.ID}, nil
}
