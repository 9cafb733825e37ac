package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// DeleteBuildingGroupCommand represents a command to delete a building group
type DeleteBuildingGroupCommand struct {
	PlanID    string
	FactoryID string
	ItemID    string
	GroupID   string
}

// DeleteBuildingGroupResponse represents the result of deleting a group
type DeleteBuildingGroupResponse struct {
	HasProblem bool
}

// DeleteBuildingGroupHandler handles the DeleteBuildingGroup command
type DeleteBuildingGroupHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewDeleteBuildingGroupHandler creates a new DeleteBuildingGroupHandler
func NewDeleteBuildingGroupHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *DeleteBuildingGroupHandler {
	return &DeleteBuildingGroupHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the DeleteBuildingGroup command
func (h *DeleteBuildingGroupHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteBuildingGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteBuildingGroupCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	if err := h.pipeline.Allocator().DeleteGroup(item, cmd.GroupID); err != nil {
		return nil, err
	}
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &DeleteBuildingGroupResponse{HasProblem: h.pipeline.Allocator().HasProblem(item)}, nil
}
