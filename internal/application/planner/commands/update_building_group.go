package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// UpdateBuildingGroupCommand represents a command to edit one group's
// building count and overclock
type UpdateBuildingGroupCommand struct {
	PlanID           string
	FactoryID        string
	ItemID           string
	GroupID          string
	BuildingCount    float64
	OverclockPercent float64
}

// UpdateBuildingGroupResponse represents the applied group values
type UpdateBuildingGroupResponse struct {
	BuildingCount    float64
	OverclockPercent float64
	HasProblem       bool
}

// UpdateBuildingGroupHandler handles the UpdateBuildingGroup command
type UpdateBuildingGroupHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewUpdateBuildingGroupHandler creates a new UpdateBuildingGroupHandler
func NewUpdateBuildingGroupHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *UpdateBuildingGroupHandler {
	return &UpdateBuildingGroupHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the UpdateBuildingGroup command
func (h *UpdateBuildingGroupHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateBuildingGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateBuildingGroupCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	allocator := h.pipeline.Allocator()
	if err := allocator.UpdateGroup(item, cmd.GroupID, cmd.BuildingCount, cmd.OverclockPercent); err != nil {
		return nil, err
	}
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	var group *plan.BuildingGroup
	for _, g := range item.Groups() {
		if g.ID == cmd.GroupID {
			group = g
			break
		}
	}
	if group == nil {
		return nil, &plan.ErrGroupNotFound{GroupID: cmd.GroupID}
	}

	return &UpdateBuildingGroupResponse{
		BuildingCount:    group.BuildingCount,
		OverclockPercent: group.OverclockPercent,
		HasProblem:       allocator.HasProblem(item),
	}, nil
}
