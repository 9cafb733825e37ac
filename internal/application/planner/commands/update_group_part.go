package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// UpdateGroupPartCommand represents the reverse, part-driven group edit:
// "make this group handle this many items per minute of this part"
type UpdateGroupPartCommand struct {
	PlanID    string
	FactoryID string
	ItemID    string
	GroupID   string
	Part      string
	Amount    float64
}

// UpdateGroupPartResponse represents the solved group values
type UpdateGroupPartResponse struct {
	BuildingCount    float64
	OverclockPercent float64
}

// UpdateGroupPartHandler handles the UpdateGroupPart command
type UpdateGroupPartHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewUpdateGroupPartHandler creates a new UpdateGroupPartHandler
func NewUpdateGroupPartHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *UpdateGroupPartHandler {
	return &UpdateGroupPartHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the UpdateGroupPart command
func (h *UpdateGroupPartHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateGroupPartCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateGroupPartCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	if err := h.pipeline.Allocator().UpdateGroupPart(item, cmd.GroupID, cmd.Part, cmd.Amount); err != nil {
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

	return &UpdateGroupPartResponse{
		BuildingCount:    group.BuildingCount,
		OverclockPercent: group.OverclockPercent,
	}, nil
}
