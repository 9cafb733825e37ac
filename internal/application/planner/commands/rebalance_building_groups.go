package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// RebalanceBuildingGroupsCommand represents a command to split an item's
// building requirement evenly across its groups
type RebalanceBuildingGroupsCommand struct {
	PlanID    string
	FactoryID string
	ItemID    string
}

// RebalanceBuildingGroupsResponse represents the rebalanced groups
type RebalanceBuildingGroupsResponse struct {
	Groups []*plan.BuildingGroup
}

// RebalanceBuildingGroupsHandler handles the RebalanceBuildingGroups command
type RebalanceBuildingGroupsHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewRebalanceBuildingGroupsHandler creates a new RebalanceBuildingGroupsHandler
func NewRebalanceBuildingGroupsHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *RebalanceBuildingGroupsHandler {
	return &RebalanceBuildingGroupsHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the RebalanceBuildingGroups command
func (h *RebalanceBuildingGroupsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RebalanceBuildingGroupsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RebalanceBuildingGroupsCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	item, err := findGroupedItem(f, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	h.pipeline.Allocator().Rebalance(item)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &RebalanceBuildingGroupsResponse{Groups: item.Groups()}, nil
}
