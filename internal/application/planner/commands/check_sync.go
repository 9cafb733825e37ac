package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// CheckSyncCommand represents a command to compare a factory against its
// recorded sync baseline
type CheckSyncCommand struct {
	PlanID    string
	FactoryID string
}

// CheckSyncResponse represents the sync verdict. InSync is nil when the
// factory has never been snapshotted.
type CheckSyncResponse struct {
	InSync *bool
}

// CheckSyncHandler handles the CheckSync command
type CheckSyncHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewCheckSyncHandler creates a new CheckSyncHandler
func NewCheckSyncHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *CheckSyncHandler {
	return &CheckSyncHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the CheckSync command
func (h *CheckSyncHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CheckSyncCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CheckSyncCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	h.pipeline.SyncTracker().CheckSync(f)
	if err := h.plans.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	return &CheckSyncResponse{InSync: f.InSync}, nil
}
