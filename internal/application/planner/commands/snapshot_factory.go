package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// SnapshotFactoryCommand represents a command to record a factory's current
// products and producers as its sync baseline
type SnapshotFactoryCommand struct {
	PlanID    string
	FactoryID string
}

// SnapshotFactoryResponse represents the result of taking a snapshot
type SnapshotFactoryResponse struct {
	Products       int
	PowerProducers int
}

// SnapshotFactoryHandler handles the SnapshotFactory command
type SnapshotFactoryHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewSnapshotFactoryHandler creates a new SnapshotFactoryHandler
func NewSnapshotFactoryHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *SnapshotFactoryHandler {
	return &SnapshotFactoryHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the SnapshotFactory command
func (h *SnapshotFactoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SnapshotFactoryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SnapshotFactoryCommand")
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	h.pipeline.SyncTracker().Snapshot(f)
	if err := h.plans.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	return &SnapshotFactoryResponse{
		Products:       len(f.SyncState),
		PowerProducers: len(f.SyncStatePower),
	}, nil
}
