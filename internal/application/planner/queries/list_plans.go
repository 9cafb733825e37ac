package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// ListPlansQuery represents a query for all stored plans
type ListPlansQuery struct{}

// ListPlansResponse represents the stored plan listing
type ListPlansResponse struct {
	Plans []plan.PlanSummary
}

// ListPlansHandler handles the ListPlans query
type ListPlansHandler struct {
	plans plan.PlanRepository
}

// NewListPlansHandler creates a new ListPlansHandler
func NewListPlansHandler(plans plan.PlanRepository) *ListPlansHandler {
	return &ListPlansHandler{plans: plans}
}

// Handle executes the ListPlans query
func (h *ListPlansHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListPlansQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListPlansQuery")
	}

	summaries, err := h.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListPlansResponse{Plans: summaries}, nil
}
