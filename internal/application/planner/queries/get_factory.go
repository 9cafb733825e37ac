package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// GetFactoryQuery represents a query for one factory of a plan
type GetFactoryQuery struct {
	PlanID    string
	FactoryID string
}

// GetFactoryResponse carries the factory aggregate as stored, including its
// calculated ledger and groups.
type GetFactoryResponse struct {
	Factory *plan.Factory
}

// GetFactoryHandler handles the GetFactory query
type GetFactoryHandler struct {
	plans plan.PlanRepository
}

// NewGetFactoryHandler creates a new GetFactoryHandler
func NewGetFactoryHandler(plans plan.PlanRepository) *GetFactoryHandler {
	return &GetFactoryHandler{plans: plans}
}

// Handle executes the GetFactory query
func (h *GetFactoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetFactoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetFactoryQuery")
	}

	p, err := h.plans.FindByID(ctx, query.PlanID)
	if err != nil {
		return nil, err
	}

	f := p.Factory(query.FactoryID)
	if f == nil {
		return nil, &plan.ErrFactoryNotFound{FactoryID: query.FactoryID}
	}

	return &GetFactoryResponse{Factory: f}, nil
}
